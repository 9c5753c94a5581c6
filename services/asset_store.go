package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kaushalendrasingh/portfolio-backend/errs"
)

// Upload limits per file kind
const (
	MaxProjectAssetSize      = 50 << 20 // 50 MiB
	MaxInquiryAttachmentSize = 5 << 20  // 5 MiB
)

const (
	assetURLPrefix      = "assets"
	projectsSubdir      = "projects"
	inquiriesSubdir     = "inquiries"
	generatedNameLength = 20
	maxExtensionLength  = 10
)

// AssetStore manages the on-disk asset tree rooted at the configured asset
// directory. File writes and deletes are never transactionally coupled to
// database state; callers sequence the two steps and live with the interim
// states (orphan file or dangling reference) a crash between them leaves.
type AssetStore struct {
	root   string
	logger zerolog.Logger
}

func NewAssetStore(root string) (*AssetStore, error) {
	for _, subdir := range []string{projectsSubdir, inquiriesSubdir} {
		if err := os.MkdirAll(filepath.Join(root, subdir), 0o755); err != nil {
			return nil, fmt.Errorf("creating asset directory %s: %w", subdir, err)
		}
	}
	logger := log.With().Str("component", "assetStore").Logger()
	return &AssetStore{root: root, logger: logger}, nil
}

// Root returns the asset root directory, for static file serving.
func (s *AssetStore) Root() string {
	return s.root
}

// SaveProjectAsset writes one uploaded file under projects/<id>/ and returns
// the canonical asset path to record on the project.
func (s *AssetStore) SaveProjectAsset(projectID int, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxProjectAssetSize {
		return "", errs.NewPayloadTooLargeError(
			fmt.Sprintf("file %s exceeds the %d byte limit", header.Filename, MaxProjectAssetSize))
	}
	rel := path.Join(projectsSubdir, strconv.Itoa(projectID), generateFilename(header.Filename))
	if err := s.write(header, rel); err != nil {
		return "", err
	}
	return path.Join(assetURLPrefix, rel), nil
}

// SaveInquiryAttachment writes one uploaded file under inquiries/ and returns
// the canonical asset path to record on the inquiry.
func (s *AssetStore) SaveInquiryAttachment(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxInquiryAttachmentSize {
		return "", errs.NewPayloadTooLargeError(
			fmt.Sprintf("attachment %s exceeds the %d byte limit", header.Filename, MaxInquiryAttachmentSize))
	}
	rel := path.Join(inquiriesSubdir, generateFilename(header.Filename))
	if err := s.write(header, rel); err != nil {
		return "", err
	}
	return path.Join(assetURLPrefix, rel), nil
}

func (s *AssetStore) write(header *multipart.FileHeader, rel string) error {
	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("opening upload %s: %w", header.Filename, err)
	}
	defer src.Close()

	dest := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating asset %s: %w", rel, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("writing asset %s: %w", rel, err)
	}
	return out.Close()
}

// Remove deletes the file behind an asset path, best effort. Failures are
// logged and swallowed: the database-side removal still has to proceed, so
// the file may be left orphaned.
func (s *AssetStore) Remove(assetPath string) {
	rel := strings.TrimPrefix(NormalizeAssetPath(assetPath), assetURLPrefix+"/")
	if rel == "" {
		return
	}
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("path", assetPath).Msg("failed to delete asset file, it may be left orphaned")
	}
}

// Exists reports whether the file behind an asset path is present on disk.
func (s *AssetStore) Exists(assetPath string) bool {
	rel := strings.TrimPrefix(NormalizeAssetPath(assetPath), assetURLPrefix+"/")
	if rel == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(rel)))
	return err == nil
}

// NormalizeAssetPath maps both accepted path forms, with and without the
// leading "assets/" segment, onto the canonical stored form. Cleaning
// against a rooted path strips any traversal segments.
func NormalizeAssetPath(assetPath string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(assetPath))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return ""
	}
	if cleaned != assetURLPrefix && !strings.HasPrefix(cleaned, assetURLPrefix+"/") {
		cleaned = assetURLPrefix + "/" + cleaned
	}
	return cleaned
}

// generateFilename returns a collision-resistant random name that keeps the
// original file's extension. The random part is truncated to a fixed length;
// the extension is lowercased and bounded.
func generateFilename(original string) string {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(name) > generatedNameLength {
		name = name[:generatedNameLength]
	}
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) > maxExtensionLength {
		ext = ext[:maxExtensionLength]
	}
	return name + ext
}
