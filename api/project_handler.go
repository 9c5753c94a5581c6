package api

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kaushalendrasingh/portfolio-backend/database"
	"github.com/kaushalendrasingh/portfolio-backend/errs"
	"github.com/kaushalendrasingh/portfolio-backend/metrics"
	"github.com/kaushalendrasingh/portfolio-backend/models"
	"github.com/kaushalendrasingh/portfolio-backend/services"
)

// multipartMemoryLimit caps how much of a parsed upload is held in memory;
// larger files spill to temp files.
const multipartMemoryLimit = 32 << 20

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	assets      *services.AssetStore
}

func newProjectHandler(projectRepo *database.ProjectRepo, assets *services.AssetStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		assets:      assets,
	}
}

// listProjects returns projects ordered by featured flag then recency,
// optionally filtered to a tag and truncated to a limit.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("tag")

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 1 || parsed > 100 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("limit", "must be an integer between 1 and 100"))
				return
			}
			limit = parsed
		}

		projects, err := h.projectRepo.FindAll(tag, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.projectIDParam(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "is required"))
			return
		}
		if project.Description == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("description", "is required"))
			return
		}

		// Server-assigned fields
		project.ID = 0

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject applies a partial update: only fields present in the request
// body are touched, and they are committed together.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.projectIDParam(w, r)
		if !ok {
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		var patch models.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.projectRepo.Patch(projectID, patch.Changes()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes the project row only; asset files stay on disk.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.projectIDParam(w, r)
		if !ok {
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// attachAssets stores a multipart batch of files under the project's asset
// subtree and appends their canonical paths to the image sequence. The size
// cap is checked for the whole batch before any file is written, so an
// oversized entry leaves neither files nor image references behind.
func (h projectHandler) attachAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.projectIDParam(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no files supplied"))
			return
		}

		for _, header := range files {
			if header.Size > services.MaxProjectAssetSize {
				metrics.IncrementAssetUpload("project", "rejected")
				h.responder.WriteError(w, errs.NewPayloadTooLargeError(
					"file "+header.Filename+" exceeds the size limit"))
				return
			}
		}

		saved := make([]string, 0, len(files))
		for _, header := range files {
			assetPath, err := h.assets.SaveProjectAsset(projectID, header)
			if err != nil {
				h.discardAssets(saved)
				metrics.IncrementAssetUpload("project", "failed")
				h.responder.WriteError(w, err)
				return
			}
			saved = append(saved, assetPath)
		}

		// The file writes above and this row update are two separate steps;
		// a failure here leaves orphan files behind, which is why they are
		// discarded explicitly.
		images := append([]string(project.Images), saved...)
		if err := h.projectRepo.SetImages(projectID, images); err != nil {
			h.discardAssets(saved)
			metrics.IncrementAssetUpload("project", "failed")
			h.responder.WriteError(w, wrapDatabaseError("attach assets", "project", err))
			return
		}
		metrics.IncrementAssetUpload("project", "success")

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// detachAsset removes one asset reference from the project. The supplied path
// is accepted with or without the "assets/" prefix; a path with no matching
// entry is a no-op, not an error. The file delete is best effort.
func (h projectHandler) detachAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.projectIDParam(w, r)
		if !ok {
			return
		}

		assetPath := r.URL.Query().Get("asset_path")
		if assetPath == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("asset_path", "is required"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		canonical := services.NormalizeAssetPath(assetPath)
		images := []string(project.Images)
		idx := slices.Index(images, canonical)
		if idx < 0 {
			h.responder.WriteJSON(w, project)
			return
		}

		h.assets.Remove(canonical)

		images = slices.Delete(images, idx, idx+1)
		if err := h.projectRepo.SetImages(projectID, images); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("detach asset", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// listTags returns the distinct tag vocabulary across all projects.
func (h projectHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.projectRepo.DistinctTags()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list tags", "projects", err))
			return
		}

		h.responder.WriteJSON(w, tags)
	}
}

func (h projectHandler) projectIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil || projectID < 1 {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return 0, false
	}
	return projectID, true
}

func (h projectHandler) discardAssets(paths []string) {
	for _, assetPath := range paths {
		h.assets.Remove(assetPath)
	}
}
