package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/kaushalendrasingh/portfolio-backend/config"
	"github.com/kaushalendrasingh/portfolio-backend/database"
	"github.com/kaushalendrasingh/portfolio-backend/services"
)

const testAdminKey = "test-admin-key"

type testEnv struct {
	router *chi.Mux
	db     database.Database
	assets *services.AssetStore
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	gormDB, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(gormDB))
	db := database.New(gormDB)

	assets, err := services.NewAssetStore(t.TempDir())
	require.NoError(t, err)

	cfg := config.Config{
		Port:                "0",
		AdminAPIKey:         testAdminKey,
		AllowedOrigins:      "*",
		ReadTimeoutSeconds:  5,
		WriteTimeoutSeconds: 5,
		IdleTimeoutSeconds:  5,
	}

	router := newRouter(db, assets, withConfig(cfg), withStartupTime(time.Now()))
	return testEnv{router: router, db: db, assets: assets}
}

// do executes a request against the router; admin marks it with the test key.
func (e testEnv) do(t *testing.T, method, target string, body io.Reader, admin bool, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if admin {
		req.Header.Set(adminKeyHeader, testAdminKey)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e testEnv) doJSON(t *testing.T, method, target, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, method, target, bytes.NewBufferString(body), admin, "application/json")
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// multipartBody assembles a multipart payload with form fields and file parts.
func multipartBody(t *testing.T, fields map[string]string, fileField string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, filename := range filenames {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + filename))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]bool](t, rec)
	require.True(t, body["ok"])
}
