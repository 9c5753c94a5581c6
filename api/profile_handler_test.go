package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

func TestGetProfileMaterializesDefault(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/profile", nil, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeJSON[models.Profile](t, rec)
	assert.Equal(t, models.ProfileID, first.ID)
	assert.NotEmpty(t, first.Name)

	rec = env.do(t, http.MethodGet, "/profile", nil, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeJSON[models.Profile](t, rec)
	assert.Equal(t, first, second)
}

func TestUpdateProfileRequiresAdminKey(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPut, "/profile", `{"name": "Jane"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfileAppliesSuppliedFields(t *testing.T) {
	env := newTestEnv(t)

	getRec := env.do(t, http.MethodGet, "/profile", nil, false, "")
	require.Equal(t, http.StatusOK, getRec.Code)
	original := decodeJSON[models.Profile](t, getRec)

	rec := env.doJSON(t, http.MethodPut, "/profile", `{"name": "Jane Doe", "years_experience": 7}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[models.Profile](t, rec)
	assert.Equal(t, "Jane Doe", updated.Name)
	require.NotNil(t, updated.YearsExperience)
	assert.Equal(t, 7, *updated.YearsExperience)
	assert.Equal(t, original.Headline, updated.Headline)
	assert.Equal(t, original.Bio, updated.Bio)
}
