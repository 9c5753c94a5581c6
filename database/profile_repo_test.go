package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

func TestGetOrCreateMaterializesDefault(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	profile, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, models.ProfileID, profile.ID)
	assert.NotEmpty(t, profile.Name)
	assert.NotEmpty(t, profile.Headline)
	assert.NotEmpty(t, []string(profile.Skills))
}

func TestGetOrCreateIsIdempotentAfterFirstRead(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	first, err := repo.GetOrCreate()
	require.NoError(t, err)

	second, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	original, err := repo.GetOrCreate()
	require.NoError(t, err)

	var patch models.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Jane Doe", "location": "Pune"}`), &patch))

	updated, err := repo.Update(patch.Changes())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Pune", *updated.Location)
	assert.Equal(t, original.Headline, updated.Headline)
	assert.Equal(t, original.Bio, updated.Bio)
}

func TestUpdateExplicitNullClearsNullableField(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	var set models.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"location": "Pune"}`), &set))
	_, err := repo.Update(set.Changes())
	require.NoError(t, err)

	var clear models.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"location": null}`), &clear))
	updated, err := repo.Update(clear.Changes())
	require.NoError(t, err)
	assert.Nil(t, updated.Location)
}

func TestUpdateOnMissingRowCreatesSingletonFirst(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	var patch models.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Jane Doe"}`), &patch))

	updated, err := repo.Update(patch.Changes())
	require.NoError(t, err)
	assert.Equal(t, models.ProfileID, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
}
