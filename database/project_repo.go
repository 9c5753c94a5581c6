package database

import (
	"slices"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered by the featured flag, then recency, with
// insertion order breaking ties. The tag filter is an exact, case-sensitive
// element match; the limit truncates after ordering and filtering.
func (r *ProjectRepo) FindAll(tag string, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("featured DESC, created_at DESC, id ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}

	if tag != "" {
		filtered := make([]models.Project, 0, len(projects))
		for _, project := range projects {
			if slices.Contains([]string(project.Tags), tag) {
				filtered = append(filtered, project)
			}
		}
		projects = filtered
	}

	if limit > 0 && limit < len(projects) {
		projects = projects[:limit]
	}
	return projects, nil
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.TechStack == nil {
		project.TechStack = datatypes.NewJSONSlice([]string{})
	}
	if project.Tags == nil {
		project.Tags = datatypes.NewJSONSlice([]string{})
	}
	if project.Images == nil {
		project.Images = datatypes.NewJSONSlice([]string{})
	}
	return r.db.Create(project).Error
}

// Patch applies the supplied column changes in a single commit. Fields not
// present in changes keep their current values; updated_at is refreshed by
// gorm on every non-empty patch.
func (r *ProjectRepo) Patch(id int, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetImages replaces the project's image sequence in a single commit.
func (r *ProjectRepo) SetImages(id int, images []string) error {
	return r.Patch(id, map[string]any{"images": datatypes.NewJSONSlice(images)})
}

// Delete removes the project row only; referenced asset files are untouched.
func (r *ProjectRepo) Delete(id int) error {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistinctTags scans every project's tag sequence and returns the distinct
// vocabulary sorted lexicographically.
func (r *ProjectRepo) DistinctTags() ([]string, error) {
	var rows []datatypes.JSONSlice[string]
	if err := r.db.Model(&models.Project{}).Pluck("tags", &rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, tags := range rows {
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}

	distinct := make([]string, 0, len(seen))
	for tag := range seen {
		distinct = append(distinct, tag)
	}
	sort.Strings(distinct)
	return distinct, nil
}
