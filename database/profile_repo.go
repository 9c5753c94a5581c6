package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// GetOrCreate returns the singleton profile row, materializing it with the
// fixed default payload on first read. Two concurrent first reads can both
// observe the row absent; the conflict clause turns the losing insert into a
// no-op so both callers converge on the same row.
func (r *ProfileRepo) GetOrCreate() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, models.ProfileID).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.DefaultProfile()
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return nil, err
	}
	if err := r.db.First(&profile, models.ProfileID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the supplied column changes to the singleton row, creating
// it first if absent, and returns the refreshed row.
func (r *ProfileRepo) Update(changes map[string]any) (*models.Profile, error) {
	if _, err := r.GetOrCreate(); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		err := r.db.Model(&models.Profile{}).Where("id = ?", models.ProfileID).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}

	var profile models.Profile
	if err := r.db.First(&profile, models.ProfileID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
