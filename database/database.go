package database

import (
	"gorm.io/gorm"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	profileRepo *ProfileRepo
	inquiryRepo *InquiryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		profileRepo: NewProfileRepo(db),
		inquiryRepo: NewInquiryRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) InquiryRepo() *InquiryRepo {
	return d.inquiryRepo
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Project{}, &models.Profile{}, &models.Inquiry{})
}
