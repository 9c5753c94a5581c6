package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a showcased project with its metadata and asset references
type Project struct {
	ID            int                         `json:"id" db:"id" gorm:"primaryKey"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null;uniqueIndex"`
	Description   string                      `json:"description" db:"description" gorm:"type:text;not null"`
	TechStack     datatypes.JSONSlice[string] `json:"tech_stack" db:"tech_stack"`
	Tags          datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	CoverImageURL *string                     `json:"cover_image_url,omitempty" db:"cover_image_url" gorm:"type:text"`
	Images        datatypes.JSONSlice[string] `json:"images" db:"images"`
	GithubURL     *string                     `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	LiveURL       *string                     `json:"live_url,omitempty" db:"live_url" gorm:"type:text"`
	Featured      bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	DateStarted   *Date                       `json:"date_started,omitempty" db:"date_started"`
	DateCompleted *Date                       `json:"date_completed,omitempty" db:"date_completed"`
	CreatedAt     time.Time                   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at" db:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectPatch carries only the fields the caller explicitly supplied.
// A field absent from the request body leaves the stored value untouched;
// an explicit null clears the column where the schema allows it.
type ProjectPatch struct {
	Title         Optional[string]   `json:"title"`
	Description   Optional[string]   `json:"description"`
	TechStack     Optional[[]string] `json:"tech_stack"`
	Tags          Optional[[]string] `json:"tags"`
	CoverImageURL Optional[string]   `json:"cover_image_url"`
	Images        Optional[[]string] `json:"images"`
	GithubURL     Optional[string]   `json:"github_url"`
	LiveURL       Optional[string]   `json:"live_url"`
	Featured      Optional[bool]     `json:"featured"`
	DateStarted   Optional[Date]     `json:"date_started"`
	DateCompleted Optional[Date]     `json:"date_completed"`
}

// Changes maps the supplied fields onto their column values. Non-nullable
// columns ignore an explicit null rather than violating the schema.
func (p ProjectPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Title.Set && p.Title.Valid {
		changes["title"] = p.Title.Value
	}
	if p.Description.Set && p.Description.Valid {
		changes["description"] = p.Description.Value
	}
	if p.TechStack.Set {
		changes["tech_stack"] = patchSlice(p.TechStack)
	}
	if p.Tags.Set {
		changes["tags"] = patchSlice(p.Tags)
	}
	if p.Images.Set {
		changes["images"] = patchSlice(p.Images)
	}
	if p.CoverImageURL.Set {
		changes["cover_image_url"] = nullableString(p.CoverImageURL)
	}
	if p.GithubURL.Set {
		changes["github_url"] = nullableString(p.GithubURL)
	}
	if p.LiveURL.Set {
		changes["live_url"] = nullableString(p.LiveURL)
	}
	if p.Featured.Set && p.Featured.Valid {
		changes["featured"] = p.Featured.Value
	}
	if p.DateStarted.Set {
		changes["date_started"] = nullableDate(p.DateStarted)
	}
	if p.DateCompleted.Set {
		changes["date_completed"] = nullableDate(p.DateCompleted)
	}
	return changes
}

func patchSlice(o Optional[[]string]) datatypes.JSONSlice[string] {
	if !o.Valid || o.Value == nil {
		return datatypes.NewJSONSlice([]string{})
	}
	return datatypes.NewJSONSlice(o.Value)
}

func nullableString(o Optional[string]) any {
	if !o.Valid {
		return nil
	}
	return o.Value
}

func nullableDate(o Optional[Date]) any {
	if !o.Valid {
		return nil
	}
	return o.Value
}
