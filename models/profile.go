package models

import (
	"gorm.io/datatypes"
)

// ProfileID is the fixed primary key of the singleton profile row.
const ProfileID = 1

// Profile represents the site owner. The table holds exactly one row; it is
// materialized lazily with DefaultProfile on first read.
type Profile struct {
	ID              int                         `json:"id" db:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Headline        string                      `json:"headline" db:"headline" gorm:"type:text;not null"`
	Bio             string                      `json:"bio" db:"bio" gorm:"type:text;not null"`
	Location        *string                     `json:"location,omitempty" db:"location" gorm:"type:text"`
	YearsExperience *int                        `json:"years_experience,omitempty" db:"years_experience"`
	Skills          datatypes.JSONSlice[string] `json:"skills" db:"skills"`
	AvatarURL       *string                     `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	ResumeURL       *string                     `json:"resume_url,omitempty" db:"resume_url" gorm:"type:text"`
	Github          *string                     `json:"github,omitempty" db:"github" gorm:"type:text"`
	Linkedin        *string                     `json:"linkedin,omitempty" db:"linkedin" gorm:"type:text"`
	Twitter         *string                     `json:"twitter,omitempty" db:"twitter" gorm:"type:text"`
	Website         *string                     `json:"website,omitempty" db:"website" gorm:"type:text"`
}

func (Profile) TableName() string {
	return "profile"
}

// DefaultProfile is the fixed payload written when the singleton row is
// first read and found absent.
func DefaultProfile() Profile {
	github := "https://github.com/kaushalendrasingh"
	linkedin := "https://www.linkedin.com/in/kaushalendra-singh/"
	website := "https://kaushcodes.com"

	return Profile{
		ID:       ProfileID,
		Name:     "Kaushalendra Singh",
		Headline: "Full-Stack Developer",
		Bio:      "I build clean, fast, and scalable products.",
		Skills:   datatypes.NewJSONSlice([]string{"React", "TypeScript", "Tailwind", "Go", "PostgreSQL"}),
		Github:   &github,
		Linkedin: &linkedin,
		Website:  &website,
	}
}

// ProfilePatch follows the same field-presence convention as ProjectPatch.
type ProfilePatch struct {
	Name            Optional[string]   `json:"name"`
	Headline        Optional[string]   `json:"headline"`
	Bio             Optional[string]   `json:"bio"`
	Location        Optional[string]   `json:"location"`
	YearsExperience Optional[int]      `json:"years_experience"`
	Skills          Optional[[]string] `json:"skills"`
	AvatarURL       Optional[string]   `json:"avatar_url"`
	ResumeURL       Optional[string]   `json:"resume_url"`
	Github          Optional[string]   `json:"github"`
	Linkedin        Optional[string]   `json:"linkedin"`
	Twitter         Optional[string]   `json:"twitter"`
	Website         Optional[string]   `json:"website"`
}

func (p ProfilePatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Name.Set && p.Name.Valid {
		changes["name"] = p.Name.Value
	}
	if p.Headline.Set && p.Headline.Valid {
		changes["headline"] = p.Headline.Value
	}
	if p.Bio.Set && p.Bio.Valid {
		changes["bio"] = p.Bio.Value
	}
	if p.Location.Set {
		changes["location"] = nullableString(p.Location)
	}
	if p.YearsExperience.Set {
		if p.YearsExperience.Valid {
			changes["years_experience"] = p.YearsExperience.Value
		} else {
			changes["years_experience"] = nil
		}
	}
	if p.Skills.Set {
		changes["skills"] = patchSlice(p.Skills)
	}
	if p.AvatarURL.Set {
		changes["avatar_url"] = nullableString(p.AvatarURL)
	}
	if p.ResumeURL.Set {
		changes["resume_url"] = nullableString(p.ResumeURL)
	}
	if p.Github.Set {
		changes["github"] = nullableString(p.Github)
	}
	if p.Linkedin.Set {
		changes["linkedin"] = nullableString(p.Linkedin)
	}
	if p.Twitter.Set {
		changes["twitter"] = nullableString(p.Twitter)
	}
	if p.Website.Set {
		changes["website"] = nullableString(p.Website)
	}
	return changes
}
