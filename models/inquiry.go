package models

import "time"

// Inquiry represents a visitor contact submission. Rows are immutable after
// creation; no update or delete path exists.
type Inquiry struct {
	ID             int       `json:"id" db:"id" gorm:"primaryKey"`
	Name           string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email          string    `json:"email" db:"email" gorm:"type:text;not null"`
	Company        *string   `json:"company,omitempty" db:"company" gorm:"type:text"`
	Message        string    `json:"message" db:"message" gorm:"type:text;not null"`
	AttachmentPath *string   `json:"attachment_path,omitempty" db:"attachment_path" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
