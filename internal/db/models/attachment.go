package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/uniuri"
)

// Attachment references a binary resource stored outside the database.
// File-accepting settings hold attachment IDs in their value column.
type Attachment struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Hash         string `gorm:"size:36;uniqueIndex" json:"hash"`
	Name         string `gorm:"size:191" json:"name"`
	OriginalName string `gorm:"size:191" json:"original_name"`
	Path         string `gorm:"size:255" json:"path"`
	Extension    string `gorm:"size:16" json:"extension"`
	MimeType     string `gorm:"size:128" json:"mime_type"`
	Size         int64  `json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for gorm.
func (Attachment) TableName() string {
	return "attachments"
}

// BeforeCreate assigns the public hash and a random disk name when absent.
func (a *Attachment) BeforeCreate(_ *gorm.DB) error {
	if a.Hash == "" {
		a.Hash = uuid.NewString()
	}

	if a.Name == "" {
		a.Name = uniuri.New()
	}

	return nil
}
