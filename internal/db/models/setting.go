// Package models contains database model definitions.
package models

import (
	"encoding/json"
	"time"
)

// Option is one row of a setting's options matrix. Active rows are applied
// as builder parameters when the field is rendered; inactive rows are kept
// for the edit screen only.
type Option struct {
	Active bool   `json:"active"`
	Name   string `json:"name"`
	Param  string `json:"param"`
	Full   string `json:"full,omitempty"`
}

// Setting represents one typed configuration entry of the registry.
// The key is the primary identity; settings sharing a group are ordered
// together by position. Value stays NULL until the first save, so a fresh
// setting is distinguishable from one holding an empty string.
type Setting struct {
	Key          string  `gorm:"primaryKey;size:191" json:"key"`
	Type         string  `gorm:"size:191;not null" json:"type"`
	Name         string  `gorm:"size:191;not null" json:"name"`
	Group        string  `gorm:"column:group;size:191;not null;index" json:"group"`
	Position     int     `gorm:"not null" json:"position"`
	Description  string  `json:"description"`
	Value        *string `gorm:"type:text" json:"value"`
	Options      string  `gorm:"type:text" json:"-"`
	IsArrayValue bool    `json:"is_array_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for gorm.
func (Setting) TableName() string {
	return "settings"
}

// OptionRows decodes the stored options matrix. Malformed stored JSON
// yields an empty matrix, never an error.
func (s *Setting) OptionRows() []Option {
	if s.Options == "" {
		return nil
	}

	var rows []Option
	if err := json.Unmarshal([]byte(s.Options), &rows); err != nil {
		return nil
	}

	return rows
}

// SetOptionRows encodes the options matrix into the stored column.
func (s *Setting) SetOptionRows(rows []Option) {
	if rows == nil {
		s.Options = "[]"
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		s.Options = "[]"
		return
	}

	s.Options = string(raw)
}
