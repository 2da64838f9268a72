package daemon

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/config"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
)

// seed inserts one example setting per registered field type when the
// settings table is empty, so a fresh installation shows every field type
// with its default options matrix.
func seed(cfg *config.Config, db *gorm.DB) {
	if !cfg.Seed.Enabled {
		return
	}

	var count int64

	db.Model(&models.Setting{}).Count(&count)
	if count > 0 {
		return
	}

	group := cfg.Seed.Group
	if group == "" {
		group = "General"
	}

	descriptors := fields.Default.List()
	settings := make([]models.Setting, 0, len(descriptors))

	for i, desc := range descriptors {
		rows := make([]models.Option, 0, len(desc.Methods))

		for _, m := range desc.Methods {
			param := m.ParamStr
			if m.Active {
				param = m.Default
			}

			rows = append(rows, models.Option{
				Active: m.Active,
				Name:   m.Name,
				Param:  param,
				Full:   m.Full,
			})
		}

		s := models.Setting{
			Key:      snake(desc.Name),
			Type:     desc.Class,
			Name:     spaced(desc.Name),
			Group:    group,
			Position: i + 1,
		}
		s.SetOptionRows(rows)

		settings = append(settings, s)
	}

	if err := db.Create(&settings).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed settings")

		return
	}

	log.Info().Int("count", len(settings)).Msg("seeded example settings")
}

// snake converts a descriptor name like "TextArea" to "text_area".
func snake(name string) string {
	return caseSplit(name, "_", strings.ToLower)
}

// spaced converts a descriptor name like "TextArea" to "Text Area".
func spaced(name string) string {
	return caseSplit(name, " ", func(s string) string { return s })
}

func caseSplit(name, sep string, transform func(string) string) string {
	var parts []string
	var current strings.Builder

	runes := []rune(name)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(runes[i-1]) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			parts = append(parts, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	for i := range parts {
		parts[i] = transform(parts[i])
	}

	return strings.Join(parts, sep)
}
