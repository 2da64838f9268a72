package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/config"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestSeed(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		db := setupTestDB(t)
		cfg := &config.Config{}

		seed(cfg, db)

		var count int64
		db.Model(&models.Setting{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("one setting per field type", func(t *testing.T) {
		db := setupTestDB(t)
		cfg := &config.Config{}
		cfg.Seed.Enabled = true
		cfg.Seed.Group = "General"

		seed(cfg, db)

		var settings []models.Setting
		require.NoError(t, db.Order("position ASC").Find(&settings).Error)
		require.Len(t, settings, len(fields.Default.List()))

		for i, s := range settings {
			assert.Equal(t, i+1, s.Position)
			assert.Equal(t, "General", s.Group)
			assert.NotEmpty(t, s.Key)
			assert.NotEmpty(t, s.Options)

			_, ok := fields.Default.Lookup(s.Type)
			assert.True(t, ok, "seeded type %q must be registered", s.Type)
		}
	})

	t.Run("existing settings are left alone", func(t *testing.T) {
		db := setupTestDB(t)
		cfg := &config.Config{}
		cfg.Seed.Enabled = true

		existing := models.Setting{
			Key: "site_title", Type: fields.ClassInput, Name: "Site Title",
			Group: "General", Position: 1,
		}
		require.NoError(t, db.Create(&existing).Error)

		seed(cfg, db)

		var count int64
		db.Model(&models.Setting{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestSnake(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "Input", expected: "input"},
		{in: "TextArea", expected: "text_area"},
		{in: "RadioButtons", expected: "radio_buttons"},
		{in: "URL", expected: "url"},
		{in: "DateTimer", expected: "date_timer"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, snake(tc.in))
		})
	}
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "Text Area", spaced("TextArea"))
	assert.Equal(t, "URL", spaced("URL"))
	assert.Equal(t, "Input", spaced("Input"))
}
