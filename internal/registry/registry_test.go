package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	settingcontroller "github.com/GoSettings-Admin/GoSettings-Admin/internal/db/controller/setting"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{}, &models.Attachment{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedSetting(t *testing.T, db *gorm.DB, s models.Setting) {
	t.Helper()
	require.NoError(t, db.Create(&s).Error, "failed to seed test data")
}

func strPtr(s string) *string {
	return &s
}

func TestSetting(t *testing.T) {
	db := setupTestDB(t)
	reg := New(db, fields.Default)

	seedSetting(t, db, models.Setting{
		Key: "site_title", Type: fields.ClassInput, Name: "Site Title",
		Group: "General", Position: 1, Value: strPtr("My Site"),
	})
	seedSetting(t, db, models.Setting{
		Key: "nav_links", Type: fields.ClassMatrix, Name: "Nav Links",
		Group: "General", Position: 2,
		Value: strPtr(`[{"title":"Home","url":"/"}]`), IsArrayValue: true,
	})
	seedSetting(t, db, models.Setting{
		Key: "broken", Type: fields.ClassMatrix, Name: "Broken",
		Group: "General", Position: 3,
		Value: strPtr(`[{"title":`), IsArrayValue: true,
	})

	t.Run("scalar value", func(t *testing.T) {
		assert.Equal(t, "My Site", reg.Setting("site_title", "fallback"))
	})

	t.Run("missing key yields the default", func(t *testing.T) {
		assert.Equal(t, "fallback", reg.Setting("nonexistent", "fallback"))
		assert.Nil(t, reg.Setting("nonexistent", nil))
	})

	t.Run("structured value decoded", func(t *testing.T) {
		assert.Equal(t,
			[]any{map[string]any{"title": "Home", "url": "/"}},
			reg.Setting("nav_links", nil),
		)
	})

	t.Run("malformed structure degrades to the raw text", func(t *testing.T) {
		assert.Equal(t, `[{"title":`, reg.Setting("broken", nil))
	})
}

func TestSettingUnsetValue(t *testing.T) {
	db := setupTestDB(t)
	reg := New(db, fields.Default)

	// a created setting reads as the default until its first value save
	_, err := settingcontroller.Create(db, settingcontroller.Input{
		Key: "site_title", Type: fields.ClassInput, Name: "Site Title", Group: "General",
	})
	require.NoError(t, err)

	assert.Nil(t, reg.Setting("site_title", nil))
	assert.Equal(t, "fallback", reg.Setting("site_title", "fallback"))

	_, err = settingcontroller.SetValue(db, "site_title", "My Site")
	require.NoError(t, err)

	assert.Equal(t, "My Site", reg.Setting("site_title", "fallback"),
		"the unset window must not be cached over the first save")
}

func TestSettingAttachments(t *testing.T) {
	db := setupTestDB(t)
	reg := New(db, fields.Default)

	att := models.Attachment{OriginalName: "logo.png", Path: "2026/logo.png", Extension: "png"}
	require.NoError(t, db.Create(&att).Error)

	seedSetting(t, db, models.Setting{
		Key: "logo", Type: fields.ClassPicture, Name: "Logo",
		Group: "General", Position: 1,
		Value: strPtr(fmt.Sprintf("[%d]", att.ID)), IsArrayValue: true,
	})

	value := reg.Setting("logo", nil)

	attachments, ok := value.([]models.Attachment)
	require.True(t, ok, "file settings resolve to their attachments")
	require.Len(t, attachments, 1)
	assert.Equal(t, "logo.png", attachments[0].OriginalName)
}

func TestSettingCache(t *testing.T) {
	db := setupTestDB(t)
	reg := New(db, fields.Default)

	seedSetting(t, db, models.Setting{
		Key: "site_title", Type: fields.ClassInput, Name: "Site Title",
		Group: "General", Position: 1, Value: strPtr("My Site"),
	})

	require.Equal(t, "My Site", reg.Setting("site_title", nil))

	// the cached value survives a direct database change
	_, err := settingcontroller.SetValue(db, "site_title", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "My Site", reg.Setting("site_title", nil))

	// invalidation picks up the new value
	reg.Invalidate("site_title")
	assert.Equal(t, "Renamed", reg.Setting("site_title", nil))

	// Reset drops everything
	_, err = settingcontroller.SetValue(db, "site_title", "Again")
	require.NoError(t, err)
	reg.Reset()
	assert.Equal(t, "Again", reg.Setting("site_title", nil))
}

func TestSettingDoesNotCacheMisses(t *testing.T) {
	db := setupTestDB(t)
	reg := New(db, fields.Default)

	assert.Equal(t, "fallback", reg.Setting("late_arrival", "fallback"))

	seedSetting(t, db, models.Setting{
		Key: "late_arrival", Type: fields.ClassInput, Name: "Late",
		Group: "General", Position: 1, Value: strPtr("here now"),
	})

	assert.Equal(t, "here now", reg.Setting("late_arrival", "fallback"))
}
