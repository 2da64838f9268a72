// Package attachment provides lookup and cascading deletion for binary
// attachments referenced by file-accepting settings.
package attachment

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Storage removes the binary resource behind an attachment. The database
// only holds the reference; the bytes live elsewhere.
type Storage interface {
	Remove(path string) error
}

// DiskStorage removes attachment binaries from the local filesystem.
type DiskStorage struct {
	Root string
}

// Remove deletes the file at the attachment path. A missing file is not an
// error, the reference may already be stale.
func (s DiskStorage) Remove(path string) error {
	err := os.Remove(filepath.Join(s.Root, path))
	if err != nil && !os.IsNotExist(err) {
		return err //nolint:wrapcheck
	}

	return nil
}

// NoopStorage ignores binary removal. Used when binaries are managed by an
// external service and in tests.
type NoopStorage struct{}

// Remove implements Storage.
func (NoopStorage) Remove(_ string) error {
	return nil
}

// IDsFromValue parses a setting value into attachment IDs. The stored form
// is a JSON array of IDs, a single JSON scalar, or a bare scalar.
func IDsFromValue(value string) []uint64 {
	if value == "" {
		return nil
	}

	var asList []json.Number
	if err := json.Unmarshal([]byte(value), &asList); err == nil {
		return numbersToIDs(asList)
	}

	var asScalar json.Number
	if err := json.Unmarshal([]byte(value), &asScalar); err == nil {
		return numbersToIDs([]json.Number{asScalar})
	}

	if id, err := strconv.ParseUint(value, 10, 64); err == nil {
		return []uint64{id}
	}

	return nil
}

func numbersToIDs(in []json.Number) []uint64 {
	out := make([]uint64, 0, len(in))

	for _, n := range in {
		id, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			continue
		}

		out = append(out, id)
	}

	return out
}

// GetByIDs loads the attachments with the given IDs.
func GetByIDs(db *gorm.DB, ids []uint64) ([]models.Attachment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if len(ids) == 0 {
		return nil, nil
	}

	var attachments []models.Attachment
	if err := db.Where("id IN ?", ids).Find(&attachments).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return attachments, nil
}

// ForSetting loads the attachments referenced by a setting's value. A
// setting without a saved value references nothing.
func ForSetting(db *gorm.DB, s *models.Setting) ([]models.Attachment, error) {
	if s.Value == nil {
		return nil, nil
	}

	return GetByIDs(db, IDsFromValue(*s.Value))
}

// Delete removes the binary behind an attachment and then its record.
func Delete(db *gorm.DB, storage Storage, att *models.Attachment) error {
	if db == nil {
		return ErrDBNil
	}

	if err := storage.Remove(att.Path); err != nil {
		return err //nolint:wrapcheck
	}

	return db.Delete(&models.Attachment{}, att.ID).Error //nolint:wrapcheck
}

// DeleteForSetting removes every attachment referenced by a setting.
// Individual failures are logged and do not block the rest of the batch.
func DeleteForSetting(db *gorm.DB, storage Storage, s *models.Setting) {
	attachments, err := ForSetting(db, s)
	if err != nil {
		log.Error().Err(err).Str("key", s.Key).Msg("failed to load attachments for deletion")

		return
	}

	for i := range attachments {
		if err := Delete(db, storage, &attachments[i]); err != nil {
			log.Error().Err(err).
				Str("key", s.Key).
				Uint64("attachment", attachments[i].ID).
				Msg("failed to delete attachment")
		}
	}
}
