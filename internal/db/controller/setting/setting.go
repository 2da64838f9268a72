// Package setting provides the read/write facade for the dynamic settings
// registry: CRUD on setting records, value saves through the codec, and
// transactional reordering within a group.
package setting

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/controller/attachment"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields/codec"
)

const (
	keyQueryPattern = "`key` = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingAlreadyExists is returned when attempting to create a setting whose key is taken.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// ValidationError reports the required fields missing on create/update.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Fields, ", "))
}

// Input carries the caller supplied fields for create and update.
type Input struct {
	Key         string
	Type        string
	Name        string
	Group       string
	Description string
	Options     []models.Option
}

func (in Input) validate() error {
	var missing []string

	if in.Key == "" {
		missing = append(missing, "key")
	}

	if in.Name == "" {
		missing = append(missing, "name")
	}

	if in.Group == "" {
		missing = append(missing, "group")
	}

	if in.Type == "" {
		missing = append(missing, "type")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return nil
}

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if key == "" {
		return nil, ErrSettingNotFound
	}

	var setting models.Setting

	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings ordered by group and position.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Order("`group` ASC, position ASC").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// GetByGroup retrieves the settings of one group ordered by position.
func GetByGroup(db *gorm.DB, group string) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Where("`group` = ?", group).Order("position ASC").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Create inserts a new setting. The position is appended at the end of the
// whole registry (monotonic counter across groups, so positions stay unique
// within each group).
func Create(db *gorm.DB, in Input) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	setting := &models.Setting{
		Key:         in.Key,
		Type:        in.Type,
		Name:        in.Name,
		Group:       in.Group,
		Description: in.Description,
	}
	setting.SetOptionRows(in.Options)

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Setting{}).Where(keyQueryPattern, in.Key).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return ErrSettingAlreadyExists
		}

		var maxPosition int64
		if err := tx.Model(&models.Setting{}).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		setting.Position = int(maxPosition) + 1

		return tx.Create(setting).Error
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

// Update changes a setting's metadata and options. The record is addressed
// by its prior key; renaming the key is delete-old/insert-new within the
// transaction since the key is the primary identity. Position, value and
// the array flag are carried over.
func Update(db *gorm.DB, oldKey string, in Input) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *models.Setting

	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := Get(tx, oldKey)
		if err != nil {
			return err
		}

		current.Type = in.Type
		current.Name = in.Name
		current.Group = in.Group
		current.Description = in.Description
		current.SetOptionRows(in.Options)

		if in.Key == oldKey {
			updated = current

			return tx.Save(current).Error
		}

		// key rename: the primary key changes, so the old row goes away
		// and a new one carries everything over.
		var count int64
		if err := tx.Model(&models.Setting{}).Where(keyQueryPattern, in.Key).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return ErrSettingAlreadyExists
		}

		if err := tx.Where(keyQueryPattern, oldKey).Delete(&models.Setting{}).Error; err != nil {
			return err
		}

		current.Key = in.Key
		updated = current

		return tx.Create(current).Error
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SetValue saves a new value for a setting through the codec. Old and new
// are compared in decoded form to skip redundant writes; a skipped write
// still reports success.
func SetValue(db *gorm.DB, key string, newValue any) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var saved *models.Setting

	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := Get(tx, key)
		if err != nil {
			return err
		}

		saved = current

		// only a previously saved value can make the write redundant
		if current.Value != nil {
			oldValue := codec.Decode(*current.Value, current.IsArrayValue)
			if codec.Equal(oldValue, newValue) {
				return nil
			}
		}

		raw, isArray := codec.Encode(newValue)
		current.Value = &raw
		current.IsArrayValue = isArray

		return tx.Save(current).Error
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete removes a setting. For file-accepting types the referenced
// attachments are deleted first (best effort, individual failures are
// logged by the attachment controller) so no orphaned binaries remain.
func Delete(db *gorm.DB, storage attachment.Storage, cat *fields.Catalog, key string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		current, err := Get(tx, key)
		if err != nil {
			return err
		}

		if cat.IsFileClass(current.Type) && current.Value != nil {
			attachment.DeleteForSetting(tx, storage, current)
		}

		return tx.Where(keyQueryPattern, key).Delete(&models.Setting{}).Error
	})
}
