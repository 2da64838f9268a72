package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
)

// Direction selects the reorder neighbour.
type Direction string

const (
	// Up swaps with the next lower position in the group.
	Up Direction = "up"
	// Down swaps with the next higher position in the group.
	Down Direction = "down"
)

// ErrBadDirection is returned for a direction other than up or down.
var ErrBadDirection = errors.New("direction must be up or down")

// lockForUpdate adds a row lock on dialects that support it. SQLite has no
// SELECT ... FOR UPDATE; its transactions serialize writers instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}

	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Swap exchanges the positions of a setting and its neighbour within the
// same group. Both rows are locked for the duration of the transaction so
// concurrent swaps can not corrupt the per-group ordering. Swapping at the
// boundary of a group is a no-op reporting success.
func Swap(db *gorm.DB, key string, direction Direction) error {
	if db == nil {
		return ErrDBNil
	}

	if direction != Up && direction != Down {
		return ErrBadDirection
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var current models.Setting

		err := lockForUpdate(tx).
			Where(keyQueryPattern, key).
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSettingNotFound
			}

			return err
		}

		comparison, order := "<", "position DESC"
		if direction == Down {
			comparison, order = ">", "position ASC"
		}

		var neighbour models.Setting

		err = lockForUpdate(tx).
			Where("`group` = ?", current.Group).
			Where("position "+comparison+" ?", current.Position).
			Order(order).
			First(&neighbour).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// boundary of the group, nothing to swap with
				return nil
			}

			return err
		}

		currentPosition := current.Position

		if err := tx.Model(&models.Setting{}).
			Where(keyQueryPattern, current.Key).
			Update("position", neighbour.Position).Error; err != nil {
			return err
		}

		return tx.Model(&models.Setting{}).
			Where(keyQueryPattern, neighbour.Key).
			Update("position", currentPosition).Error
	})
}
