// Package registry exposes configuration values to the rest of the
// application. The service replaces a free-floating accessor function: it is
// constructed once in the daemon and handed to whoever needs lookups. It
// never raises: any failure yields the caller supplied default.
package registry

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	attachmentcontroller "github.com/GoSettings-Admin/GoSettings-Admin/internal/db/controller/attachment"
	settingcontroller "github.com/GoSettings-Admin/GoSettings-Admin/internal/db/controller/setting"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields/codec"
)

// Service reads settings values with a small invalidation cache. Write
// paths call Invalidate after committing.
type Service struct {
	db      *gorm.DB
	catalog *fields.Catalog

	mu    sync.RWMutex
	cache map[string]any
}

// New creates a registry service on top of the settings store.
func New(db *gorm.DB, catalog *fields.Catalog) *Service {
	return &Service{
		db:      db,
		catalog: catalog,
		cache:   make(map[string]any),
	}
}

// Setting returns the value stored under key, or def when the key is absent,
// no value was ever saved for it, or any storage error occurs.
// File-accepting settings resolve to their attachment collection,
// array-flagged settings to the decoded structure (the raw text when decoding
// fails), everything else to the raw value.
func (s *Service) Setting(key string, def any) any {
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()

	if ok {
		return cached
	}

	record, err := settingcontroller.Get(s.db, key)
	if err != nil {
		if !errors.Is(err, settingcontroller.ErrSettingNotFound) {
			log.Error().Err(err).Str("key", key).Msg("settings lookup failed")
		}

		return def
	}

	// created but never saved; not cached, so the first save is visible
	if record.Value == nil {
		return def
	}

	var value any

	switch {
	case s.catalog.IsFileClass(record.Type):
		attachments, err := attachmentcontroller.ForSetting(s.db, record)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("attachment lookup failed")

			return def
		}

		value = attachments
	case record.IsArrayValue:
		value = codec.Decode(*record.Value, true)
	default:
		value = *record.Value
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value
}

// Invalidate drops the cached value for one key.
func (s *Service) Invalidate(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

// Reset drops the whole cache.
func (s *Service) Reset() {
	s.mu.Lock()
	s.cache = make(map[string]any)
	s.mu.Unlock()
}
