// Package settings provides the admin JSON API for the dynamic settings
// registry: listing grouped settings with their rendered fields, the field
// type catalog, and the create/update/save/move/delete operations.
package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/config"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/controller/attachment"
	settingcontroller "github.com/GoSettings-Admin/GoSettings-Admin/internal/db/controller/setting"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields/resolver"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/registry"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/web/handler"
)

const (
	// Path is the base path for settings management.
	Path = handler.RootPath + "admin/settings"

	// MsgNotFound is the warning shown when a key does not resolve.
	MsgNotFound = "Setting was not found"
)

// Service provides the settings admin handlers.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	reg       *registry.Service
	catalog   *fields.Catalog
	storage   attachment.Storage
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, reg *registry.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.reg = reg
	s.catalog = fields.Default
	s.storage = attachment.DiskStorage{Root: "./data/attachments"}
	s.validator = validator.New()

	// Routes. The fixed segments are registered before the key parameter.
	app.Get(Path+"/types", s.Types)
	app.Get(Path+"/schema", s.Schema)
	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Get(Path+"/:key", s.Get)
	app.Post(Path+"/:key", s.Update)
	app.Post(Path+"/:key/value", s.SaveValue)
	app.Post(Path+"/:key/move", s.Move)
	app.Post(Path+"/:key/delete", s.Delete)
}

// settingView is one setting as presented to the admin UI.
type settingView struct {
	models.Setting
	Options []models.Option        `json:"options"`
	Field   resolver.RenderedField `json:"field"`
}

// groupView clusters the settings of one group in display order.
type groupView struct {
	Name     string        `json:"name"`
	Settings []settingView `json:"settings"`
}

func (s *Service) view(record *models.Setting) settingView {
	return settingView{
		Setting: *record,
		Options: record.OptionRows(),
		Field:   resolver.Build(record, s.catalog),
	}
}

// List returns all settings clustered by group, ordered by position.
func (s *Service) List(c *fiber.Ctx) error {
	records, err := settingcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	var groups []groupView

	for i := range records {
		record := &records[i]

		if len(groups) == 0 || groups[len(groups)-1].Name != record.Group {
			groups = append(groups, groupView{Name: record.Group})
		}

		last := &groups[len(groups)-1]
		last.Settings = append(last.Settings, s.view(record))
	}

	return c.JSON(fiber.Map{"groups": groups})
}

// Types returns the field type catalog for the type selection dropdown.
func (s *Service) Types(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"types": s.catalog.List()})
}

// Schema returns the default options matrix rows for a chosen type,
// used to populate the dynamic options editor. An unknown type yields the
// plain input schema so the editor never hard-fails.
func (s *Service) Schema(c *fiber.Ctx) error {
	class := c.Query("type", fields.ClassInput)

	desc, ok := s.catalog.Lookup(class)
	if !ok {
		log.Warn().Str("type", class).Msg("schema requested for unknown field type")

		desc, _ = s.catalog.Lookup(fields.ClassInput)
	}

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

	return c.JSON(fiber.Map{"type": desc.Class, "options": rows})
}

// settingInput is the shared create/update payload.
type settingInput struct {
	Key         string          `json:"key"         validate:"required"`
	Name        string          `json:"name"        validate:"required"`
	Group       string          `json:"group"       validate:"required"`
	Type        string          `json:"type"        validate:"required"`
	Description string          `json:"description"`
	Options     []models.Option `json:"options"`
}

func (s *Service) parseInput(c *fiber.Ctx) (*settingInput, error) {
	var in settingInput

	if err := c.BodyParser(&in); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	return &in, nil
}

// validationDetail maps a validation failure to per-field messages.
func validationDetail(err error) fiber.Map {
	detail := fiber.Map{}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			detail[fe.Field()] = fe.Tag()
		}

		return fiber.Map{"error": "Validation failed", "fields": detail}
	}

	var controllerErr *settingcontroller.ValidationError
	if errors.As(err, &controllerErr) {
		for _, f := range controllerErr.Fields {
			detail[f] = "required"
		}

		return fiber.Map{"error": "Validation failed", "fields": detail}
	}

	return fiber.Map{"error": "Invalid request body"}
}

// Create stores a new setting at the end of the registry.
func (s *Service) Create(c *fiber.Ctx) error {
	in, err := s.parseInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
	}

	record, err := settingcontroller.Create(s.db, settingcontroller.Input{
		Key:         in.Key,
		Type:        in.Type,
		Name:        in.Name,
		Group:       in.Group,
		Description: in.Description,
		Options:     in.Options,
	})
	if err != nil {
		if errors.Is(err, settingcontroller.ErrSettingAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A setting with this key already exists",
			})
		}

		var vErr *settingcontroller.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
		}

		log.Error().Err(err).Str("key", in.Key).Msg("failed to create setting")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create setting",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(s.view(record))
}

// Get returns one setting with its rendered field, for edit modal population.
func (s *Service) Get(c *fiber.Ctx) error {
	record, err := settingcontroller.Get(s.db, c.Params("key"))
	if err != nil {
		if errors.Is(err, settingcontroller.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"warning": MsgNotFound})
		}

		log.Error().Err(err).Msg("failed to load setting")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load setting",
		})
	}

	return c.JSON(s.view(record))
}

// Update changes a setting's metadata and options. The path parameter is
// the prior key; the body may carry a renamed key.
func (s *Service) Update(c *fiber.Ctx) error {
	oldKey := c.Params("key")

	in, err := s.parseInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
	}

	record, err := settingcontroller.Update(s.db, oldKey, settingcontroller.Input{
		Key:         in.Key,
		Type:        in.Type,
		Name:        in.Name,
		Group:       in.Group,
		Description: in.Description,
		Options:     in.Options,
	})
	if err != nil {
		switch {
		case errors.Is(err, settingcontroller.ErrSettingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"warning": MsgNotFound})
		case errors.Is(err, settingcontroller.ErrSettingAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A setting with this key already exists",
			})
		}

		log.Error().Err(err).Str("key", oldKey).Msg("failed to update setting")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update setting",
		})
	}

	s.reg.Invalidate(oldKey)
	s.reg.Invalidate(record.Key)

	return c.JSON(s.view(record))
}

// SaveValue stores a new value for a setting, leaving its metadata alone.
func (s *Service) SaveValue(c *fiber.Ctx) error {
	key := c.Params("key")

	var in struct {
		Value any `json:"value"`
	}

	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := settingcontroller.SetValue(s.db, key, in.Value)
	if err != nil {
		if errors.Is(err, settingcontroller.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"warning": MsgNotFound})
		}

		log.Error().Err(err).Str("key", key).Msg("failed to save setting value")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save setting value",
		})
	}

	s.reg.Invalidate(key)

	return c.JSON(s.view(record))
}

// Move swaps a setting with its neighbour in the same group.
func (s *Service) Move(c *fiber.Ctx) error {
	key := c.Params("key")

	var in struct {
		Direction string `json:"direction" validate:"required,oneof=up down"`
	}

	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := s.validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
	}

	if err := settingcontroller.Swap(s.db, key, settingcontroller.Direction(in.Direction)); err != nil {
		if errors.Is(err, settingcontroller.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"warning": MsgNotFound})
		}

		log.Error().Err(err).Str("key", key).Msg("failed to move setting")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to move setting",
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// Delete removes a setting, cascading to its attachments for file types.
func (s *Service) Delete(c *fiber.Ctx) error {
	key := c.Params("key")

	if err := settingcontroller.Delete(s.db, s.storage, s.catalog, key); err != nil {
		if errors.Is(err, settingcontroller.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"warning": MsgNotFound})
		}

		log.Error().Err(err).Str("key", key).Msg("failed to delete setting")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete setting",
		})
	}

	s.reg.Invalidate(key)

	return c.JSON(fiber.Map{"status": "ok"})
}
