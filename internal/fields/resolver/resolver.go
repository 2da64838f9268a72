// Package resolver turns a stored setting and its options matrix into a
// renderable field description. Resolution failures are local: an unknown
// type or a bad parameter literal degrades to a plain input field so the
// settings screen keeps working on corrupt configuration.
package resolver

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoSettings-Admin/GoSettings-Admin/internal/db/models"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields"
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/fields/codec"
)

// RenderedField is the field description handed to the admin UI layer.
type RenderedField struct {
	Class    string         `json:"class"`
	Key      string         `json:"key"`
	Title    string         `json:"title"`
	Help     string         `json:"help"`
	Value    any            `json:"value"`
	Params   map[string]any `json:"params"`
	Fallback bool           `json:"fallback"`
}

// Resolve filters the options matrix down to the active rows whose name is a
// builder parameter of the descriptor, keyed by parameter name. Stale rows
// from a previous type are ignored.
func Resolve(desc fields.Descriptor, rows []models.Option) map[string]string {
	out := make(map[string]string)

	for _, row := range rows {
		if !row.Active {
			continue
		}

		if _, ok := desc.Method(row.Name); !ok {
			continue
		}

		out[row.Name] = row.Param
	}

	return out
}

// Build constructs the renderable field for a setting. Parameters are
// applied in name order; any failure substitutes the plain input type.
func Build(s *models.Setting, cat *fields.Catalog) RenderedField {
	field := RenderedField{
		Class: s.Type,
		Key:   s.Key,
		Title: s.Name,
		Help:  s.Description,
	}

	// a setting without a saved value renders empty
	if s.Value != nil {
		field.Value = codec.Decode(*s.Value, s.IsArrayValue)
	}

	desc, ok := cat.Lookup(s.Type)
	if !ok {
		log.Warn().Str("key", s.Key).Str("type", s.Type).Msg("unknown field type, falling back to input")

		return fallback(field)
	}

	resolved := Resolve(desc, s.OptionRows())

	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}

	sort.Strings(names)

	params := make(map[string]any, len(resolved))

	for _, name := range names {
		bp, _ := desc.Method(name)

		parsed, err := parseLiteral(bp.Kind, resolved[name])
		if err != nil {
			log.Warn().Err(err).
				Str("key", s.Key).
				Str("param", name).
				Msg("bad option literal, falling back to input")

			return fallback(field)
		}

		params[name] = parsed
	}

	field.Params = params

	return field
}

// fallback renders the value as a plain input field.
func fallback(field RenderedField) RenderedField {
	field.Class = fields.ClassInput
	field.Params = map[string]any{}
	field.Fallback = true

	return field
}

// parseLiteral validates a configuration literal against the parameter kind.
// Literals are data, never code.
func parseLiteral(kind fields.ParamKind, literal string) (any, error) {
	switch kind {
	case fields.KindFlag:
		if literal == "" {
			// active flag row with no argument means enabled
			return true, nil
		}

		b, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, errors.Wrapf(err, "flag literal %q", literal)
		}

		return b, nil
	case fields.KindInt:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "int literal %q", literal)
		}

		return n, nil
	case fields.KindFloat:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "float literal %q", literal)
		}

		return f, nil
	case fields.KindText:
		return literal, nil
	case fields.KindJSON:
		var v any
		if err := json.Unmarshal([]byte(literal), &v); err != nil {
			return nil, errors.Wrapf(err, "json literal %q", literal)
		}

		return v, nil
	}

	return nil, errors.Errorf("unknown parameter kind %q", kind)
}
