// Package fields holds the catalog of field types the settings registry can
// drive. Types are registered explicitly with their builder parameter schema
// as static data; the admin UI reads the catalog to populate the type
// dropdown and the per-type options matrix.
package fields

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Canonical class identifiers used across the registry.
const (
	ClassInput    = "input"
	ClassTextArea = "textarea"
	ClassNumber   = "number"
	ClassEmail    = "email"
	ClassURL      = "url"
	ClassCheckBox = "checkbox"
	ClassSwitch   = "switch"
	ClassSelect   = "select"
	ClassRadio    = "radio"
	ClassMatrix   = "matrix"
	ClassCode     = "code"
	ClassDateTime = "datetime"
	ClassColor    = "color"
	ClassRange    = "range"
	ClassPicture  = "picture"
	ClassCropper  = "cropper"
	ClassUpload   = "upload"
)

// denied are structural and non-data classes the registry can not drive
// through generic options. Register refuses them.
var denied = map[string]bool{
	"relation": true,
	"view":     true,
	"label":    true,
	"password": true,
}

// fileClasses hold binary attachments in their value.
var fileClasses = map[string]bool{
	ClassUpload:  true,
	ClassPicture: true,
	ClassCropper: true,
}

// Catalog is an ordered registry of field type descriptors.
type Catalog struct {
	order   []string
	byClass map[string]Descriptor
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byClass: make(map[string]Descriptor),
	}
}

// Register adds a descriptor to the catalog. Denied classes, duplicates and
// descriptors without a schema are skipped with a log line instead of
// failing the whole catalog.
func (c *Catalog) Register(d Descriptor) *Catalog {
	switch {
	case d.Class == "" || d.Name == "":
		log.Warn().Str("class", d.Class).Msg("field type without name or class skipped")
		return c
	case denied[d.Class]:
		log.Warn().Str("class", d.Class).Msg("denied field type skipped")
		return c
	}

	if _, ok := c.byClass[d.Class]; ok {
		log.Warn().Str("class", d.Class).Msg("duplicate field type skipped")
		return c
	}

	d.Methods = dedupeSorted(d.Methods)

	c.byClass[d.Class] = d
	c.order = append(c.order, d.Class)

	return c
}

// List returns the registered descriptors in registration order. With a
// filter only matching classes are returned.
func (c *Catalog) List(filter ...string) []Descriptor {
	var wanted map[string]bool

	if len(filter) > 0 {
		wanted = make(map[string]bool, len(filter))
		for _, f := range filter {
			wanted[f] = true
		}
	}

	out := make([]Descriptor, 0, len(c.order))

	for _, class := range c.order {
		if wanted != nil && !wanted[class] {
			continue
		}

		out = append(out, c.byClass[class])
	}

	return out
}

// Lookup returns the descriptor for a class.
func (c *Catalog) Lookup(class string) (Descriptor, bool) {
	d, ok := c.byClass[class]

	return d, ok
}

// IsFileClass reports whether the class stores attachment references.
func (c *Catalog) IsFileClass(class string) bool {
	return fileClasses[class]
}

// FileClasses returns the classes holding attachment references.
func (c *Catalog) FileClasses() []string {
	out := make([]string, 0, len(fileClasses))

	for _, class := range c.order {
		if fileClasses[class] {
			out = append(out, class)
		}
	}

	return out
}

// dedupeSorted drops duplicate method names and sorts the rest alphabetically.
func dedupeSorted(in []BuilderParam) []BuilderParam {
	seen := make(map[string]bool, len(in))
	out := make([]BuilderParam, 0, len(in))

	for _, m := range in {
		if m.Name == "" || seen[m.Name] {
			continue
		}

		seen[m.Name] = true
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}
