package fields

import (
	"fmt"
	"strings"
)

// ParamKind names the literal shape a builder parameter accepts. The
// resolver parses option literals against this kind instead of evaluating
// them, so a corrupt literal can never execute anything.
type ParamKind string

const (
	// KindFlag accepts "true" or "false".
	KindFlag ParamKind = "flag"
	// KindInt accepts an integer literal.
	KindInt ParamKind = "int"
	// KindFloat accepts a numeric literal.
	KindFloat ParamKind = "float"
	// KindText accepts any text, taken verbatim.
	KindText ParamKind = "text"
	// KindJSON accepts a JSON object or array literal.
	KindJSON ParamKind = "json"
)

// ParamDoc documents a single argument of a builder method.
type ParamDoc struct {
	Name    string `json:"name"`
	Default string `json:"default"`
}

// BuilderParam is one configurable builder method of a field type. Required
// parameters are pre-marked active with a usable default literal so a fresh
// setting renders out of the box.
type BuilderParam struct {
	Name     string     `json:"name"`
	Params   []ParamDoc `json:"params"`
	ParamStr string     `json:"param_str"`
	Full     string     `json:"full"`
	Raw      string     `json:"raw"`
	Active   bool       `json:"active"`
	Default  string     `json:"default"`
	Kind     ParamKind  `json:"kind"`
}

// Descriptor describes one registered field type.
type Descriptor struct {
	Name    string         `json:"name"`
	Class   string         `json:"class"`
	Methods []BuilderParam `json:"methods"`
}

// Method looks up a builder param by name.
func (d Descriptor) Method(name string) (BuilderParam, bool) {
	for _, m := range d.Methods {
		if m.Name == name {
			return m, true
		}
	}

	return BuilderParam{}, false
}

// method builds a BuilderParam for a chainable configuration method.
func method(name string, kind ParamKind, params ...ParamDoc) BuilderParam {
	defaults := make([]string, 0, len(params))
	names := make([]string, 0, len(params))

	for _, p := range params {
		defaults = append(defaults, p.Default)
		names = append(names, p.Name)
	}

	full := fmt.Sprintf("%s(%s)", name, strings.Join(names, ", "))

	return BuilderParam{
		Name:     name,
		Params:   params,
		ParamStr: strings.Join(defaults, ", "),
		Full:     full,
		Raw:      full,
		Kind:     kind,
	}
}

// required marks a builder param active with a default literal. Used for
// parameters a type can not render without.
func required(bp BuilderParam, def string) BuilderParam {
	bp.Active = true
	bp.Default = def
	bp.ParamStr = def

	return bp
}
