// Package codec converts between the stored value column (a plain scalar or
// a JSON encoded structure, selected by the is_array_value flag) and the
// typed in-memory value. Decoding never fails to the caller: malformed
// stored JSON falls back to the raw text.
package codec

import (
	"encoding/json"
	"strconv"
)

// Kind tags a decoded value.
type Kind int

const (
	// Scalar is a plain text value.
	Scalar Kind = iota
	// Structured is a decoded JSON collection.
	Structured
)

// Value is the in-memory form of a stored setting value. The persisted
// raw/flag pair never leaks past this package.
type Value struct {
	Kind       Kind
	Scalar     string
	Structured any
}

// Any returns the untyped payload of the value.
func (v Value) Any() any {
	if v.Kind == Structured {
		return v.Structured
	}

	return v.Scalar
}

// DecodeValue converts a stored raw value into its tagged in-memory form.
// With isArray set the raw text is parsed as JSON; a parse failure degrades
// to the scalar form carrying the raw text unchanged.
func DecodeValue(raw string, isArray bool) Value {
	if isArray && raw != "" {
		var structured any
		if err := json.Unmarshal([]byte(raw), &structured); err == nil {
			return Value{Kind: Structured, Structured: structured}
		}
	}

	return Value{Kind: Scalar, Scalar: raw}
}

// Decode converts a stored raw value into the untyped payload handed to
// callers of the registry accessor.
func Decode(raw string, isArray bool) any {
	return DecodeValue(raw, isArray).Any()
}

// Encode converts an in-memory value into its storage form. Collections
// serialize to canonical JSON with the array flag set; everything else is
// stored as text.
func Encode(v any) (raw string, isArray bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, false
	case bool:
		return strconv.FormatBool(val), false
	case int:
		return strconv.Itoa(val), false
	case int8:
		return strconv.FormatInt(int64(val), 10), false
	case int16:
		return strconv.FormatInt(int64(val), 10), false
	case int32:
		return strconv.FormatInt(int64(val), 10), false
	case int64:
		return strconv.FormatInt(val, 10), false
	case uint:
		return strconv.FormatUint(uint64(val), 10), false
	case uint8:
		return strconv.FormatUint(uint64(val), 10), false
	case uint16:
		return strconv.FormatUint(uint64(val), 10), false
	case uint32:
		return strconv.FormatUint(uint64(val), 10), false
	case uint64:
		return strconv.FormatUint(val, 10), false
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), false
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), false
	case json.Number:
		return val.String(), false
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		// not representable, keep whatever its text form is
		return "", false
	}

	return string(encoded), true
}

// Equal compares two decoded values for the redundant-write check when
// saving. Structured values compare by canonical JSON form.
func Equal(a, b any) bool {
	aRaw, aArr := Encode(a)
	bRaw, bArr := Encode(b)

	return aArr == bArr && aRaw == bRaw
}
