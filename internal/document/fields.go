package document

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sentinel errors for error type checking
var (
	// ErrMissingField indicates a required IR field is absent
	ErrMissingField = errors.New("missing field")

	// ErrFieldType indicates an IR field holds a value of the wrong type
	ErrFieldType = errors.New("wrong field type")

	// ErrUnknownKind indicates an IR discriminant no grammar knows
	ErrUnknownKind = errors.New("unknown kind")
)

// MissingFieldError names the absent field
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// FieldTypeError names the field and the expected type
type FieldTypeError struct {
	Field    string
	Expected string
	Found    any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q must be %s, got %T", e.Field, e.Expected, e.Found)
}

func (e *FieldTypeError) Unwrap() error {
	return ErrFieldType
}

// UnknownKindError names the unrecognized discriminant and the valid ones
type UnknownKindError struct {
	Kind  string
	Known []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown kind %q (expected one of %s)", e.Kind, strings.Join(e.Known, ", "))
}

func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownKind
}

// NewUnknownKindError creates a new unknown kind error
func NewUnknownKindError(kind string, known []string) error {
	sorted := append([]string(nil), known...)
	sort.Strings(sorted)
	return &UnknownKindError{Kind: kind, Known: sorted}
}

// Fields is a loosely-typed IR object as decoded from YAML or JSON
type Fields map[string]any

// AsFields asserts v is an object
func AsFields(v any) (Fields, error) {
	switch m := v.(type) {
	case Fields:
		return m, nil
	case map[string]any:
		return Fields(m), nil
	}
	return nil, &FieldTypeError{Field: "", Expected: "an object", Found: v}
}

// Has reports whether key is present
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Kind returns the "kind" discriminant
func (f Fields) Kind() (string, error) {
	return f.String("kind")
}

// String reads a required string field
func (f Fields) String(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Field: key, Expected: "a string", Found: v}
	}
	return s, nil
}

// OptionalString reads a string field, returning "" when absent
func (f Fields) OptionalString(key string) (string, error) {
	if !f.Has(key) {
		return "", nil
	}
	return f.String(key)
}

// Float reads a required numeric field
func (f Fields) Float(key string) (float64, error) {
	v, ok := f[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	n, ok := ToFloat(v)
	if !ok {
		return 0, &FieldTypeError{Field: key, Expected: "a number", Found: v}
	}
	return n, nil
}

// OptionalFloat reads a numeric field, returning nil when absent
func (f Fields) OptionalFloat(key string) (*float64, error) {
	if !f.Has(key) {
		return nil, nil
	}
	n, err := f.Float(key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Int reads a required integral field in the 32-bit signed range
func (f Fields) Int(key string) (int, error) {
	n, err := f.Float(key)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, &FieldTypeError{Field: key, Expected: "a 32-bit integer", Found: f[key]}
	}
	return int(n), nil
}

// Object reads a required nested object
func (f Fields) Object(key string) (Fields, error) {
	v, ok := f[key]
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	m, err := AsFields(v)
	if err != nil {
		return nil, &FieldTypeError{Field: key, Expected: "an object", Found: v}
	}
	return m, nil
}

// OptionalObject reads a nested object, returning nil when absent
func (f Fields) OptionalObject(key string) (Fields, error) {
	if !f.Has(key) {
		return nil, nil
	}
	return f.Object(key)
}

// List reads a required list field
func (f Fields) List(key string) ([]any, error) {
	v, ok := f[key]
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	l, ok := v.([]any)
	if !ok {
		return nil, &FieldTypeError{Field: key, Expected: "a list", Found: v}
	}
	return l, nil
}

// ToFloat converts any numeric value produced by a YAML or JSON decoder
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}
