// Package domain defines the record, field and rule evaluation primitives
// shared by cleancore validators and plugins.
package domain

import (
	"errors"
	"fmt"
)

// EntityType identifies the type of record under validation.
type EntityType string

// Supported entity type identifiers used in violations and logs.
const (
	// EntityProduct identifies a catalogue product record.
	EntityProduct EntityType = "product"
	// EntityUserSettings identifies a composed user profile record.
	EntityUserSettings EntityType = "user_settings"
)

// Kind tags the primitive type carried by a Field.
type Kind string

// Supported field kinds. Any other value is rejected by validation.
const (
	KindText    Kind = "text"
	KindNumeric Kind = "numeric"
)

// Field is one named, kind-tagged value of a record.
type Field struct {
	Name   string
	Kind   Kind
	Text   string
	Number float64
}

// TextField builds a text field.
func TextField(name, value string) Field {
	return Field{Name: name, Kind: KindText, Text: value}
}

// NumericField builds a numeric field.
func NumericField(name string, value float64) Field {
	return Field{Name: name, Kind: KindNumeric, Number: value}
}

// Record exposes a statically declared, deterministically ordered field list.
// The shape of the list is fixed per type; only the values change between calls.
type Record interface {
	EntityType() EntityType
	Fields() []Field
}

// Ready marks a record whose every field satisfies its presence rule.
type Ready struct{}

// ErrFieldNotPresent matches every field presence failure via errors.Is.
var ErrFieldNotPresent = errors.New("field not present")

// ErrNilRecord is returned when validation receives no record.
var ErrNilRecord = errors.New("record cannot be nil")

// ErrEmptyField reports a text field with zero length.
type ErrEmptyField struct {
	Field string
}

func (e ErrEmptyField) Error() string {
	return fmt.Sprintf("%s is empty", e.Field)
}

// Is matches ErrFieldNotPresent.
func (e ErrEmptyField) Is(target error) bool { return target == ErrFieldNotPresent }

// ErrZeroOrNegativeField reports a numeric field that is not strictly positive.
type ErrZeroOrNegativeField struct {
	Field string
}

func (e ErrZeroOrNegativeField) Error() string {
	return fmt.Sprintf("%s is zero or negative", e.Field)
}

// Is matches ErrFieldNotPresent.
func (e ErrZeroOrNegativeField) Is(target error) bool { return target == ErrFieldNotPresent }

// ErrUnsupportedKind reports a field whose kind tag is outside the supported set.
// It is an assertion failure, not a presence failure, and does not match
// ErrFieldNotPresent.
type ErrUnsupportedKind struct {
	Field string
	Kind  Kind
}

func (e ErrUnsupportedKind) Error() string {
	return fmt.Sprintf("%s has unsupported kind %q", e.Field, e.Kind)
}

// FieldName extracts the offending field from a field presence error.
func FieldName(err error) (string, bool) {
	var empty ErrEmptyField
	if errors.As(err, &empty) {
		return empty.Field, true
	}
	var zero ErrZeroOrNegativeField
	if errors.As(err, &zero) {
		return zero.Field, true
	}
	var unsupported ErrUnsupportedKind
	if errors.As(err, &unsupported) {
		return unsupported.Field, true
	}
	return "", false
}
