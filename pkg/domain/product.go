package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Size enumerates the product sizes carried in the catalogue.
type Size string

// Catalogue sizes. SizeUnset is the zero value and fails presence validation.
const (
	SizeUnset Size = ""
	SizeS     Size = "S"
	SizeM     Size = "M"
	SizeXL    Size = "XL"
)

// ErrInvalidSize is returned by ParseSize for values outside the catalogue.
var ErrInvalidSize = errors.New("invalid size")

// ParseSize converts raw input to a Size.
func ParseSize(raw string) (Size, error) {
	switch s := Size(raw); s {
	case SizeUnset, SizeS, SizeM, SizeXL:
		return s, nil
	default:
		return SizeUnset, fmt.Errorf("%w: %q", ErrInvalidSize, raw)
	}
}

// Known reports whether the size is one of the catalogue sizes (unset excluded).
func (s Size) Known() bool {
	return s == SizeS || s == SizeM || s == SizeXL
}

// Product is a catalogue item subject to presence validation before display.
type Product struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
	Size  Size    `json:"size" yaml:"size"`
}

// EntityType implements Record.
func (Product) EntityType() EntityType { return EntityProduct }

// Fields implements Record. Order: name, price, size.
func (p Product) Fields() []Field {
	return []Field{
		TextField("name", p.Name),
		NumericField("price", p.Price),
		TextField("size", string(p.Size)),
	}
}

// String renders the product without checking readiness.
func (p Product) String() string {
	return fmt.Sprintf("%s (%s), %s", p.Name, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Size)
}
