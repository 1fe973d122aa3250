package core

import "cleancore/pkg/domain"

// Validate walks the record's fields in declared order and returns the first
// presence failure. Text fields must be non-empty and numeric fields strictly
// positive.
func Validate(record Record) (Ready, error) {
	if record == nil {
		return Ready{}, domain.ErrNilRecord
	}
	for _, field := range record.Fields() {
		if err := checkField(field); err != nil {
			return Ready{}, err
		}
	}
	return Ready{}, nil
}

func checkField(field Field) error {
	switch field.Kind {
	case domain.KindText:
		if len(field.Text) == 0 {
			return domain.ErrEmptyField{Field: field.Name}
		}
	case domain.KindNumeric:
		if field.Number <= 0 {
			return domain.ErrZeroOrNegativeField{Field: field.Name}
		}
	default:
		// Not reachable through the declared field lists.
		return domain.ErrUnsupportedKind{Field: field.Name, Kind: field.Kind}
	}
	return nil
}

// Describe renders the product only when it validates; otherwise it returns false.
func Describe(product Product) (string, bool) {
	if _, err := Validate(product); err != nil {
		return "", false
	}
	return product.String(), true
}
