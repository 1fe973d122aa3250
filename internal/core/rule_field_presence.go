package core

import (
	"context"
	"errors"

	"cleancore/pkg/domain"
)

// FieldPresenceRuleName identifies the built-in presence rule in violations.
const FieldPresenceRuleName = "field_presence"

// NewFieldPresenceRule returns the rule that blocks records failing Validate.
func NewFieldPresenceRule() domain.Rule {
	return fieldPresenceRule{}
}

type fieldPresenceRule struct{}

func (fieldPresenceRule) Name() string { return FieldPresenceRuleName }

func (fieldPresenceRule) Evaluate(_ context.Context, record domain.Record) (domain.Result, error) {
	_, err := Validate(record)
	if err == nil {
		return domain.Result{}, nil
	}
	field, ok := domain.FieldName(err)
	if !ok || !errors.Is(err, domain.ErrFieldNotPresent) {
		return domain.Result{}, err
	}
	return domain.Result{Violations: []domain.Violation{{
		Rule:     FieldPresenceRuleName,
		Severity: domain.SeverityBlock,
		Message:  err.Error(),
		Entity:   record.EntityType(),
		Field:    field,
	}}}, nil
}
