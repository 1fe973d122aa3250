// Package aviary contributes the reference bird species and catalogue rules.
package aviary

import (
	"context"
	"fmt"

	"cleancore/internal/core"
	"cleancore/pkg/domain"
)

// SizeRuleName identifies the size warning rule.
const SizeRuleName = "product_size_known"

// Plugin implements the aviary reference module.
type Plugin struct{}

// New constructs an aviary plugin instance.
func New() Plugin {
	return Plugin{}
}

// Name returns the plugin identifier.
func (Plugin) Name() string { return "aviary" }

// Version returns the plugin semantic version.
func (Plugin) Version() string { return "0.1.0" }

// Register wires the reference species and the size rule.
func (Plugin) Register(registry *core.PluginRegistry) error {
	for _, bird := range Species() {
		if err := registry.RegisterSpecies(bird); err != nil {
			return err
		}
	}
	registry.RegisterRule(sizeKnownRule{})
	return nil
}

type sizeKnownRule struct{}

func (sizeKnownRule) Name() string { return SizeRuleName }

func (sizeKnownRule) Evaluate(_ context.Context, record domain.Record) (domain.Result, error) {
	product, ok := record.(domain.Product)
	if !ok || product.Size == domain.SizeUnset || product.Size.Known() {
		return domain.Result{}, nil
	}
	return domain.Result{Violations: []domain.Violation{{
		Rule:     SizeRuleName,
		Severity: domain.SeverityWarn,
		Message:  fmt.Sprintf("size %q is not in the catalogue", product.Size),
		Entity:   domain.EntityProduct,
		Field:    "size",
	}}}, nil
}
