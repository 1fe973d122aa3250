package core

import (
	"fmt"
	"sort"

	"cleancore/pkg/capability"
)

// Plugin describes a module that contributes record rules and bird species.
type Plugin interface {
	Name() string
	Version() string
	Register(registry *PluginRegistry) error
}

// PluginRegistry accumulates plugin contributions during registration.
type PluginRegistry struct {
	rules   []Rule
	species map[string]capability.Bird
}

// NewPluginRegistry constructs a plugin registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		species: make(map[string]capability.Bird),
	}
}

// RegisterRule adds a record rule contributed by the plugin.
func (r *PluginRegistry) RegisterRule(rule Rule) {
	if rule == nil {
		return
	}
	r.rules = append(r.rules, rule)
}

// RegisterSpecies adds a bird species keyed by its name.
func (r *PluginRegistry) RegisterSpecies(bird capability.Bird) error {
	if bird == nil {
		return fmt.Errorf("species cannot be nil")
	}
	name := bird.Name()
	if name == "" {
		return fmt.Errorf("species name required")
	}
	if _, exists := r.species[name]; exists {
		return fmt.Errorf("species %s already registered", name)
	}
	r.species[name] = bird
	return nil
}

// Rules returns a copy of registered rules.
func (r *PluginRegistry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Species returns registered species sorted by name.
func (r *PluginRegistry) Species() []capability.Bird {
	out := make([]capability.Bird, 0, len(r.species))
	for _, bird := range r.species {
		out = append(out, bird)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// PluginMetadata stores metadata describing an installed plugin.
type PluginMetadata struct {
	Name    string
	Version string
	Rules   []string
	Species []string
}
