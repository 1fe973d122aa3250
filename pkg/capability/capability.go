// Package capability models entities as bundles of independent capabilities.
//
// Each capability is its own interface. A concrete type implements only the
// operations it supports, and callers reach an optional operation through a
// type assertion (see As) rather than through a shared contract that carries
// every possible operation. Membership is derived structurally from the
// interfaces a value satisfies, so it can never drift from the method set.
package capability

import (
	"sort"
	"strings"
)

// Capability tags one behaviour from the fixed vocabulary.
type Capability string

// Capability vocabulary.
const (
	Eat  Capability = "eat"
	Fly  Capability = "fly"
	Run  Capability = "run"
	Swim Capability = "swim"
)

// All returns the vocabulary in canonical order.
func All() []Capability {
	return []Capability{Eat, Fly, Run, Swim}
}

// Parse converts raw input to a Capability.
func Parse(raw string) (Capability, bool) {
	c := Capability(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range All() {
		if c == known {
			return c, true
		}
	}
	return "", false
}

func (c Capability) rank() int {
	for i, known := range All() {
		if c == known {
			return i
		}
	}
	return len(All())
}

// Eater is implemented by every entity.
type Eater interface {
	Eat()
}

// Flyer is implemented by entities that fly. Fly returns the flight metric.
type Flyer interface {
	Fly() int
}

// Runner is implemented by entities that run.
type Runner interface {
	Run()
}

// Swimmer is implemented by entities that swim.
type Swimmer interface {
	Swim()
}

// Bird is the minimum contract shared by every entity: identity and Eat.
type Bird interface {
	Eater
	Name() string
}

// As returns b viewed as capability interface T when b implements it.
func As[T any](b Bird) (T, bool) {
	t, ok := any(b).(T)
	return t, ok
}

// Capabilities derives the capability set of b from the interfaces it implements.
func Capabilities(b Bird) Set {
	if b == nil {
		return Set{}
	}
	set := Set{Eat}
	if _, ok := As[Flyer](b); ok {
		set = append(set, Fly)
	}
	if _, ok := As[Runner](b); ok {
		set = append(set, Run)
	}
	if _, ok := As[Swimmer](b); ok {
		set = append(set, Swim)
	}
	return set
}

// Has reports whether b implements capability c.
func Has(b Bird, c Capability) bool {
	return Capabilities(b).Has(c)
}

// Set is an ordered collection of distinct capabilities.
type Set []Capability

// NewSet builds a canonical set from the supplied capabilities, dropping duplicates.
func NewSet(caps ...Capability) Set {
	seen := make(map[Capability]struct{}, len(caps))
	out := make(Set, 0, len(caps))
	for _, c := range caps {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank() < out[j].rank() })
	return out
}

// Has reports membership.
func (s Set) Has(c Capability) bool {
	for _, member := range s {
		if member == c {
			return true
		}
	}
	return false
}

// Strings returns the members as plain strings.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = string(c)
	}
	return out
}

func (s Set) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}
