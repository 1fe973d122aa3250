package aviary

import "cleancore/pkg/capability"

// Flight metrics for the flying species.
const (
	ToucanFlight      = 100
	HummingbirdFlight = 200
)

// Toucan eats and flies.
type Toucan struct{}

func (Toucan) Name() string { return "toucan" }
func (Toucan) Eat()         {}
func (Toucan) Fly() int     { return ToucanFlight }

// Hummingbird eats and flies.
type Hummingbird struct{}

func (Hummingbird) Name() string { return "hummingbird" }
func (Hummingbird) Eat()         {}
func (Hummingbird) Fly() int     { return HummingbirdFlight }

// Ostrich eats and runs.
type Ostrich struct{}

func (Ostrich) Name() string { return "ostrich" }
func (Ostrich) Eat()         {}
func (Ostrich) Run()         {}

// Penguin eats and swims.
type Penguin struct{}

func (Penguin) Name() string { return "penguin" }
func (Penguin) Eat()         {}
func (Penguin) Swim()        {}

var (
	_ capability.Flyer   = Toucan{}
	_ capability.Flyer   = Hummingbird{}
	_ capability.Runner  = Ostrich{}
	_ capability.Swimmer = Penguin{}
)

// Species returns the reference species in name order.
func Species() []capability.Bird {
	return []capability.Bird{Hummingbird{}, Ostrich{}, Penguin{}, Toucan{}}
}
