// Package bridge demonstrates the Bridge pattern: the abstraction (a
// Vehicle) and its implementation (the Actions that build it) vary
// independently. Any vehicle can be built from any list of actions, and new
// actions need no new vehicle types.
package bridge

import (
	"fmt"
	"io"
)

// Action is the implementor side of the bridge.
type Action interface {
	Do(w io.Writer)
}

// ActionFunc adapts a function to Action.
type ActionFunc func(w io.Writer)

// Do calls f(w).
func (f ActionFunc) Do(w io.Writer) { f(w) }

// Construct is a build step.
type Construct struct{}

func (Construct) Do(w io.Writer) { fmt.Fprintln(w, "Constructing") }

// Assemble is a build step.
type Assemble struct{}

func (Assemble) Do(w io.Writer) { fmt.Fprintln(w, "Assembling") }

// Vehicle is the abstraction side of the bridge.
type Vehicle interface {
	Build(w io.Writer)
}

// OrdinaryCar runs its actions as they are.
type OrdinaryCar struct {
	actions []Action
}

// NewOrdinaryCar returns a car built by actions.
func NewOrdinaryCar(actions ...Action) *OrdinaryCar {
	return &OrdinaryCar{actions: actions}
}

// Build implements Vehicle.
func (c *OrdinaryCar) Build(w io.Writer) {
	for _, a := range c.actions {
		a.Do(w)
	}
}

// Bus is built in Stages passes over its actions, one per deck.
type Bus struct {
	Stages  int
	actions []Action
}

// NewBus returns a single-deck bus built by actions.
func NewBus(actions ...Action) *Bus {
	return &Bus{Stages: 1, actions: actions}
}

// Build implements Vehicle.
func (b *Bus) Build(w io.Writer) {
	for deck := 1; deck <= b.Stages; deck++ {
		if b.Stages > 1 {
			fmt.Fprintf(w, "Deck %d:\n", deck)
		}
		for _, a := range b.actions {
			a.Do(w)
		}
	}
}
