// Package factory demonstrates the Factory Method pattern: one function is
// responsible for choosing and creating the concrete type behind an
// interface.
//
// There is no requirement that factories be methods; NewCar is a plain
// function, the way the standard library exposes constructors such as
// crypto.Hash.New.
package factory

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by NewCar for an unsupported Type.
var ErrUnknownType = errors.New("factory: unknown car type")

// Car is the product interface.
type Car interface {
	Move() string
	Park() string
}

// Type selects the concrete Car.
type Type int

// Car types.
const (
	OrdinaryCarType Type = iota
	TruckType
	BusType
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case OrdinaryCarType:
		return "ordinary car"
	case TruckType:
		return "truck"
	case BusType:
		return "bus"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// NewCar creates the Car for t.
func NewCar(t Type) (Car, error) {
	switch t {
	case OrdinaryCarType:
		return OrdinaryCar{}, nil
	case TruckType:
		return Truck{}, nil
	case BusType:
		return Bus{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// OrdinaryCar is a passenger car.
type OrdinaryCar struct{}

func (OrdinaryCar) Move() string { return "ordinary car drives off" }
func (OrdinaryCar) Park() string { return "ordinary car parks in a regular spot" }

// Truck carries cargo.
type Truck struct{}

func (Truck) Move() string { return "truck hauls its load" }
func (Truck) Park() string { return "truck parks at the loading dock" }

// Bus carries passengers on a route.
type Bus struct{}

func (Bus) Move() string { return "bus leaves the stop" }
func (Bus) Park() string { return "bus parks at the depot" }
