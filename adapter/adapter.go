// Package adapter demonstrates the Adapter pattern: making a type usable
// through an interface it was not written for.
//
// Code that resizes TwoDimensionalShape values cannot accept a sphere or a
// pyramid. TwoDimensionalAdapter wraps any ThreeDimensionalShape and presents
// it as a TwoDimensionalShape. It adds no behavior of its own beyond the
// translation; adding behavior is the job of a decorator.
package adapter

import (
	"fmt"
	"io"
	"math"
)

// TwoDimensionalShape is the interface clients expect.
type TwoDimensionalShape interface {
	Draw(w io.Writer)
	Resize(w io.Writer, factor int)
	Area() int
}

// ThreeDimensionalShape is the incompatible interface being adapted.
type ThreeDimensionalShape interface {
	Draw(w io.Writer)
	Resize(w io.Writer)
	Volume() int
}

// Triangle is a 2D shape.
type Triangle struct{}

func (Triangle) Draw(w io.Writer) { fmt.Fprintln(w, "Drawing triangle") }
func (Triangle) Resize(w io.Writer, factor int) {
	fmt.Fprintf(w, "Resizing triangle by factor %d\n", factor)
}
func (Triangle) Area() int { return 11 }

// Rectangle is a 2D shape.
type Rectangle struct{}

func (Rectangle) Draw(w io.Writer) { fmt.Fprintln(w, "Drawing rectangle") }
func (Rectangle) Resize(w io.Writer, factor int) {
	fmt.Fprintf(w, "Resizing rectangle by factor %d\n", factor)
}
func (Rectangle) Area() int { return 120 }

// Sphere is a 3D shape.
type Sphere struct{}

func (Sphere) Draw(w io.Writer)   { fmt.Fprintln(w, "Drawing 3D sphere") }
func (Sphere) Resize(w io.Writer) { fmt.Fprintln(w, "Resizing sphere") }
func (Sphere) Volume() int        { return 125 }

// Pyramid is a 3D shape.
type Pyramid struct{}

func (Pyramid) Draw(w io.Writer)   { fmt.Fprintln(w, "Drawing 3D pyramid") }
func (Pyramid) Resize(w io.Writer) { fmt.Fprintln(w, "Resizing pyramid") }
func (Pyramid) Volume() int        { return 64 }

// TwoDimensionalAdapter presents a ThreeDimensionalShape as a
// TwoDimensionalShape.
type TwoDimensionalAdapter struct {
	Shape ThreeDimensionalShape
}

// Adapt wraps s.
func Adapt(s ThreeDimensionalShape) TwoDimensionalAdapter {
	return TwoDimensionalAdapter{Shape: s}
}

// Draw implements TwoDimensionalShape.
func (a TwoDimensionalAdapter) Draw(w io.Writer) {
	fmt.Fprintln(w, "Converting and drawing 3D shape into 2D")
	a.Shape.Draw(w)
}

// Resize implements TwoDimensionalShape. 3D shapes resize without a
// factor, so factor is not forwarded.
func (a TwoDimensionalAdapter) Resize(w io.Writer, _ int) {
	fmt.Fprintln(w, "Converting and resizing 3D shape")
	a.Shape.Resize(w)
}

// Area implements TwoDimensionalShape as the projected area of a body of the
// same volume: round(volume^(2/3)).
func (a TwoDimensionalAdapter) Area() int {
	return int(math.Round(math.Pow(float64(a.Shape.Volume()), 2.0/3.0)))
}

// ResizeByFactor2 is a client that only knows TwoDimensionalShape.
func ResizeByFactor2(w io.Writer, s TwoDimensionalShape) {
	s.Resize(w, 2)
}
