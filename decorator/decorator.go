// Package decorator demonstrates the Decorator pattern: adding behavior to
// a value at runtime by wrapping it in another value with the same
// interface.
//
// Scroll bars are added to a Window by wrapping it. Decorators stack in any
// order and any number.
package decorator

import (
	"fmt"
	"io"
)

// Window is the component interface.
type Window interface {
	Description() string
	Draw(w io.Writer)
}

// BasicWindow has no extras.
type BasicWindow struct{}

func (BasicWindow) Description() string { return "Basic window without any extra features" }
func (BasicWindow) Draw(w io.Writer)    { fmt.Fprintln(w, "Drawing basic window") }

// scrollWindow decorates a Window with a scroll bar.
type scrollWindow struct {
	inner       Window
	orientation string
}

func (s scrollWindow) Description() string {
	return s.inner.Description() + " + " + s.orientation + " scroll"
}

func (s scrollWindow) Draw(w io.Writer) {
	s.inner.Draw(w)
	fmt.Fprintf(w, "Drawing %s scroll bar\n", s.orientation)
}

// WithHorizontalScroll decorates win with a horizontal scroll bar.
func WithHorizontalScroll(win Window) Window {
	return scrollWindow{inner: win, orientation: "horizontal"}
}

// WithVerticalScroll decorates win with a vertical scroll bar.
func WithVerticalScroll(win Window) Window {
	return scrollWindow{inner: win, orientation: "vertical"}
}
