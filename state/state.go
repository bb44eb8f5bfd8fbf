package state

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperCaseLimit is how many values UpperCaseState handles before
// switching back to lower case.
const UpperCaseLimit = 3

// State is the behavior of a Context in one of its modes.
type State interface {
	Handle(ctx *Context, value string)
}

// LowerCaseState prints one value in lower case, then switches to upper case.
type LowerCaseState struct {
	caser cases.Caser
}

// NewLowerCaseState returns a LowerCaseState.
func NewLowerCaseState() *LowerCaseState {
	return &LowerCaseState{caser: cases.Lower(language.Und)}
}

// Handle implements State.
func (s *LowerCaseState) Handle(ctx *Context, value string) {
	fmt.Fprintln(ctx.out, s.caser.String(value))
	ctx.SetState(NewUpperCaseState())
}

// UpperCaseState prints UpperCaseLimit values in upper case, then switches
// to lower case.
type UpperCaseState struct {
	caser   cases.Caser
	handled int
}

// NewUpperCaseState returns an UpperCaseState with a fresh counter.
func NewUpperCaseState() *UpperCaseState {
	return &UpperCaseState{caser: cases.Upper(language.Und)}
}

// Handle implements State.
func (s *UpperCaseState) Handle(ctx *Context, value string) {
	fmt.Fprintln(ctx.out, s.caser.String(value))
	s.handled++
	if s.handled >= UpperCaseLimit {
		s.handled = 0
		ctx.SetState(NewLowerCaseState())
	}
}

// Context forwards every value to its current State. Not safe for
// concurrent use.
type Context struct {
	state State
	out   io.Writer
}

// NewContext returns a Context in lower-case state writing to out.
func NewContext(out io.Writer) *Context {
	if out == nil {
		out = io.Discard
	}
	return &Context{state: NewLowerCaseState(), out: out}
}

// State returns the current state.
func (c *Context) State() State { return c.state }

// SetState switches the current state; nil is ignored.
func (c *Context) SetState(s State) {
	if s != nil {
		c.state = s
	}
}

// Handle processes value with the current state.
func (c *Context) Handle(value string) { c.state.Handle(c, value) }
