// Package template demonstrates the Template Method pattern.
//
// Play is the template: it fixes the order of the phases of a game and
// announces each one. A Game fills in the phases. Go has no abstract base
// classes, so the skeleton is a function over an interface rather than a
// final method on a superclass.
//
// Hooks are optional interfaces. A Game that also implements Scorer has its
// score reported once the game has ended; other games skip that step.
package template

import (
	"fmt"
	"io"
)

// Game supplies the variable steps of Play.
type Game interface {
	Initialize(w io.Writer)
	Start(w io.Writer)
	End(w io.Writer)
}

// Scorer is an optional hook reported after End.
type Scorer interface {
	Score() int
}

// Play runs g through its phases in fixed order.
func Play(w io.Writer, g Game) {
	fmt.Fprintln(w, "Initializing game:")
	g.Initialize(w)

	fmt.Fprintln(w, "Starting game:")
	g.Start(w)

	fmt.Fprintln(w, "Ending game:")
	g.End(w)

	if s, ok := g.(Scorer); ok {
		fmt.Fprintf(w, "Final score: %d\n", s.Score())
	}
}

// Mario is a Game without a score hook.
type Mario struct{}

func (Mario) Initialize(w io.Writer) { fmt.Fprintln(w, "Initializing mario game") }
func (Mario) Start(w io.Writer)      { fmt.Fprintln(w, "Starting mario game") }
func (Mario) End(w io.Writer)        { fmt.Fprintln(w, "Ending mario game") }

// Tetris is a Game that clears Lines rows and reports a score.
type Tetris struct {
	Lines int
}

func (t *Tetris) Initialize(w io.Writer) { fmt.Fprintln(w, "Initializing tetris game") }
func (t *Tetris) Start(w io.Writer)      { fmt.Fprintln(w, "Starting tetris game") }
func (t *Tetris) End(w io.Writer)        { fmt.Fprintln(w, "Ending tetris game") }

// Score awards 100 points per cleared line.
func (t *Tetris) Score() int { return t.Lines * 100 }
