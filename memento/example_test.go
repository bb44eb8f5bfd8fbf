package memento_test

import (
	"os"

	"github.com/katalvlaran/patterns/memento"
)

func Example() {
	var history memento.Caretaker
	o := memento.NewOriginator("initial state", os.Stdout)
	history.Push(o.Save())

	o.SetState("new state")

	if m, err := history.Pop(); err == nil {
		_ = o.Restore(m)
	}

	// Output:
	// Setting state to initial state
	// Setting state to new state
	// Setting state to initial state
}
