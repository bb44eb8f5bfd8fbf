package state_test

import (
	"os"

	"github.com/katalvlaran/patterns/state"
)

func ExampleContext() {
	ctx := state.NewContext(os.Stdout)
	for _, name := range []string{"Ivan", "Mariq", "Ana", "Zdravko", "Yordan", "Zahari", "Todor"} {
		ctx.Handle(name)
	}

	// Output:
	// ivan
	// MARIQ
	// ANA
	// ZDRAVKO
	// yordan
	// ZAHARI
	// TODOR
}
