package bridge_test

import (
	"os"

	"github.com/katalvlaran/patterns/bridge"
)

func Example() {
	vehicles := []bridge.Vehicle{
		bridge.NewOrdinaryCar(bridge.Construct{}, bridge.Assemble{}),
		bridge.NewBus(bridge.Construct{}, bridge.Assemble{}),
	}
	for _, v := range vehicles {
		v.Build(os.Stdout)
	}

	// Output:
	// Constructing
	// Assembling
	// Constructing
	// Assembling
}
