package chain_test

import (
	"os"

	"github.com/katalvlaran/patterns/chain"
)

// ExampleChain builds console → email → file and sends one error and one
// info message down the chain.
func ExampleChain() {
	h := chain.Chain(
		chain.NewConsoleHandler(os.Stdout, chain.AllLevels()...),
		chain.NewEmailHandler(os.Stdout, chain.Error),
		chain.NewFileHandler(os.Stdout, chain.Info),
	)

	h.Handle("Test error", chain.Error)
	h.Handle("Test info", chain.Info)

	// Output:
	// Writing Test error to console
	// Writing Test error to email
	// Writing Test info to console
	// Writing Test info to file
}
