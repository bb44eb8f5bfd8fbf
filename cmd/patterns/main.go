// Command patterns runs the design pattern examples from the command line.
//
//	patterns list
//	patterns run state
//	echo "the answer is 42" | patterns run observer
//	patterns run iterator --file access.log
//
// Settings come from PATTERNS_* environment variables; see package config.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
