package template_test

import (
	"os"

	"github.com/katalvlaran/patterns/template"
)

func ExamplePlay() {
	template.Play(os.Stdout, template.Mario{})
	template.Play(os.Stdout, &template.Tetris{Lines: 2})

	// Output:
	// Initializing game:
	// Initializing mario game
	// Starting game:
	// Starting mario game
	// Ending game:
	// Ending mario game
	// Initializing game:
	// Initializing tetris game
	// Starting game:
	// Starting tetris game
	// Ending game:
	// Ending tetris game
	// Final score: 200
}
