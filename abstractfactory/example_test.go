package abstractfactory_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/patterns/abstractfactory"
)

func ExampleForPlatform() {
	for _, platform := range []string{"windows", "linux"} {
		f, err := abstractfactory.ForPlatform(platform)
		if err != nil {
			fmt.Println(err)
			continue
		}
		b, _ := f.CreateButton(abstractfactory.Close)
		b.Click(os.Stdout)
	}

	// Output:
	// Windows close button clicked
	// Linux close button clicked
}
