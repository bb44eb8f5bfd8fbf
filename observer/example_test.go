package observer_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/patterns/observer"
)

func ExampleInputReader() {
	r := observer.NewInputReader(strings.NewReader("the keyword is 42\n"))
	r.Register(observer.KeywordObserver{Out: os.Stdout})
	r.Register(observer.NumberObserver{Out: os.Stdout})

	_ = r.Read()

	// Output:
	// Keyword encountered
	// Number encountered
}
