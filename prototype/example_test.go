package prototype_test

import (
	"fmt"

	"github.com/katalvlaran/patterns/prototype"
)

func ExampleCloneAll() {
	trees := []prototype.Tree{prototype.NewChristmasTree(100), prototype.NewOldTree(200)}
	for i, c := range prototype.CloneAll(trees) {
		switch t := c.(type) {
		case *prototype.ChristmasTree:
			fmt.Println("christmas tree, price", t.Price)
		case *prototype.OldTree:
			fmt.Println("old tree, age", t.Age)
		}
		fmt.Println("same identity:", c.ID() == trees[i].ID())
	}

	// Output:
	// christmas tree, price 100
	// same identity: false
	// old tree, age 200
	// same identity: false
}
