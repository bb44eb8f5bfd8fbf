package visitor_test

import (
	"os"

	"github.com/katalvlaran/patterns/visitor"
)

func ExamplePrintVisitor() {
	root := visitor.NewTreeNode(3)
	child1 := visitor.NewTreeNode(4, visitor.NewTreeNode(6), visitor.NewLeaf(7))
	child2 := visitor.NewTreeNode(5, visitor.NewLeaf(8), visitor.NewTreeNode(9))
	root.Add(child1, child2)

	root.Accept(visitor.PrintVisitor{Out: os.Stdout})

	// Output:
	// Visiting tree node with value 6
	// Visiting leaf with value 7
	// Visiting tree node with value 4
	// Visiting leaf with value 8
	// Visiting tree node with value 9
	// Visiting tree node with value 5
	// Visiting tree node with value 3
}
