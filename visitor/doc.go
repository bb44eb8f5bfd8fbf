// Package visitor demonstrates the Visitor pattern: separating an algorithm
// from the object structure it runs over, so new operations can be added
// without modifying the node types.
//
// The structure is a tree of TreeNode and Leaf values. Accept on a TreeNode
// visits its children first and then the node itself (post-order). Two
// visitors are provided: PrintVisitor describes every node, SumVisitor adds
// up the values.
package visitor
