package visitor

import (
	"fmt"
	"io"
)

// Visitor is an operation over the node types.
type Visitor interface {
	VisitLeaf(l *Leaf)
	VisitTreeNode(n *TreeNode)
}

// Node is an element of the tree.
type Node interface {
	Value() int
	Accept(v Visitor)
}

// TreeNode is an inner node; it may also have no children.
type TreeNode struct {
	value    int
	children []Node
}

// NewTreeNode returns a node with the given value and children.
func NewTreeNode(value int, children ...Node) *TreeNode {
	return &TreeNode{value: value, children: children}
}

// Value implements Node.
func (n *TreeNode) Value() int { return n.value }

// Add appends children.
func (n *TreeNode) Add(children ...Node) { n.children = append(n.children, children...) }

// Children returns the direct children.
func (n *TreeNode) Children() []Node { return n.children }

// Accept visits the children in order, then n.
func (n *TreeNode) Accept(v Visitor) {
	for _, c := range n.children {
		c.Accept(v)
	}
	v.VisitTreeNode(n)
}

// Leaf is a terminal node.
type Leaf struct {
	value int
}

// NewLeaf returns a leaf holding value.
func NewLeaf(value int) *Leaf { return &Leaf{value: value} }

// Value implements Node.
func (l *Leaf) Value() int { return l.value }

// Accept implements Node.
func (l *Leaf) Accept(v Visitor) { v.VisitLeaf(l) }

// PrintVisitor writes one line per visited node.
type PrintVisitor struct {
	Out io.Writer
}

// VisitLeaf implements Visitor.
func (p PrintVisitor) VisitLeaf(l *Leaf) {
	fmt.Fprintf(p.Out, "Visiting leaf with value %d\n", l.Value())
}

// VisitTreeNode implements Visitor.
func (p PrintVisitor) VisitTreeNode(n *TreeNode) {
	fmt.Fprintf(p.Out, "Visiting tree node with value %d\n", n.Value())
}

// SumVisitor totals node values, counting leaves and tree nodes separately.
type SumVisitor struct {
	Sum       int
	Leaves    int
	TreeNodes int
}

// VisitLeaf implements Visitor.
func (s *SumVisitor) VisitLeaf(l *Leaf) {
	s.Sum += l.Value()
	s.Leaves++
}

// VisitTreeNode implements Visitor.
func (s *SumVisitor) VisitTreeNode(n *TreeNode) {
	s.Sum += n.Value()
	s.TreeNodes++
}
