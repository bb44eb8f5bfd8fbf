package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/visitor"
)

type orderVisitor struct{ order []int }

func (o *orderVisitor) VisitLeaf(l *visitor.Leaf)         { o.order = append(o.order, l.Value()) }
func (o *orderVisitor) VisitTreeNode(n *visitor.TreeNode) { o.order = append(o.order, n.Value()) }

func sampleTree() *visitor.TreeNode {
	return visitor.NewTreeNode(1,
		visitor.NewTreeNode(2, visitor.NewLeaf(4), visitor.NewLeaf(5)),
		visitor.NewLeaf(3),
	)
}

func TestAccept_PostOrder(t *testing.T) {
	v := &orderVisitor{}
	sampleTree().Accept(v)
	assert.Equal(t, []int{4, 5, 2, 3, 1}, v.order)
}

func TestSumVisitor(t *testing.T) {
	s := &visitor.SumVisitor{}
	sampleTree().Accept(s)
	assert.Equal(t, 15, s.Sum)
	assert.Equal(t, 3, s.Leaves)
	assert.Equal(t, 2, s.TreeNodes)
}

func TestTreeNode_Add(t *testing.T) {
	n := visitor.NewTreeNode(0)
	assert.Empty(t, n.Children())
	n.Add(visitor.NewLeaf(1), visitor.NewLeaf(2))
	assert.Len(t, n.Children(), 2)

	s := &visitor.SumVisitor{}
	n.Accept(s)
	assert.Equal(t, 3, s.Sum)
}
