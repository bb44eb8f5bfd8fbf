// Package prototype demonstrates the Prototype pattern: new objects are made
// by copying an existing instance rather than by calling a constructor for a
// concrete type.
//
// Each Tree knows how to clone itself. Clones copy every field (the copy is
// shallow, which is sufficient for these value-only types) and receive a new
// identity, so a clone is equal in content but distinct in ID.
package prototype

import "github.com/google/uuid"

// Tree is the prototype interface.
type Tree interface {
	ID() uuid.UUID
	Position() int
	SetPosition(p int)
	Clone() Tree
}

// base holds the state common to every tree.
type base struct {
	id       uuid.UUID
	position int
}

func newBase() base { return base{id: uuid.New()} }

func (b *base) ID() uuid.UUID     { return b.id }
func (b *base) Position() int     { return b.position }
func (b *base) SetPosition(p int) { b.position = p }

// ChristmasTree is a tree with a price.
type ChristmasTree struct {
	base
	Price int
}

// NewChristmasTree returns a tree costing price.
func NewChristmasTree(price int) *ChristmasTree {
	return &ChristmasTree{base: newBase(), Price: price}
}

// Clone implements Tree.
func (t *ChristmasTree) Clone() Tree {
	c := *t
	c.id = uuid.New()
	return &c
}

// OldTree is a tree with an age in years.
type OldTree struct {
	base
	Age int
}

// NewOldTree returns a tree aged age.
func NewOldTree(age int) *OldTree {
	return &OldTree{base: newBase(), Age: age}
}

// Clone implements Tree.
func (t *OldTree) Clone() Tree {
	c := *t
	c.id = uuid.New()
	return &c
}

// CloneAll clones every tree, preserving order.
func CloneAll(trees []Tree) []Tree {
	out := make([]Tree, len(trees))
	for i, t := range trees {
		out[i] = t.Clone()
	}
	return out
}
