package prototype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/prototype"
)

func TestClone_CopiesFieldsWithNewIdentity(t *testing.T) {
	orig := prototype.NewChristmasTree(100)
	orig.SetPosition(3)

	c, ok := orig.Clone().(*prototype.ChristmasTree)
	require.True(t, ok)
	assert.Equal(t, 100, c.Price)
	assert.Equal(t, 3, c.Position())
	assert.NotEqual(t, orig.ID(), c.ID())
	assert.NotSame(t, orig, c)
}

func TestClone_Independent(t *testing.T) {
	orig := prototype.NewOldTree(200)
	c := orig.Clone().(*prototype.OldTree)

	c.Age = 201
	c.SetPosition(9)
	assert.Equal(t, 200, orig.Age)
	assert.Equal(t, 0, orig.Position())
}

func TestCloneAll(t *testing.T) {
	trees := []prototype.Tree{prototype.NewChristmasTree(100), prototype.NewOldTree(200)}
	clones := prototype.CloneAll(trees)

	require.Len(t, clones, 2)
	assert.IsType(t, &prototype.ChristmasTree{}, clones[0])
	assert.IsType(t, &prototype.OldTree{}, clones[1])
	for i := range trees {
		assert.NotEqual(t, trees[i].ID(), clones[i].ID())
	}
	assert.Empty(t, prototype.CloneAll(nil))
}
