package singleton_test

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/singleton"
)

func TestInstance_SamePointer(t *testing.T) {
	assert.Same(t, singleton.Instance(), singleton.Instance())
}

func TestInstance_ConcurrentFirstUse(t *testing.T) {
	const n = 64
	got := make([]*singleton.Shop, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = singleton.Instance()
			got[i].PrintSomething(io.Discard)
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		require.Same(t, got[0], s)
	}
	assert.GreaterOrEqual(t, singleton.Instance().Calls(), int64(n))
}
