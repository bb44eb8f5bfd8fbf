package mediator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/mediator"
)

func TestMediator_GetMissing(t *testing.T) {
	m := mediator.New[int]()
	v, ok := m.Get("nope")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestMediator_NotifiesOnlyMatchingObservers(t *testing.T) {
	var m mediator.Mediator[string]
	var got1, got2 []string
	m.Subscribe("event1", func() {
		v, _ := m.Get("event1")
		got1 = append(got1, v)
	})
	m.Subscribe("event2", func() {
		v, _ := m.Get("event2")
		got2 = append(got2, v)
	})

	m.Set("event1", "a")
	m.Set("event1", "b")

	assert.Equal(t, []string{"a", "b"}, got1)
	assert.Empty(t, got2)
}

func TestMediator_SubscriptionOrder(t *testing.T) {
	m := mediator.New[int]()
	var order []int
	for i := 0; i < 3; i++ {
		m.Subscribe("x", func() { order = append(order, i) })
	}
	m.Set("x", 1)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestMediator_Unsubscribe(t *testing.T) {
	m := mediator.New[int]()
	calls := 0
	unsubscribe := m.Subscribe("x", func() { calls++ })

	m.Set("x", 1)
	unsubscribe()
	unsubscribe()
	m.Set("x", 2)

	assert.Equal(t, 1, calls)
	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

// TestMediator_ObserverMayWrite ensures observers run outside the lock.
func TestMediator_ObserverMayWrite(t *testing.T) {
	m := mediator.New[int]()
	m.Subscribe("celsius", func() {
		c, _ := m.Get("celsius")
		m.Set("fahrenheit", c*9/5+32)
	})
	m.Set("celsius", 100)

	f, ok := m.Get("fahrenheit")
	require.True(t, ok)
	assert.Equal(t, 212, f)
}

func TestMediator_Concurrent(t *testing.T) {
	m := mediator.New[int]()
	var mu sync.Mutex
	calls := 0
	m.Subscribe("n", func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Set("n", i)
			_, _ = m.Get("n")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, calls)
}
