package command_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/command"
)

type mockCommand struct{ mock.Mock }

func (m *mockCommand) Execute(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestInvoker_ExecutesRegisteredCommand(t *testing.T) {
	ctx := context.Background()
	cmd := new(mockCommand)
	cmd.On("Execute", ctx).Return(nil).Once()

	inv := command.NewInvoker()
	require.NoError(t, inv.Register("run", cmd))
	require.NoError(t, inv.Execute(ctx, "run"))
	cmd.AssertExpectations(t)
}

func TestInvoker_PropagatesCommandError(t *testing.T) {
	boom := errors.New("boom")
	inv := command.NewInvoker()
	require.NoError(t, inv.Register("fail", command.CommandFunc(func(context.Context) error { return boom })))

	assert.ErrorIs(t, inv.Execute(context.Background(), "fail"), boom)
}

func TestInvoker_UnknownCommand(t *testing.T) {
	inv := command.NewInvoker()
	err := inv.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestInvoker_RegisterValidation(t *testing.T) {
	inv := command.NewInvoker()
	assert.ErrorIs(t, inv.Register("", new(mockCommand)), command.ErrInvalidCommand)
	assert.ErrorIs(t, inv.Register("x", nil), command.ErrInvalidCommand)
	assert.Empty(t, inv.Names())
}

func TestInvoker_NamesSorted(t *testing.T) {
	inv := command.NewInvoker()
	noop := command.CommandFunc(func(context.Context) error { return nil })
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, inv.Register(n, noop))
	}
	assert.Equal(t, []string{"a", "b", "c"}, inv.Names())
}

func TestInvoker_Concurrent(t *testing.T) {
	inv := command.NewInvoker()
	noop := command.CommandFunc(func(context.Context) error { return nil })
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = inv.Register(fmt.Sprintf("cmd%d", i), noop)
		}(i)
		go func() {
			defer wg.Done()
			_ = inv.Names()
		}()
	}
	wg.Wait()
	assert.Len(t, inv.Names(), 50)
}

func TestLogReader(t *testing.T) {
	var buf bytes.Buffer
	r := command.NewLogReader(&buf, []command.Response{
		{Status: 200, Size: 4}, {Status: 503, Size: 10}, {Status: 500, Size: 1}, {Status: 404, Size: 2},
	})

	assert.Equal(t, 10, r.BiggestResponse())
	assert.Equal(t, 2, r.CountFailures())
	assert.Equal(t, "Returning biggest response size 10\nReturning highest fails 2\n", buf.String())

	empty := command.NewLogReader(nil, nil)
	assert.Zero(t, empty.BiggestResponse())
	assert.Zero(t, empty.CountFailures())
}

func TestCommands_RespectCancellation(t *testing.T) {
	var buf bytes.Buffer
	r := command.NewLogReader(&buf, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, command.MostFailsCommand{Reader: r}.Execute(ctx), context.Canceled)
	assert.ErrorIs(t, command.BiggestResponseCommand{Reader: r}.Execute(ctx), context.Canceled)
	assert.Empty(t, buf.String())
}
