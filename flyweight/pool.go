package flyweight

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Defaults for NewPool.
const (
	DefaultWorkers = 5
	DefaultTimeout = 60 * time.Second
)

var (
	// ErrOptionViolation indicates an invalid pool option.
	ErrOptionViolation = errors.New("flyweight: invalid pool option")

	// ErrPoolClosed is returned by Submit once Shutdown has been called.
	ErrPoolClosed = errors.New("flyweight: pool closed")

	// ErrPoolTimeout is returned by Shutdown when tasks ignore cancellation.
	ErrPoolTimeout = errors.New("flyweight: pool did not terminate")
)

// Task is a unit of work. It should return promptly once ctx is done.
type Task func(ctx context.Context) error

// PoolOptions configures a Pool.
type PoolOptions struct {
	Workers int
	Timeout time.Duration
	Logger  *zap.Logger

	err error
}

// PoolOption mutates PoolOptions.
type PoolOption func(*PoolOptions)

// WithWorkers bounds the number of tasks running at once. n must be > 0.
func WithWorkers(n int) PoolOption {
	return func(o *PoolOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTimeout sets how long Shutdown waits before cancelling, and again
// after cancelling. d must be > 0.
func WithTimeout(d time.Duration) PoolOption {
	return func(o *PoolOptions) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: timeout must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithLogger sets the logger for shutdown diagnostics. Nil is ignored.
func WithLogger(l *zap.Logger) PoolOption {
	return func(o *PoolOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Pool runs submitted tasks on at most Workers goroutines.
type Pool struct {
	opts   PoolOptions
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	// sem holds one token per running task.
	sem chan struct{}
	// closing is closed by the first Shutdown to release blocked submitters.
	closing chan struct{}

	mu     sync.Mutex
	closed bool
	done   chan struct{}
	err    error
}

// NewPool returns a running pool. Tasks receive a context derived from
// ctx that is cancelled on forced shutdown or on the first task error.
func NewPool(ctx context.Context, opts ...PoolOption) (*Pool, error) {
	o := PoolOptions{Workers: DefaultWorkers, Timeout: DefaultTimeout, Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	return &Pool{
		opts:    o,
		group:   g,
		ctx:     gctx,
		cancel:  cancel,
		sem:     make(chan struct{}, o.Workers),
		closing: make(chan struct{}),
	}, nil
}

// Submit schedules task. It blocks while all workers are busy, and returns
// ErrPoolClosed if Shutdown is called meanwhile. Once the pool context is
// done a blocked Submit returns its error instead.
func (p *Pool) Submit(task Task) error {
	select {
	case <-p.closing:
		return ErrPoolClosed
	default:
	}

	select {
	case p.sem <- struct{}{}:
	case <-p.closing:
		return ErrPoolClosed
	case <-p.ctx.Done():
		return p.ctx.Err()
	}

	// Go never blocks here, so holding mu keeps Wait from starting mid-submit
	// without stalling Shutdown.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		<-p.sem
		return ErrPoolClosed
	}
	p.group.Go(func() error {
		defer func() { <-p.sem }()
		return task(p.ctx)
	})

	return nil
}

// Shutdown stops accepting tasks and waits for the submitted ones. It
// returns the first task error, or ErrPoolTimeout if tasks were still
// running after cancellation and a second wait. Calling it again returns
// the same result once the pool has settled.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.closing)
		p.done = make(chan struct{})
		go func() {
			p.err = p.group.Wait()
			close(p.done)
		}()
	}
	done := p.done
	p.mu.Unlock()

	if p.await(ctx, done) {
		p.cancel()
		return p.err
	}

	p.opts.Logger.Warn("pool did not finish in time, cancelling tasks",
		zap.Duration("timeout", p.opts.Timeout))
	p.cancel()

	if p.await(ctx, done) {
		return p.err
	}

	p.opts.Logger.Error("pool did not terminate", zap.Duration("timeout", p.opts.Timeout))

	return ErrPoolTimeout
}

// await reports whether done closed within the pool timeout. An expired
// ctx counts as a timeout unless done is already closed.
func (p *Pool) await(ctx context.Context, done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
	}

	timer := time.NewTimer(p.opts.Timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}
