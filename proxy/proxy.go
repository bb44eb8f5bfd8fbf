package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// DefaultAttempts is the number of load attempts a ProxyImage makes.
const DefaultAttempts uint = 3

// ErrLoad is returned by Display when the image could not be loaded.
var ErrLoad = errors.New("proxy: load image")

// Image is the subject interface.
type Image interface {
	Display(w io.Writer) error
}

// Loader reads an image. The default loader reports the load to its
// writer and never fails.
type Loader interface {
	Load(ctx context.Context, fileName string) error
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, fileName string) error

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, fileName string) error { return f(ctx, fileName) }

// PrintLoader returns a Loader that writes "Loading <file>..." to w.
func PrintLoader(w io.Writer) Loader {
	return LoaderFunc(func(_ context.Context, fileName string) error {
		fmt.Fprintf(w, "Loading %s...\n", fileName)
		return nil
	})
}

// RealImage is an image that has already been loaded.
type RealImage struct {
	fileName string
}

// NewRealImage loads fileName with l and returns the loaded image.
func NewRealImage(ctx context.Context, fileName string, l Loader) (*RealImage, error) {
	if err := l.Load(ctx, fileName); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, fileName, err)
	}
	return &RealImage{fileName: fileName}, nil
}

// Display implements Image.
func (r *RealImage) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Displaying image through real image: %s\n", r.fileName)
	return err
}

// Option configures a ProxyImage.
type Option func(*ProxyImage)

// WithLoader replaces the loader. Nil is ignored.
func WithLoader(l Loader) Option {
	return func(p *ProxyImage) {
		if l != nil {
			p.loader = l
		}
	}
}

// WithAttempts sets how many times a load is tried. Zero is treated as 1.
func WithAttempts(n uint) Option {
	return func(p *ProxyImage) { p.attempts = max(n, 1) }
}

// WithLogger sets the logger for failed attempts. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *ProxyImage) {
		if l != nil {
			p.lggr = l
		}
	}
}

// ProxyImage defers loading until the first Display.
type ProxyImage struct {
	fileName string
	loader   Loader
	attempts uint
	lggr     *zap.Logger

	mu   sync.Mutex
	real *RealImage
}

// NewProxyImage returns a proxy for fileName. Without WithLoader, loads
// are reported to w.
func NewProxyImage(fileName string, w io.Writer, opts ...Option) *ProxyImage {
	p := &ProxyImage{
		fileName: fileName,
		loader:   PrintLoader(w),
		attempts: DefaultAttempts,
		lggr:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Display implements Image.
func (p *ProxyImage) Display(w io.Writer) error {
	return p.DisplayContext(context.Background(), w)
}

// DisplayContext is Display with a context bounding the load.
func (p *ProxyImage) DisplayContext(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Delegating call through proxy to real image.")

	real, err := p.load(ctx)
	if err != nil {
		return err
	}
	return real.Display(w)
}

// Loaded reports whether the real image has been loaded.
func (p *ProxyImage) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.real != nil
}

func (p *ProxyImage) load(ctx context.Context) (*RealImage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.real != nil {
		return p.real, nil
	}

	real, err := retry.DoWithData(
		func() (*RealImage, error) {
			return NewRealImage(ctx, p.fileName, p.loader)
		},
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.lggr.Warn("image load failed",
				zap.String("file", p.fileName),
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
	)
	if err != nil {
		return nil, err
	}
	p.real = real

	return real, nil
}
