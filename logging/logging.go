// Package logging builds the zap loggers used by the pattern examples that
// emit diagnostics (retries, pool shutdown, unknown commands).
//
// Teaching output never goes through a logger; it is written to the
// io.Writer handed to each example. Loggers are for what an operator of the
// driver would want to know.
//
// Tests should use Test or TestObserved; New is reserved for the CLI.
package logging

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognized level name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// New returns a production logger writing JSON to stderr at the given level.
func New(level zapcore.Level) (*zap.Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(level)
	})
}

// NewWith returns a logger built from a modified production zap.Config.
func NewWith(cfgFn func(*zap.Config)) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)
	lggr, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return lggr, nil
}

// Nop returns a logger that discards everything. Constructors use it when
// the caller passes a nil logger.
func Nop() *zap.Logger { return zap.NewNop() }

// Test returns a development console logger named after tb that writes
// through tb. zap's own errors fail the test.
func Test(tb testing.TB) *zap.Logger {
	tb.Helper()
	return newTest(tb, testCore(tb))
}

// TestObserved is Test with the entries recorded at lvl and above also
// returned for assertions.
func TestObserved(tb testing.TB, lvl zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)

	return newTest(tb, zapcore.NewTee(testCore(tb), oCore)), logs
}

func testCore(tb testing.TB) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zaptest.NewTestingWriter(tb), zapcore.DebugLevel)
}

func newTest(tb testing.TB, core zapcore.Core) *zap.Logger {
	return zap.New(core,
		zap.Development(),
		zap.AddCaller(),
		zap.ErrorOutput(zaptest.NewTestingWriter(tb).WithMarkFailed(true)),
	).Named(tb.Name())
}

// ParseLevel maps "debug", "info", "warn" and "error" (case-insensitive)
// to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
