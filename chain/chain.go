package chain

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Handler receives every message sent down a chain.
type Handler interface {
	Handle(msg string, level Level)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(msg string, level Level)

// Handle calls f(msg, level).
func (f HandlerFunc) Handle(msg string, level Level) { f(msg, level) }

// Then returns a handler that passes each message to h and afterwards to
// next. A nil next yields h unchanged.
func Then(h, next Handler) Handler {
	if next == nil {
		return h
	}
	if h == nil {
		return next
	}
	return HandlerFunc(func(msg string, level Level) {
		h.Handle(msg, level)
		next.Handle(msg, level)
	})
}

// Chain links handlers in order. Nil entries are skipped; an empty chain
// drops every message.
func Chain(handlers ...Handler) Handler {
	var head Handler
	for _, h := range handlers {
		head = Then(head, h)
	}
	if head == nil {
		return HandlerFunc(func(string, Level) {})
	}
	return head
}

// SinkHandler writes "Writing <msg> to <sink>" for the levels it accepts.
type SinkHandler struct {
	sink   string
	out    io.Writer
	levels levelSet
}

// NewSinkHandler returns a handler named sink that accepts only levels.
// A handler created with no levels accepts nothing.
func NewSinkHandler(sink string, out io.Writer, levels ...Level) *SinkHandler {
	if out == nil {
		out = io.Discard
	}
	return &SinkHandler{sink: sink, out: out, levels: newLevelSet(levels...)}
}

// NewConsoleHandler returns the "console" sink.
func NewConsoleHandler(out io.Writer, levels ...Level) *SinkHandler {
	return NewSinkHandler("console", out, levels...)
}

// NewEmailHandler returns the "email" sink.
func NewEmailHandler(out io.Writer, levels ...Level) *SinkHandler {
	return NewSinkHandler("email", out, levels...)
}

// NewFileHandler returns the "file" sink.
func NewFileHandler(out io.Writer, levels ...Level) *SinkHandler {
	return NewSinkHandler("file", out, levels...)
}

// Accepts reports whether level is handled by h.
func (h *SinkHandler) Accepts(level Level) bool { return h.levels.has(level) }

// Handle implements Handler.
func (h *SinkHandler) Handle(msg string, level Level) {
	if !h.levels.has(level) {
		return
	}
	fmt.Fprintf(h.out, "Writing %s to %s\n", msg, h.sink)
}

// ZapHandler forwards accepted messages to a zap logger.
// TRACE has no zap counterpart and is logged at debug.
type ZapHandler struct {
	lggr   *zap.Logger
	levels levelSet
}

// NewZapHandler returns a handler logging through lggr for the given levels.
func NewZapHandler(lggr *zap.Logger, levels ...Level) *ZapHandler {
	if lggr == nil {
		lggr = zap.NewNop()
	}
	return &ZapHandler{lggr: lggr, levels: newLevelSet(levels...)}
}

// Handle implements Handler.
func (h *ZapHandler) Handle(msg string, level Level) {
	if !h.levels.has(level) {
		return
	}
	field := zap.Stringer("level", level)
	switch level {
	case Error:
		h.lggr.Error(msg, field)
	case Warning:
		h.lggr.Warn(msg, field)
	case Info:
		h.lggr.Info(msg, field)
	default:
		h.lggr.Debug(msg, field)
	}
}
