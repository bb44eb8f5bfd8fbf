package command

import (
	"context"
	"fmt"
	"io"
)

// Response is one served request as seen by the LogReader.
type Response struct {
	Status int
	Size   int
}

// LogReader is the receiver: it owns the data and the actual operations.
type LogReader struct {
	out       io.Writer
	responses []Response
}

// NewLogReader returns a reader over responses reporting to out.
func NewLogReader(out io.Writer, responses []Response) *LogReader {
	if out == nil {
		out = io.Discard
	}
	return &LogReader{out: out, responses: responses}
}

// BiggestResponse returns the largest response size, 0 when empty.
func (r *LogReader) BiggestResponse() int {
	biggest := 0
	for _, resp := range r.responses {
		if resp.Size > biggest {
			biggest = resp.Size
		}
	}
	fmt.Fprintf(r.out, "Returning biggest response size %d\n", biggest)

	return biggest
}

// CountFailures returns how many responses carry a 5xx status.
func (r *LogReader) CountFailures() int {
	n := 0
	for _, resp := range r.responses {
		if resp.Status >= 500 {
			n++
		}
	}
	fmt.Fprintf(r.out, "Returning highest fails %d\n", n)

	return n
}

// BiggestResponseCommand asks its LogReader for the biggest response.
type BiggestResponseCommand struct {
	Reader *LogReader
}

// Execute implements Command.
func (c BiggestResponseCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Reader.BiggestResponse()

	return nil
}

// MostFailsCommand asks its LogReader for the failure count.
type MostFailsCommand struct {
	Reader *LogReader
}

// Execute implements Command.
func (c MostFailsCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Reader.CountFailures()

	return nil
}
