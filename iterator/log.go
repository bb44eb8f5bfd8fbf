package iterator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrOpen wraps failures to open a log file.
var ErrOpen = errors.New("iterator: cannot open log")

// LogEntry is one line of a log.
type LogEntry struct {
	row string
}

// NewLogEntry returns an entry holding row.
func NewLogEntry(row string) LogEntry { return LogEntry{row: row} }

// Data returns the raw line.
func (e LogEntry) Data() string { return e.row }

// String implements fmt.Stringer.
func (e LogEntry) String() string { return fmt.Sprintf("LogEntry{row=%q}", e.row) }

// LogRepository serves the lines of a log. Iterators share the underlying
// reader, so lines consumed by one iterator are not seen by another.
type LogRepository struct {
	r      *bufio.Reader
	closer io.Closer
}

// NewLogRepository reads lines from r.
func NewLogRepository(r io.Reader) *LogRepository {
	repo := &LogRepository{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		repo.closer = c
	}
	return repo
}

// OpenLogRepository opens the file at path. The caller must Close it.
func OpenLogRepository(path string) (*LogRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return NewLogRepository(f), nil
}

// Iterator implements Repository.
func (r *LogRepository) Iterator() Iterator[LogEntry] {
	return r.LogIterator()
}

// LogIterator returns the concrete iterator, which also exposes Err.
func (r *LogRepository) LogIterator() *LogIterator {
	it := &LogIterator{r: r.r}
	it.advance()
	return it
}

// Close releases the underlying reader when it is closable.
func (r *LogRepository) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// LogIterator reads one line ahead so HasNext never blocks on I/O twice.
type LogIterator struct {
	r    *bufio.Reader
	next string
	ok   bool
	err  error
}

// HasNext implements Iterator.
func (it *LogIterator) HasNext() bool { return it.ok }

// Next implements Iterator.
func (it *LogIterator) Next() (LogEntry, bool) {
	if !it.ok {
		return LogEntry{}, false
	}
	cur := it.next
	it.advance()
	return NewLogEntry(cur), true
}

// Err returns the first non-EOF read error.
func (it *LogIterator) Err() error { return it.err }

func (it *LogIterator) advance() {
	line, err := it.r.ReadString('\n')
	switch {
	case err == nil:
		it.next, it.ok = trimEOL(line), true
	case errors.Is(err, io.EOF) && line != "":
		// final line without a trailing newline
		it.next, it.ok = trimEOL(line), true
	case errors.Is(err, io.EOF):
		it.next, it.ok = "", false
	default:
		it.next, it.ok, it.err = "", false, err
	}
}

func trimEOL(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}
