package interpreter

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrColumnOutOfRange indicates a selected column outside 1..len(row).
var ErrColumnOutOfRange = errors.New("interpreter: column out of range")

// Filter decides whether a row is part of the result.
type Filter func(Row) bool

func matchAll(Row) bool { return true }

// Context carries the database and the state of the query being evaluated.
// It is not safe for concurrent use.
type Context struct {
	db Database

	table  string
	column int
	filter Filter
}

// NewContext returns a Context over db.
func NewContext(db Database) *Context {
	return &Context{db: db, filter: matchAll}
}

// SetTable selects the table to read.
func (c *Context) SetTable(table string) { c.table = table }

// SetColumn selects the 1-based column to project.
func (c *Context) SetColumn(column int) { c.column = column }

// SetFilter restricts the rows; nil keeps every row.
func (c *Context) SetFilter(f Filter) {
	if f == nil {
		f = matchAll
	}
	c.filter = f
}

// Search evaluates the recorded query and resets the query state.
func (c *Context) Search() ([]string, error) {
	defer c.clear()

	rows := lo.Filter(c.db[c.table], func(r Row, _ int) bool { return c.filter(r) })
	for _, r := range rows {
		if c.column < 1 || c.column > len(r) {
			return nil, fmt.Errorf("%w: column %d, row %q", ErrColumnOutOfRange, c.column, r.String())
		}
	}

	return lo.Map(rows, func(r Row, _ int) string { return r[c.column-1] }), nil
}

func (c *Context) clear() {
	c.table = ""
	c.column = 0
	c.filter = matchAll
}
