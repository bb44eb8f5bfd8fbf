package interpreter

// Expression is a node of the query grammar.
type Expression interface {
	Interpret(ctx *Context) ([]string, error)
}

// Select projects one column of whatever From yields.
type Select struct {
	Column int
	From   Expression
}

// Interpret implements Expression.
func (s Select) Interpret(ctx *Context) ([]string, error) {
	ctx.SetColumn(s.Column)
	return s.From.Interpret(ctx)
}

// From names the table; Where is optional.
type From struct {
	Table string
	Where Expression
}

// Interpret implements Expression.
func (f From) Interpret(ctx *Context) ([]string, error) {
	ctx.SetTable(f.Table)
	if f.Where == nil {
		return ctx.Search()
	}
	return f.Where.Interpret(ctx)
}

// Where restricts the rows with Filter.
type Where struct {
	Filter Filter
}

// Interpret implements Expression. A nil *Where keeps every row.
func (w *Where) Interpret(ctx *Context) ([]string, error) {
	if w == nil {
		return ctx.Search()
	}
	ctx.SetFilter(w.Filter)
	return ctx.Search()
}

// Equals builds a filter matching rows whose column equals value. Rows
// without that column never match.
func Equals(column int, value string) Filter {
	return func(r Row) bool {
		return column >= 1 && column <= len(r) && r[column-1] == value
	}
}
