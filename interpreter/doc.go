// Package interpreter demonstrates the Interpreter pattern with a tiny query
// language over an in-memory database.
//
// The grammar has three expressions that nest like a SQL statement:
//
//	Select(column) → From(table) → Where(filter)
//
// Each expression records its part of the query in a shared Context and hands
// control to the next one; the innermost expression runs Context.Search.
// Search clears the query state so one Context can evaluate many statements.
//
//	ctx := interpreter.NewContext(interpreter.DefaultDatabase())
//	q := interpreter.Select{Column: 1, From: interpreter.From{
//	    Table: "people",
//	    Where: &interpreter.Where{Filter: interpreter.Equals(1, "Ivan")},
//	}}
//	names, err := q.Interpret(ctx)
//
// Databases are loaded from YAML:
//
//	tables:
//	  people:
//	    - [Ivan, Test, Something]
//
// Errors:
//
//   - ErrColumnOutOfRange: the selected column does not exist in a matching row.
//   - ErrDecode: the YAML document could not be decoded.
//
// An unknown table is not an error; it simply has no rows.
package interpreter
