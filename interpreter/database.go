package interpreter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDecode wraps YAML decoding failures.
var ErrDecode = errors.New("interpreter: cannot decode database")

//go:embed testdata/people.yaml
var peopleFixture []byte

// Row is one record; columns are addressed from 1.
type Row []string

// String joins the columns with commas.
func (r Row) String() string { return strings.Join(r, ",") }

// Database maps a table name to its rows.
type Database map[string][]Row

type databaseDoc struct {
	Tables map[string][][]string `yaml:"tables"`
}

// LoadDatabase decodes a YAML document of the form {tables: {name: [[...]]}}.
func LoadDatabase(r io.Reader) (Database, error) {
	var doc databaseDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	db := make(Database, len(doc.Tables))
	for name, rows := range doc.Tables {
		table := make([]Row, len(rows))
		for i, cols := range rows {
			table[i] = Row(cols)
		}
		db[name] = table
	}

	return db, nil
}

// DefaultDatabase returns the bundled "people" table.
func DefaultDatabase() Database {
	db, err := LoadDatabase(bytes.NewReader(peopleFixture))
	if err != nil {
		panic(err) // embedded fixture is known good
	}

	return db
}
