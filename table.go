package pointplot

import (
	"fmt"
)

// Record is one parsed line: a fixed-arity tuple of coordinates.
type Record []float64

// Copy returns a copy of r.
func (r Record) Copy() Record {
	c := make(Record, len(r))
	copy(c, r)
	return c
}

// Table is an ordered collection of Records sharing a common list of
// column names. The zero value is not usable, construct Tables with
// NewTable, Load or Parse.
type Table struct {
	columns []string
	rows    []Record
}

// NewTable constructs a table with the given columns and rows. Both are
// copied. Every row must have exactly len(columns) fields.
func NewTable(columns []string, rows []Record) (*Table, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}

	t := &Table{
		columns: make([]string, len(columns)),
		rows:    make([]Record, len(rows)),
	}
	copy(t.columns, columns)
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, &ArityError{Line: i + 1, Got: len(r), Want: len(columns)}
		}
		t.rows[i] = r.Copy()
	}
	return t, nil
}

// newTable wraps already validated and exclusively owned data.
func newTable(columns []string, rows []Record) *Table {
	return &Table{columns: columns, rows: rows}
}

// checkColumns makes sure the column names are usable.
func checkColumns(columns []string) error {
	if len(columns) == 0 {
		return &ColumnError{Reason: "no columns"}
	}
	seen := NewStringSet()
	for _, c := range columns {
		if c == "" {
			return &ColumnError{Reason: "empty column name"}
		}
		if seen.Contains(c) {
			return &ColumnError{Name: c, Reason: "duplicate column name"}
		}
		seen.Add(c)
	}
	return nil
}

// N is the number of rows in t.
func (t *Table) N() int { return len(t.rows) }

// Arity is the number of fields of each row in t.
func (t *Table) Arity() int { return len(t.columns) }

// Columns returns the column names of t in order.
func (t *Table) Columns() []string {
	c := make([]string, len(t.columns))
	copy(c, t.columns)
	return c
}

// Row returns a copy of the i'th row.
func (t *Table) Row(i int) Record {
	return t.rows[i].Copy()
}

// Rows returns a copy of all rows in file order.
func (t *Table) Rows() []Record {
	rows := make([]Record, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Copy()
	}
	return rows
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether t has a column with the given name.
func (t *Table) Has(name string) bool { return t.Index(name) != -1 }

// Column extracts all values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	idx := t.Index(name)
	if idx == -1 {
		return nil, &ColumnError{Name: name, Reason: "no such column"}
	}
	values := make([]float64, len(t.rows))
	for i, r := range t.rows {
		values[i] = r[idx]
	}
	return values, nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table%v[%d]", t.columns, len(t.rows))
}
