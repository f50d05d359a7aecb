package series

import (
	"fmt"

	"github.com/vk/calcgrid/internal/calcerr"
)

// Table is an ordered collection of uniquely named series. It is the
// external input of a calculation graph.
type Table struct {
	order   []string
	columns map[string]*Series
}

// NewTable builds a table from the given columns, keeping their order.
func NewTable(columns ...*Series) (*Table, error) {
	t := &Table{columns: make(map[string]*Series, len(columns))}
	for _, c := range columns {
		if c == nil {
			return nil, fmt.Errorf("%w: nil column", ErrInvalidSeries)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("%w: table columns must be named", ErrInvalidSeries)
		}
		if _, exists := t.columns[c.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidSeries, c.Name)
		}
		t.order = append(t.order, c.Name)
		t.columns[c.Name] = c
	}
	return t, nil
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of columns.
func (t *Table) Len() int { return len(t.order) }

// Column returns a copy of the named column.
func (t *Table) Column(name string) (*Series, error) {
	c, ok := t.columns[name]
	if !ok {
		return nil, calcerr.Newf(calcerr.ErrMissingInput, "column %q not found in table (have %v)", name, t.order)
	}
	return c.Copy(), nil
}

// Columns returns copies of all columns in table order.
func (t *Table) Columns() []*Series {
	out := make([]*Series, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.columns[name].Copy())
	}
	return out
}

// Select projects the named columns, in the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Series, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return NewTable(cols...)
}
