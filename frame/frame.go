// Package frame implements the column-oriented row batch handed to on-demand
// feature transformations. A Frame keeps column declaration order stable so
// transformation outputs and inferred schemas stay deterministic.
package frame

import (
	"sort"
)

type Frame struct {
	order   []string
	columns map[string][]interface{}
}

func New() *Frame {
	return &Frame{
		columns: make(map[string][]interface{}),
	}
}

// FromRows builds a Frame from row maps, the shape feature view DAOs return.
// Columns are ordered by sorted key over all rows; rows missing a key get a
// nil value.
func FromRows(rows []map[string]interface{}) *Frame {
	f := New()
	if len(rows) == 0 {
		return f
	}
	keySet := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		values := make([]interface{}, len(rows))
		for i, row := range rows {
			values[i] = row[k]
		}
		f.order = append(f.order, k)
		f.columns[k] = values
	}
	return f
}

// Len returns the row count.
func (f *Frame) Len() int {
	if len(f.order) == 0 {
		return 0
	}
	return len(f.columns[f.order[0]])
}

// Width returns the column count.
func (f *Frame) Width() int {
	return len(f.order)
}

// ColumnNames returns the column names in declaration order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.columns[name]
	return ok
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]interface{}, bool) {
	values, ok := f.columns[name]
	return values, ok
}

// AddColumn appends a column, or replaces an existing one in place. The
// value count must match the frame's row count once any column exists.
func (f *Frame) AddColumn(name string, values []interface{}) error {
	if len(f.order) > 0 && len(values) != f.Len() {
		return NewLengthMismatchError("AddColumn", name, f.Len(), len(values))
	}
	if _, ok := f.columns[name]; !ok {
		f.order = append(f.order, name)
	}
	f.columns[name] = values
	return nil
}

// Rename moves the values of oldName under newName, keeping the column
// position. Renaming a missing column is an error; an existing newName
// column is replaced.
func (f *Frame) Rename(oldName, newName string) error {
	values, ok := f.columns[oldName]
	if !ok {
		return NewColumnNotFoundError("Rename", oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, exists := f.columns[newName]; exists {
		f.dropFromOrder(newName)
	}
	delete(f.columns, oldName)
	f.columns[newName] = values
	for i, n := range f.order {
		if n == oldName {
			f.order[i] = newName
			break
		}
	}
	return nil
}

// Drop removes the named columns. Missing names are ignored so cleanup of
// temporary reconciliation columns stays idempotent.
func (f *Frame) Drop(names ...string) {
	for _, name := range names {
		if _, ok := f.columns[name]; !ok {
			continue
		}
		delete(f.columns, name)
		f.dropFromOrder(name)
	}
}

func (f *Frame) dropFromOrder(name string) {
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			return
		}
	}
}

// Copy returns a frame with copied column slices. Values are shared.
func (f *Frame) Copy() *Frame {
	cp := New()
	cp.order = make([]string, len(f.order))
	copy(cp.order, f.order)
	for name, values := range f.columns {
		vs := make([]interface{}, len(values))
		copy(vs, values)
		cp.columns[name] = vs
	}
	return cp
}

// Row returns the i-th row as a map. Used to build per-row evaluation
// environments.
func (f *Frame) Row(i int) map[string]interface{} {
	row := make(map[string]interface{}, len(f.order))
	for _, name := range f.order {
		row[name] = f.columns[name][i]
	}
	return row
}

// Rows converts the frame back to row maps.
func (f *Frame) Rows() []map[string]interface{} {
	rows := make([]map[string]interface{}, f.Len())
	for i := range rows {
		rows[i] = f.Row(i)
	}
	return rows
}
