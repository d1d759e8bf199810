// Package result holds the tabular output of a query.
//
// A ResultSet is an ordered list of Rows sharing one column list. Each cell
// of a row is a projection of the JSON value found at the column path: a
// string for scalars, a list for arrays and a flat map for objects. Rows
// expose typed accessors that coerce cells into ints, dates and date-times.
package result

import (
	"strings"

	"github.com/vegasq/jsonquery/document"
)

// CellKind identifies the shape of a projected cell
type CellKind int

const (
	CellAbsent CellKind = iota
	CellString
	CellList
	CellMap
)

// Entry is one key/value pair of a map cell
type Entry struct {
	Key   string
	Value string
}

// Cell is a projected value. The zero Cell is absent.
type Cell struct {
	kind    CellKind
	str     string
	items   []Cell
	entries []Entry
}

// StringCell returns a scalar cell
func StringCell(s string) Cell {
	return Cell{kind: CellString, str: s}
}

// ListCell returns a list cell. Items should be string or map cells.
func ListCell(items []Cell) Cell {
	return Cell{kind: CellList, items: items}
}

// MapCell returns a map cell with entries in order
func MapCell(entries []Entry) Cell {
	return Cell{kind: CellMap, entries: entries}
}

// Project converts the value found by a path lookup into a cell.
//
// Scalars become their text. Arrays become lists in which objects are
// flattened to maps and everything else to text. Objects become a map of each
// field to its text, one level deep. A failed lookup yields an absent cell.
func Project(v document.Value, found bool) Cell {
	if !found {
		return Cell{}
	}

	switch v.Kind() {
	case document.KindArray:
		items := make([]Cell, 0, v.Len())
		for _, item := range v.Items() {
			if item.Kind() == document.KindObject {
				items = append(items, MapCell(flatten(item)))
			} else {
				items = append(items, StringCell(item.Text()))
			}
		}
		return ListCell(items)
	case document.KindObject:
		return MapCell(flatten(v))
	case document.KindNull, document.KindBool, document.KindNumber, document.KindString:
		return StringCell(v.Text())
	default:
		return Cell{}
	}
}

func flatten(obj document.Value) []Entry {
	entries := make([]Entry, 0, obj.Len())
	for _, f := range obj.Fields() {
		entries = append(entries, Entry{Key: f.Key, Value: f.Value.Text()})
	}
	return entries
}

// Kind returns the shape of the cell
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsAbsent reports whether the column path resolved to nothing
func (c Cell) IsAbsent() bool {
	return c.kind == CellAbsent
}

// Str returns the scalar held by c and whether c is a string cell
func (c Cell) Str() (string, bool) {
	return c.str, c.kind == CellString
}

// Items returns the elements of a list cell, or nil
func (c Cell) Items() []Cell {
	if c.kind != CellList {
		return nil
	}
	return c.items
}

// Entries returns the entries of a map cell in order, or nil
func (c Cell) Entries() []Entry {
	if c.kind != CellMap {
		return nil
	}
	return c.entries
}

// Map returns the entries of a map cell as a Go map, or nil
func (c Cell) Map() map[string]string {
	if c.kind != CellMap {
		return nil
	}
	m := make(map[string]string, len(c.entries))
	for _, e := range c.entries {
		m[e.Key] = e.Value
	}
	return m
}

// String returns the comparison form of the cell: the scalar itself, the
// empty string when absent, and a bracketed rendering for lists and maps
// such as "[a, {k=v}]".
func (c Cell) String() string {
	switch c.kind {
	case CellString:
		return c.str
	case CellList:
		parts := make([]string, len(c.items))
		for i, item := range c.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case CellMap:
		parts := make([]string, len(c.entries))
		for i, e := range c.entries {
			parts[i] = e.Key + "=" + e.Value
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
