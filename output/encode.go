package output

import (
	"strings"

	"github.com/tidwall/sjson"

	"github.com/vegasq/jsonquery/result"
)

// escapeKey escapes the characters sjson reads as path syntax so that a
// column such as detail.service stays a single flat key
func escapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		if isPathChar(key[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

func isPathChar(c byte) bool {
	switch c {
	case '\\', '.', ':', '|', '@', '*', '?', '#', ',', '(', ')', '=', '!', '<', '>', '~':
		return true
	}
	return false
}

// rowJSON renders a row as a JSON object with keys in column order
func rowJSON(row result.Row) ([]byte, error) {
	out := []byte("{}")
	for _, column := range row.Columns() {
		cell, _ := row.Get(column)
		var err error
		if out, err = setCell(out, escapeKey(column), cell); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// setCell stores c at path in out. Strings stay strings, lists become arrays
// and maps become objects keeping entry order. Absent cells store "".
func setCell(out []byte, path string, c result.Cell) ([]byte, error) {
	switch c.Kind() {
	case result.CellList, result.CellMap:
		raw, err := containerJSON(c)
		if err != nil {
			return nil, err
		}
		return sjson.SetRawBytes(out, path, raw)
	default:
		return sjson.SetBytes(out, path, c.String())
	}
}

func containerJSON(c result.Cell) ([]byte, error) {
	var err error
	if c.Kind() == result.CellList {
		out := []byte("[]")
		for _, item := range c.Items() {
			if out, err = setCell(out, "-1", item); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	out := []byte("{}")
	for _, e := range c.Entries() {
		if out, err = sjson.SetBytes(out, escapeKey(e.Key), e.Value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// cellText renders a cell as a single text field: scalars as themselves,
// lists and maps as compact JSON
func cellText(c result.Cell) (string, error) {
	if c.Kind() != result.CellList && c.Kind() != result.CellMap {
		return c.String(), nil
	}
	raw, err := containerJSON(c)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
