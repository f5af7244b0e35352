package loader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/bayesimpact/sf-homelessness/pkg/errors"
)

// table is a CSV file in memory with header-indexed column access.
// Rows keep their file order.
type table struct {
	name    string
	columns map[string]int
	rows    [][]string
}

// readTable reads a CSV file into a table. Ragged rows are tolerated and
// fully blank lines are skipped; cell lookups past a short row return "".
func readTable(path string, enc encoding.Encoding) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	t := &table{
		name:    filepath.Base(path),
		columns: make(map[string]int, len(header)),
	}
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "﻿"))
		if _, ok := t.columns[col]; !ok {
			t.columns[col] = i
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		if blankRow(row) {
			continue
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

func blankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// require fails with a MissingColumnError for the first named column the
// header does not carry.
func (t *table) require(cols ...string) error {
	for _, col := range cols {
		if _, ok := t.columns[col]; !ok {
			return errors.NewMissingColumnError(t.name, col)
		}
	}
	return nil
}

// rename remaps a header name, keeping the existing name when the target
// is already taken. Used for exports that vary header casing.
func (t *table) rename(from, to string) {
	i, ok := t.columns[from]
	if !ok {
		return
	}
	if _, taken := t.columns[to]; taken {
		return
	}
	delete(t.columns, from)
	t.columns[to] = i
}

// cell returns the trimmed value of the named column in a row, or "" when
// the column is absent or the row is too short.
func (t *table) cell(row []string, col string) string {
	i, ok := t.columns[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
