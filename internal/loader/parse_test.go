package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/bayesimpact/sf-homelessness/internal/utils/ptr"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *int64
	}{
		{name: "integer", in: "123", want: ptr.Int64(123)},
		{name: "float export", in: "999.0", want: ptr.Int64(999)},
		{name: "negative", in: "-4", want: ptr.Int64(-4)},
		{name: "blank", in: "", want: nil},
		{name: "text", in: "abc", want: nil},
		{name: "fractional", in: "1.5", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseID(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	iso := parseDate("2019-07-01")
	require.NotNil(t, iso)
	assert.Equal(t, 2019, iso.Year())

	slash := parseDate("1/1/2020")
	require.NotNil(t, slash)
	assert.Equal(t, 2020, slash.Year())

	stamped := parseDate("2019-07-01 14:30:00")
	require.NotNil(t, stamped)
	assert.Equal(t, 14, stamped.Hour())

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
}

func TestParseAge(t *testing.T) {
	age := parseAge("34")
	require.NotNil(t, age)
	assert.Equal(t, 34, *age)

	assert.Nil(t, parseAge(""))
	assert.Nil(t, parseAge("unknown"))
}

func TestParseEncoding(t *testing.T) {
	enc, err := ParseEncoding("")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = ParseEncoding("UTF-8")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = ParseEncoding("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	enc, err = ParseEncoding("latin-1")
	require.NoError(t, err)
	assert.Equal(t, charmap.ISO8859_1, enc)

	_, err = ParseEncoding("ebcdic")
	assert.Error(t, err)
}

func TestReadTableDecodesLegacyEncoding(t *testing.T) {
	tbl, err := readTable(filepath.Join("testdata", "cp1252.csv"), charmap.Windows1252)
	require.NoError(t, err)

	require.Len(t, tbl.rows, 1)
	assert.Equal(t, "José", tbl.cell(tbl.rows[0], "Name"))
	assert.Equal(t, "500", tbl.cell(tbl.rows[0], "Caseid"))
}

func TestReadTableShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.csv")
	content := "A,B\n1,2\n\n3\n , \n4,5,6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := readTable(path, nil)
	require.NoError(t, err)

	// Blank lines are skipped, short and long rows are kept.
	require.Len(t, tbl.rows, 3)
	assert.Equal(t, "2", tbl.cell(tbl.rows[0], "B"))
	assert.Equal(t, "", tbl.cell(tbl.rows[1], "B"))
	assert.Equal(t, "5", tbl.cell(tbl.rows[2], "B"))
	assert.Equal(t, "", tbl.cell(tbl.rows[0], "Missing"))
}

func TestTableRename(t *testing.T) {
	tbl := &table{
		name:    "case.csv",
		columns: map[string]int{"caseid": 0, "servstart": 1},
		rows:    [][]string{{"500", "2019-07-01"}},
	}

	tbl.rename("caseid", "Caseid")
	assert.Equal(t, "500", tbl.cell(tbl.rows[0], "Caseid"))
	assert.Equal(t, "", tbl.cell(tbl.rows[0], "caseid"))

	// Renaming a missing column is a no-op.
	tbl.rename("nope", "Nope")
	require.NoError(t, tbl.require("Caseid", "servstart"))
	assert.Error(t, tbl.require("Clientid"))
}
