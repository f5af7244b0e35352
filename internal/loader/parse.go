package loader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/utc"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/bayesimpact/sf-homelessness/internal/utils/ptr"
	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/errors"
)

// Date layouts seen across the source exports. ISO dates come from the
// Connecting Point database dumps, slash dates from the HMIS reports.
var dateLayouts = []string{
	constants.DateFormatISO,
	"1/2/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
}

// parseDate parses a source date cell, trying each known layout in order.
// Returns nil for blank or unparseable values.
func parseDate(s string) *utc.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := utc.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseID parses an identifier cell. Exports produced through spreadsheet
// round-trips render integer ids as floats ("1234.0"), so those are
// accepted too. Returns nil for blank or non-integral values.
func parseID(s string) *int64 {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return nil
	}
	return ptr.To(int64(f))
}

// parseAge parses an age cell the same way parseID does.
func parseAge(s string) *int {
	id := parseID(s)
	if id == nil {
		return nil
	}
	return ptr.To(int(*id))
}

// ParseEncoding maps a configuration string to a character encoding.
// An empty name or "utf-8" selects plain UTF-8 reading.
func ParseEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, errors.NewConfigError("loader", fmt.Sprintf("unsupported encoding %q", name), nil)
	}
}
