// Package loader reads the HMIS and Connecting Point extracts from a data
// directory and assembles the tables the linkage engine consumes. All source
// files are CSV exports from the upstream case management systems; the loader
// joins them, preserves the raw cell values, and parses dates and identifiers
// into typed columns.
package loader

import (
	"context"
	"path/filepath"

	"golang.org/x/text/encoding"

	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
)

// Loader reads source CSVs from a data directory laid out as
// hmis/, connecting_point/, and matching/ subdirectories.
type Loader struct {
	dir      string
	encoding encoding.Encoding
}

// Option configures a Loader.
type Option func(*Loader)

// WithEncoding sets the character encoding of the source files. The zero
// value reads files as UTF-8. Legacy exports are typically Windows-1252;
// use ParseEncoding to map a config string to an encoding.
func WithEncoding(enc encoding.Encoding) Option {
	return func(l *Loader) {
		l.encoding = enc
	}
}

// New returns a Loader rooted at the given data directory.
func New(dir string, opts ...Option) *Loader {
	l := &Loader{dir: dir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every source table and returns the assembled linkage input.
// It fails on the first unreadable file or missing column, before any
// graph work begins.
func (l *Loader) Load(ctx context.Context) (linkage.Input, error) {
	var in linkage.Input
	var err error

	if in.HMIS, err = l.LoadHMIS(ctx); err != nil {
		return linkage.Input{}, err
	}
	if in.CP, err = l.LoadConnectingPoint(ctx); err != nil {
		return linkage.Input{}, err
	}
	if in.HMISDuplicates, err = l.LoadHMISDuplicates(ctx); err != nil {
		return linkage.Input{}, err
	}
	if in.CPDuplicates, err = l.LoadCPDuplicates(ctx); err != nil {
		return linkage.Input{}, err
	}
	if in.Matches, err = l.LoadMatches(ctx); err != nil {
		return linkage.Input{}, err
	}

	return in, nil
}

func (l *Loader) readTable(sub, file string) (*table, error) {
	return readTable(filepath.Join(l.dir, sub, file), l.encoding)
}
