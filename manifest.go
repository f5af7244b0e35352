package homelessness

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/bayesimpact/sf-homelessness/pkg/errors"
)

// Manifest describes a dataset on disk. It is the YAML counterpart of the
// pipeline options, checked into the repository next to the data it
// describes so runs are reproducible.
type Manifest struct {
	// DataDir is the directory holding the source subdirectories.
	DataDir string `yaml:"data_dir"`

	// Encoding names the character encoding of the source files.
	// Empty means UTF-8.
	Encoding string `yaml:"encoding,omitempty"`

	// Workers caps concurrent label materializations. Zero means the
	// default.
	Workers int `yaml:"workers,omitempty"`
}

// LoadManifest reads a dataset manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return &m, nil
}
