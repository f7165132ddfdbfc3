package dump

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLDumper renders values as YAML documents. Field selection is the
// encoder's: all exported fields appear, honoring `yaml` struct tags.
type YAMLDumper struct {
	w io.Writer
}

// NewYAMLDumper creates a YAMLDumper writing to w, or to standard
// output when w is nil.
func NewYAMLDumper(w io.Writer) *YAMLDumper {
	if w == nil {
		w = os.Stdout
	}

	return &YAMLDumper{w: w}
}

// Dump writes value as a YAML document to the dumper's writer.
func (d *YAMLDumper) Dump(value any) error {
	enc := yaml.NewEncoder(d.w)
	enc.SetIndent(2)

	if err := enc.Encode(value); err != nil {
		enc.Close()
		return err
	}

	return enc.Close()
}
