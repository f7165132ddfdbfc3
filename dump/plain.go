package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pouriyajamshidi/tailor/option"
)

// PlainDumper renders values in a simple, uncolored text format.
type PlainDumper struct {
	w   io.Writer
	opt options
}

type PlainDumperOption = option.Option[PlainDumper]

func (d *PlainDumper) options() *options {
	return &d.opt
}

// NewPlainDumper creates a PlainDumper writing to w, or to standard
// output when w is nil.
func NewPlainDumper(w io.Writer, opts ...PlainDumperOption) *PlainDumper {
	if w == nil {
		w = os.Stdout
	}

	d := &PlainDumper{
		w:   w,
		opt: options{MaxDepth: defaultMaxDepth},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dump writes the rendering of value to the dumper's writer.
func (d *PlainDumper) Dump(value any) error {
	for _, e := range render(value, d.opt) {
		if _, err := fmt.Fprintln(d.w, plainLine(e, d.opt.ShowTypes)); err != nil {
			return err
		}
	}

	return nil
}

func plainLine(e entry, showTypes bool) string {
	line := strings.Repeat("  ", e.depth) + e.name

	if showTypes && e.typ != "" {
		line += " (" + e.typ + ")"
	}

	if e.value != "" {
		line += ": " + e.value
	}

	return line
}
