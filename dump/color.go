package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/pouriyajamshidi/tailor/internal/term"
	"github.com/pouriyajamshidi/tailor/option"
)

// Color functions used when rendering values
var (
	colorHeader = color.Cyan.Sprint
	colorName   = color.LightCyan.Sprint
	colorType   = color.Yellow.Sprint
	colorValue  = color.LightGreen.Sprint
)

// ColorDumper renders values with color support. When the writer is
// not a terminal, output falls back to the plain format.
type ColorDumper struct {
	w   io.Writer
	opt options
}

type ColorDumperOption = option.Option[ColorDumper]

func (d *ColorDumper) options() *options {
	return &d.opt
}

// NewColorDumper creates a ColorDumper writing to w, or to standard
// output when w is nil.
func NewColorDumper(w io.Writer, opts ...ColorDumperOption) *ColorDumper {
	if w == nil {
		w = os.Stdout
	}

	d := &ColorDumper{
		w:   w,
		opt: options{MaxDepth: defaultMaxDepth},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dump writes the rendering of value to the dumper's writer.
func (d *ColorDumper) Dump(value any) error {
	if !term.IsTerminal(d.w) {
		p := PlainDumper{w: d.w, opt: d.opt}
		return p.Dump(value)
	}

	for _, e := range render(value, d.opt) {
		if _, err := fmt.Fprintln(d.w, colorLine(e, d.opt.ShowTypes)); err != nil {
			return err
		}
	}

	return nil
}

func colorLine(e entry, showTypes bool) string {
	if e.depth == 0 && e.value == "" {
		return colorHeader(e.name)
	}

	line := strings.Repeat("  ", e.depth) + colorName(e.name)

	if showTypes && e.typ != "" {
		line += " (" + colorType(e.typ) + ")"
	}

	if e.value != "" {
		line += ": " + colorValue(e.value)
	}

	return line
}
