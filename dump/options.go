package dump

// defaultMaxDepth bounds rendering of nested and self-referential
// structures.
const defaultMaxDepth = 8

// options contains common display options shared by all dumpers
type options struct {
	ShowTypes bool
	ShowZeros bool
	MaxDepth  int
}

type hasOptions interface {
	options() *options
}

// WithTypes enables field type display in dumper output
func WithTypes[T hasOptions]() func(T) {
	return func(d T) {
		d.options().ShowTypes = true
	}
}

// WithZeros configures the dumper to also show zero-valued fields,
// which are hidden by default
func WithZeros[T hasOptions]() func(T) {
	return func(d T) {
		d.options().ShowZeros = true
	}
}

// WithMaxDepth limits how deep the dumper descends into nested structs
func WithMaxDepth[T hasOptions](depth int) func(T) {
	return func(d T) {
		d.options().MaxDepth = depth
	}
}
