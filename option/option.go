// Package option provides generic functional options pattern utilities.
package option

// Option represents a functional option that configures a value of type T.
type Option[T any] func(*T)

// FailableOption represents a functional option whose configuration can fail.
type FailableOption[T any] func(*T) error

// Apply configures target with the given options and returns it. Nil
// options are skipped.
func Apply[T any](target *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(target)
	}
	return target
}

// ApplyErr configures target with the given options, stopping at the
// first failure and returning that option's error unchanged. Options
// applied before the failure stay applied.
func ApplyErr[T any](target *T, opts ...FailableOption[T]) (*T, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return target, err
		}
	}
	return target, nil
}

// Set is an ordered list of options for values of type T. Options run in
// order, so a later option wins whenever two touch the same field.
type Set[T any] []Option[T]

// Prepend adds options at the beginning of the set.
// Can be used for adding default options that explicit ones override.
// The combined set has its own backing array and never writes into the
// defaults slice.
func (s Set[T]) Prepend(defaults ...Option[T]) Set[T] {
	out := make(Set[T], 0, len(defaults)+len(s))
	out = append(out, defaults...)
	return append(out, s...)
}

// Build applies the set to a copy of base and returns the configured
// copy. The base itself is left untouched.
func (s Set[T]) Build(base T) T {
	Apply(&base, s...)
	return base
}
