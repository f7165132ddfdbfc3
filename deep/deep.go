// Package deep configures copies of values whose fields share memory
// through pointers, slices, or maps.
//
// The root package copies by assignment, so reference fields of the
// result still alias the original. The functions here clone the value
// first, making the result safe to mutate independently.
package deep

import (
	clone "github.com/huandu/go-clone/generic"

	"github.com/pouriyajamshidi/tailor"
)

// Copy returns a deep copy of value. Pointers, slices, and maps in the
// result do not alias the original.
func Copy[T any](value T) T {
	return clone.Clone(value)
}

// With deep-copies value, applies the given steps to the copy, and
// returns it. The original is never touched, not even through shared
// reference fields.
func With[T any](value T, steps ...func(*T)) T {
	return tailor.With(clone.Clone(value), steps...)
}

// WithErr is With for steps that can fail. The first failure stops the
// remaining steps, and the error is returned unchanged together with
// the partially configured copy.
func WithErr[T any](value T, steps ...func(*T) error) (T, error) {
	return tailor.WithErr(clone.Clone(value), steps...)
}
