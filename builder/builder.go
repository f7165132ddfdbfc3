// Package builder provides a chainable form of inline configuration for
// values whose setup spans several, possibly failing, steps.
package builder

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNilValue is reported by Build when the builder was handed a nil
	// instance to configure.
	ErrNilValue = errors.New("nil value to configure")
)

// validate is shared by all builders; validator instances cache
// struct metadata.
var validate = validator.New()

// Builder accumulates configuration steps for a value of type T together
// with the first error any step produced.
type Builder[T any] struct {
	value *T
	err   error
}

// New returns a Builder around a freshly allocated zero T.
func New[T any]() *Builder[T] {
	return &Builder[T]{value: new(T)}
}

// Of returns a Builder that configures an existing instance in place.
// The instance keeps its identity: Build returns the pointer that was
// passed in.
func Of[T any](value *T) *Builder[T] {
	b := &Builder[T]{value: value}
	if value == nil {
		b.err = ErrNilValue
	}
	return b
}

// Use applies the given steps to the value, in order. Nil steps are
// skipped. Use does nothing once an earlier step has failed.
func (b *Builder[T]) Use(steps ...func(*T)) *Builder[T] {
	if b.err != nil {
		return b
	}
	for _, step := range steps {
		if step == nil {
			continue
		}
		step(b.value)
	}
	return b
}

// Try applies steps that can fail. The first failure is recorded and
// later returned by Build, unchanged; steps after the failure do not
// run. Mutations made before the failure are kept.
func (b *Builder[T]) Try(steps ...func(*T) error) *Builder[T] {
	if b.err != nil {
		return b
	}
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(b.value); err != nil {
			b.err = err
			return b
		}
	}
	return b
}

// Validate checks the current value against its `validate` struct tags.
// A validation failure is recorded like a failing step. For a T that is
// not a struct, the validator reports an InvalidValidationError, which
// fails the build the same way.
func (b *Builder[T]) Validate() *Builder[T] {
	if b.err != nil {
		return b
	}
	if err := validate.Struct(b.value); err != nil {
		b.err = err
	}
	return b
}

// Build returns the configured value, or the first error a step or
// validation produced.
func (b *Builder[T]) Build() (*T, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.value, nil
}

// MustBuild is Build for configurations that are known to be correct,
// such as package-level defaults. It panics on error.
func (b *Builder[T]) MustBuild() *T {
	value, err := b.Build()
	if err != nil {
		panic(err)
	}
	return value
}
