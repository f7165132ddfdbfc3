// Package tailor configures freshly constructed values inline: each
// helper takes a value and one or more configuration steps, applies the
// steps, and returns the configured value, so construction and setup fit
// in a single expression.
package tailor

// With copies value, applies the steps to the copy and returns the copy.
// Steps receive a mutable reference to the copy only, so the caller's
// original is never modified. The copy is the plain Go copy: map, slice
// and pointer fields still alias the original. Use the deep package when
// those must be isolated too.
func With[T any](value T, steps ...func(*T)) T {
	for _, step := range steps {
		if step == nil {
			continue
		}
		step(&value)
	}
	return value
}

// WithErr is With for steps that can fail. It stops at the first failing
// step and returns its error unchanged, together with the copy in
// whatever state the steps left it. On error the copy is meant to be
// discarded; the original is untouched either way.
func WithErr[T any](value T, steps ...func(*T) error) (T, error) {
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(&value); err != nil {
			return value, err
		}
	}
	return value, nil
}

// Apply invokes the steps with target itself, then returns that same
// target. Mutations are visible to every holder of the pointer. A value
// type only enters Apply through an explicit &v, which keeps the two
// configuration shapes apart at compile time.
func Apply[T any](target *T, steps ...func(*T)) *T {
	for _, step := range steps {
		if step == nil {
			continue
		}
		step(target)
	}
	return target
}

// ApplyErr is Apply for steps that can fail. It stops at the first
// failing step and returns its error unchanged. Mutations made by the
// steps that already ran are kept; there is no rollback.
func ApplyErr[T any](target *T, steps ...func(*T) error) (*T, error) {
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(target); err != nil {
			return target, err
		}
	}
	return target, nil
}

// New allocates a zero T, applies the steps and returns the pointer.
func New[T any](steps ...func(*T)) *T {
	return Apply(new(T), steps...)
}

// Do runs action with value and returns value unchanged. It exists for
// inline side effects such as logging or registering the value. The
// action receives the value itself, not a reference, so it cannot
// reconfigure it.
func Do[T any](value T, action func(T)) T {
	if action != nil {
		action(value)
	}
	return value
}

// Ptr returns a pointer to a copy of value. It makes literals
// addressable so they can be handed straight to Apply.
func Ptr[T any](value T) *T {
	return &value
}
