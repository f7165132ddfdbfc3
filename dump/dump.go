// Package dump renders the configured state of values so the effect of
// configuration steps can be inspected.
package dump

import "strings"

// Dumper renders values to an output destination.
type Dumper interface {
	Dump(value any) error
}

// String returns the plain rendering of value, for quick inspection in
// logs and tests.
func String(value any) string {
	var sb strings.Builder

	d := NewPlainDumper(&sb)
	_ = d.Dump(value)

	return sb.String()
}
