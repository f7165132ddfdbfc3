package dump

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Diff reports how after differs from before. The empty string means
// the values are equal. Unexported fields are compared, not ignored.
func Diff(before, after any) string {
	return cmp.Diff(before, after, cmp.Exporter(func(reflect.Type) bool { return true }))
}
