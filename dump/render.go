package dump

import (
	"fmt"
	"reflect"
)

// entry is one line of a rendered value: a field, a nested struct
// header, or the root header.
type entry struct {
	depth int
	name  string
	typ   string
	value string
}

// render flattens a value into entries. Only exported fields appear;
// zero-valued fields are dropped unless ShowZeros is set, and struct
// nesting stops at MaxDepth.
func render(value any, opt options) []entry {
	v := indirect(reflect.ValueOf(value))
	if !v.IsValid() {
		return []entry{{name: "<nil>"}}
	}

	if s, ok := stringer(v); ok {
		return []entry{{name: v.Type().String(), value: s}}
	}

	if v.Kind() != reflect.Struct {
		return []entry{{name: v.Type().String(), value: formatValue(v)}}
	}

	out := []entry{{name: v.Type().String()}}
	walkStruct(&out, v, 1, opt)

	return out
}

func walkStruct(out *[]entry, v reflect.Value, depth int, opt options) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		fv := v.Field(i)
		if !opt.ShowZeros && fv.IsZero() {
			continue
		}

		walkField(out, field.Name, fv, depth, opt)
	}
}

func walkField(out *[]entry, name string, v reflect.Value, depth int, opt options) {
	v = indirect(v)
	if !v.IsValid() {
		*out = append(*out, entry{depth: depth, name: name, value: "<nil>"})
		return
	}

	typ := v.Type().String()

	if s, ok := stringer(v); ok {
		*out = append(*out, entry{depth: depth, name: name, typ: typ, value: s})
		return
	}

	if v.Kind() == reflect.Struct {
		if depth >= opt.MaxDepth {
			*out = append(*out, entry{depth: depth, name: name, typ: typ, value: "..."})
			return
		}

		*out = append(*out, entry{depth: depth, name: name, typ: typ})
		walkStruct(out, v, depth+1, opt)

		return
	}

	*out = append(*out, entry{depth: depth, name: name, typ: typ, value: formatValue(v)})
}

// indirect follows pointers and interfaces to the value they hold.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func stringer(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}

	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}

	return "", false
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return fmt.Sprintf("%q", v.String())
	}

	return fmt.Sprintf("%v", v)
}
