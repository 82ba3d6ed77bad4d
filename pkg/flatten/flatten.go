// Package flatten converts nested record graphs into single-level
// key/value rows for tabular display. A nested record field x under
// parent path p becomes "p.x"; a list of records at p indexes each
// element as "p[i]". Plain lists and scalars are stored as-is at their
// path.
package flatten

import (
	"fmt"
	"reflect"
)

// Flattenable is implemented by record types that expose their
// immediate fields for flattening. Values in the returned map may
// themselves be Flattenable, nested mappings, lists, or scalars.
type Flattenable interface {
	FlatFields() map[string]any
}

// Flatten walks v and returns the flat path-to-scalar mapping.
func Flatten(v any) map[string]any {
	out := map[string]any{}
	flattenInto("", v, out)
	return out
}

// Rows flattens each record of a result set into its own row.
func Rows[T Flattenable](items []T) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, Flatten(item))
	}
	return rows
}

func flattenInto(prefix string, v any, out map[string]any) {
	switch val := v.(type) {
	case Flattenable:
		for key, field := range val.FlatFields() {
			flattenInto(join(prefix, key), field, out)
		}
	case map[string]any:
		for key, field := range val {
			flattenInto(join(prefix, key), field, out)
		}
	default:
		if items, ok := recordList(v); ok {
			for i, item := range items {
				flattenInto(fmt.Sprintf("%s[%d]", prefix, i), item, out)
			}
			return
		}
		out[prefix] = v
	}
}

// recordList reports v as a slice of Flattenable elements. Lists of
// anything else stay unexpanded.
func recordList(v any) ([]Flattenable, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return nil, false
	}
	items := make([]Flattenable, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, ok := rv.Index(i).Interface().(Flattenable)
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}
	return items, true
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
