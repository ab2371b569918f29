// File: internal/api/project.go
package api

import (
	"reflect"
	"strings"
)

// Project reduces each item to the requested fields, keyed by their json
// names. Unknown field names are ignored. An empty selection returns the
// items unchanged.
func Project[T any](items []T, fields []string) any {
	if len(fields) == 0 {
		return items
	}
	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[f] = true
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		v := reflect.ValueOf(item)
		t := v.Type()
		row := make(map[string]any)
		for i := 0; i < t.NumField(); i++ {
			name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
			if name == "" || name == "-" {
				continue
			}
			if want[name] {
				row[name] = v.Field(i).Interface()
			}
		}
		out = append(out, row)
	}
	return out
}
