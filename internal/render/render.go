// Package render formats catalog objects for terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pretty renders one "KEY : value" line per top-level field, sorted by key,
// with a blank line between entries. Keys are upper-cased and padded to a
// common display width. Nested values are rendered as compact JSON.
func Pretty(obj map[string]any) string {
	if len(obj) == 0 {
		return ""
	}

	keys := make([]string, 0, len(obj))
	width := 0
	for k := range obj {
		keys = append(keys, k)
		if w := runewidth.StringWidth(strings.ToUpper(k)); w > width {
			width = w
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(runewidth.FillRight(strings.ToUpper(k), width))
		b.WriteString(" : ")
		b.WriteString(value(obj[k]))
		b.WriteString("\n")
	}
	return b.String()
}

// JSON renders obj as indented JSON.
func JSON(obj any) (string, error) {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// IDs renders one identifier per line.
func IDs(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return strings.Join(ids, "\n") + "\n"
}

func value(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; print integers without a fraction
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	}
}
