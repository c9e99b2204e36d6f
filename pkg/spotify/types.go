package spotify

// Object is a decoded JSON object returned by the Web API.
//
// An empty Object means the lookup failed or found nothing.
type Object map[string]any

// Empty reports whether the object has no fields.
func (o Object) Empty() bool {
	return len(o) == 0
}

// GetString returns the string value at key, or "" when absent or not a string.
func (o Object) GetString(key string) string {
	s, _ := o[key].(string)
	return s
}

// Items returns the "items" array of a paging object as Objects.
// Elements that are not JSON objects are skipped.
func (o Object) Items() []Object {
	raw, _ := o["items"].([]any)
	items := make([]Object, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			items = append(items, Object(m))
		}
	}
	return items
}

// Field is a single field filter of a search query, rendered as name:value.
type Field struct {
	Name  string
	Value string
}

// SearchQuery describes a search request.
type SearchQuery struct {
	Text          string  // Free text query
	Fields        []Field // Optional: field filters, appended in order
	Operator      string  // Optional: "or" or "not" (case-insensitive)
	OperatorQuery string  // Optional: operand for Operator
	Type          string  // Optional: result type (defaults to DefaultSearchType)
}
