package spotify

import (
	"context"
	"net/url"
	"strings"
)

// DefaultSearchType is the result type used when a query leaves Type empty.
const DefaultSearchType = "artist"

// Search queries the catalog.
//
// Field filters are flattened into "name:value" tokens after the free text.
// When both Operator and OperatorQuery are set and Operator is "or" or "not"
// (case-insensitive), " OR <operand>" or " NOT <operand>" is appended. Any
// other operator is ignored.
//
// A non-2xx response yields an empty Object.
//
// Example:
//
//	results, err := client.Search(ctx, spotify.SearchQuery{
//	    Fields: []spotify.Field{{Name: "artist", Value: "Radiohead"}},
//	    Type:   "album",
//	})
func (c *Client) Search(ctx context.Context, q SearchQuery) (Object, error) {
	text, err := q.text()
	if err != nil {
		return nil, err
	}

	searchType := strings.ToLower(q.Type)
	if searchType == "" {
		searchType = DefaultSearchType
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("type", searchType)

	return c.get(ctx, c.baseURL+"/"+DefaultVersion+"/search?"+params.Encode())
}

// text renders the final query text sent as the q parameter.
func (q SearchQuery) text() (string, error) {
	parts := make([]string, 0, len(q.Fields)+1)
	if q.Text != "" {
		parts = append(parts, q.Text)
	}
	for _, f := range q.Fields {
		parts = append(parts, f.Name+":"+f.Value)
	}
	if len(parts) == 0 {
		return "", &InvalidArgumentError{Argument: "query"}
	}

	text := strings.Join(parts, " ")

	if q.Operator != "" && q.OperatorQuery != "" {
		switch op := strings.ToLower(q.Operator); op {
		case "or", "not":
			text += " " + strings.ToUpper(op) + " " + q.OperatorQuery
		}
	}

	return text, nil
}
