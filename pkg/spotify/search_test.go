package spotify

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// TestSearchQuery_Text tests query text rendering.
func TestSearchQuery_Text(t *testing.T) {
	tests := []struct {
		name  string
		query SearchQuery
		want  string
	}{
		{
			name:  "free text",
			query: SearchQuery{Text: "Miles Davis"},
			want:  "Miles Davis",
		},
		{
			name: "fields are flattened",
			query: SearchQuery{Fields: []Field{
				{Name: "artist", Value: "X"},
				{Name: "track", Value: "Y"},
			}},
			want: "artist:X track:Y",
		},
		{
			name: "text then fields",
			query: SearchQuery{Text: "blue", Fields: []Field{
				{Name: "year", Value: "1959"},
			}},
			want: "blue year:1959",
		},
		{
			name:  "or operator",
			query: SearchQuery{Text: "X", Operator: "or", OperatorQuery: "Y"},
			want:  "X OR Y",
		},
		{
			name:  "not operator mixed case",
			query: SearchQuery{Text: "X", Operator: "NoT", OperatorQuery: "Y"},
			want:  "X NOT Y",
		},
		{
			name:  "and is not an operator",
			query: SearchQuery{Text: "X", Operator: "and", OperatorQuery: "Y"},
			want:  "X",
		},
		{
			name:  "operator without operand",
			query: SearchQuery{Text: "X", Operator: "or"},
			want:  "X",
		},
		{
			name: "operator after fields",
			query: SearchQuery{
				Fields:        []Field{{Name: "artist", Value: "X"}},
				Operator:      "not",
				OperatorQuery: "live",
			},
			want: "artist:X NOT live",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.text()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestClient_Search tests the search request.
func TestClient_Search(t *testing.T) {
	tests := []struct {
		name      string
		query     SearchQuery
		wantQuery string
	}{
		{
			name: "fields encoded into q",
			query: SearchQuery{Fields: []Field{
				{Name: "artist", Value: "X"},
				{Name: "track", Value: "Y"},
			}},
			wantQuery: "q=artist%3AX+track%3AY&type=artist",
		},
		{
			name:      "type is lower-cased",
			query:     SearchQuery{Text: "X", Operator: "or", OperatorQuery: "Y", Type: "ALBUM"},
			wantQuery: "q=X+OR+Y&type=album",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, server := newFakeAPI(t)
			api.respond("/v1/search", http.StatusOK, `{"artists":{"items":[{"id":"a1"}]}}`)
			client, _ := newTestClient(t, server)

			obj, err := client.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if obj.Empty() {
				t.Error("expected non-empty result")
			}

			req := api.lastRequest()
			if req.URL.RawQuery != tt.wantQuery {
				t.Errorf("expected query %q, got %q", tt.wantQuery, req.URL.RawQuery)
			}
		})
	}
}

// TestClient_Search_Errors tests search argument validation and the
// non-2xx policy.
func TestClient_Search_Errors(t *testing.T) {
	api, server := newFakeAPI(t)
	client, _ := newTestClient(t, server)
	ctx := context.Background()

	_, err := client.Search(ctx, SearchQuery{Operator: "or", OperatorQuery: "Y"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if calls := api.tokenCalls.Load(); calls != 0 {
		t.Errorf("expected no token request for invalid query, got %d", calls)
	}

	api.respond("/v1/search", http.StatusBadRequest, `{"error":{"status":400}}`)
	obj, err := client.Search(ctx, SearchQuery{Text: "X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !obj.Empty() {
		t.Errorf("expected empty result, got %v", obj)
	}
}
