package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		want string
	}{
		{
			name: "empty",
			obj:  map[string]any{},
			want: "",
		},
		{
			name: "aligned sorted keys",
			obj: map[string]any{
				"name":       "Kind of Blue",
				"popularity": float64(78),
				"explicit":   false,
			},
			want: "EXPLICIT   : false\n\nNAME       : Kind of Blue\n\nPOPULARITY : 78\n",
		},
		{
			name: "nested values and floats",
			obj: map[string]any{
				"tempo":   120.5,
				"genres":  []any{"jazz", "modal"},
				"preview": nil,
			},
			want: "GENRES  : [\"jazz\",\"modal\"]\n\nPREVIEW : null\n\nTEMPO   : 120.5\n",
		},
		{
			name: "wide keys",
			obj:  map[string]any{"日本": "x", "id": "y"},
			want: "ID   : y\n\n日本 : x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pretty(tt.obj))
		})
	}
}

func TestJSON(t *testing.T) {
	out, err := JSON(map[string]any{"id": "a"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"a\"\n}\n", out)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "", IDs(nil))
	assert.Equal(t, "a\nb\n", IDs([]string{"a", "b"}))
}
