package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ spotify.Logger = Adapter{}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
	}{
		{level: "debug", wantDebug: true},
		{level: "info", wantDebug: false},
		{level: "bogus", wantDebug: false},
		{level: "", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.level)
			logger.Debug().Msg("hello")
			assert.Equal(t, tt.wantDebug, buf.Len() > 0)
		})
	}
}

func TestAdapterDebugf(t *testing.T) {
	var buf bytes.Buffer
	adapter := Adapter{Logger: New(&buf, "debug")}

	adapter.Debugf("GET %s returned %d", "/v1/albums/x", 404)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "spotify", entry["component"])
	assert.Equal(t, "GET /v1/albums/x returned 404", entry["message"])
}
