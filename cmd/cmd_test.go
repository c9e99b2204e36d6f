package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jfmyers9/spoticat/internal/config"
	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpotify records requests made against a canned Web API.
type fakeSpotify struct {
	mu       sync.Mutex
	hits     map[string]int
	queries  map[string]string
	bodies   map[string]string
	tokenHit int
}

func newFakeSpotify(t *testing.T) *httptest.Server {
	t.Helper()
	f := &fakeSpotify{
		hits:    map[string]int{},
		queries: map[string]string{},
		bodies: map[string]string{
			"/v1/search":             `{"artists":{"items":[{"id":"a1","name":"Miles Davis"}],"total":1}}`,
			"/v1/albums/alb1":        `{"id":"alb1","name":"Kind of Blue","total_tracks":5}`,
			"/v1/albums/alb1/tracks": `{"items":[{"id":"t1"},{"id":"t2"}]}`,
			"/v1/artists":            `{"artists":[{"id":"a"},{"id":"b"}]}`,
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if r.URL.Path == "/api/token" {
			f.tokenHit++
			_, _ = w.Write([]byte(`{"access_token":"cli-token","token_type":"Bearer","expires_in":3600}`))
			return
		}

		f.hits[r.URL.Path]++
		f.queries[r.URL.Path] = r.URL.RawQuery

		body, ok := f.bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	testServers.Store(server.URL, f)
	return server
}

var testServers sync.Map

func fakeFor(server *httptest.Server) *fakeSpotify {
	v, _ := testServers.Load(server.URL)
	return v.(*fakeSpotify)
}

func (f *fakeSpotify) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeSpotify) tokenHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenHit
}

func (f *fakeSpotify) query(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

// setupEnv points configuration at a temporary home and the fake server.
func setupEnv(t *testing.T, server *httptest.Server, withCredentials bool) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SPOTICAT_SPOTIFY_API_URL", server.URL)
	t.Setenv("SPOTICAT_SPOTIFY_ACCOUNTS_URL", server.URL)
	if withCredentials {
		t.Setenv("SPOTICAT_SPOTIFY_CLIENT_ID", "cli-id")
		t.Setenv("SPOTICAT_SPOTIFY_CLIENT_SECRET", "cli-secret")
	}
	return home
}

// resetFlags restores every flag to its default between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, true)

	out, err := executeCommand(t, "", "search", "--field", "artist=Miles Davis", "--field", "year=1959", "--or", "Coltrane")
	require.NoError(t, err)

	assert.Contains(t, out, "ARTISTS : ")
	assert.Contains(t, out, "Miles Davis")
	assert.Equal(t, "q=artist%3AMiles+Davis+year%3A1959+OR+Coltrane&type=artist", fakeFor(server).query("/v1/search"))
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, true)

	_, err := executeCommand(t, "", "search", "--type", "album")
	require.Error(t, err)
	assert.Equal(t, 0, fakeFor(server).hitCount("/v1/search"))
}

func TestAlbumCommand(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, true)

	out, err := executeCommand(t, "", "album", "alb1")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME         : Kind of Blue")

	out, err = executeCommand(t, "", "album", "alb1", "--track-ids")
	require.NoError(t, err)
	assert.Equal(t, "t1\nt2\n", out)

	out, err = executeCommand(t, "", "--json", "album", "alb1", "--track-ids")
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"t1\",\n  \"t2\"\n]\n", out)
}

func TestBatchCommand(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, true)

	_, err := executeCommand(t, "", "artists", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "ids=a,b", fakeFor(server).query("/v1/artists"))
}

func TestLookupNotFound(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, true)

	out, err := executeCommand(t, "", "track", "missing", "--features")
	assert.ErrorIs(t, err, errNoResults)
	assert.Empty(t, out)
	assert.Equal(t, 1, fakeFor(server).hitCount("/v1/audio-features/missing"))
}

func TestMissingCredentials(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, false)

	_, err := executeCommand(t, "", "artist", "a1")
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
}

func TestCacheFlag(t *testing.T) {
	server := newFakeSpotify(t)
	home := setupEnv(t, server, true)

	for i := 0; i < 3; i++ {
		out, err := executeCommand(t, "", "--cache", "album", "alb1")
		require.NoError(t, err)
		assert.Contains(t, out, "Kind of Blue")
	}
	assert.Equal(t, 1, fakeFor(server).hitCount("/v1/albums/alb1"))

	_, err := os.Stat(filepath.Join(home, ".config", "spoticat", "cache.db"))
	require.NoError(t, err)

	out, err := executeCommand(t, "", "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 1")

	out, err = executeCommand(t, "", "cache", "clear")
	require.NoError(t, err)
	assert.Equal(t, "Removed 1 cached responses\n", out)
}

func TestTokenCommand(t *testing.T) {
	server := newFakeSpotify(t)
	setupEnv(t, server, true)

	out, err := executeCommand(t, "", "token")
	require.NoError(t, err)
	assert.Contains(t, out, "Expires: ")
	assert.NotContains(t, out, "cli-token")

	out, err = executeCommand(t, "", "token", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "Token: cli-token")
}

func TestAuthCommand(t *testing.T) {
	server := newFakeSpotify(t)
	home := setupEnv(t, server, false)

	out, err := executeCommand(t, "new-id\nnew-secret\n", "auth")
	require.NoError(t, err)
	assert.Contains(t, out, "Credentials verified")
	assert.Equal(t, 1, fakeFor(server).tokenHits())

	data, err := os.ReadFile(filepath.Join(home, ".config", "spoticat", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "client_id: new-id")
	assert.NotContains(t, string(data), "cli-token")
}

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"artist=Miles Davis", "year=1959", "album=a=b"})
	require.NoError(t, err)
	assert.Equal(t, []spotify.Field{
		{Name: "artist", Value: "Miles Davis"},
		{Name: "year", Value: "1959"},
		{Name: "album", Value: "a=b"},
	}, fields)

	for _, bad := range []string{"artist", "=x", "artist="} {
		_, err := parseFields([]string{bad})
		assert.Error(t, err, bad)
	}
}
