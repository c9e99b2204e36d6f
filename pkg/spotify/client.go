package spotify

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds client configuration.
type Config struct {
	ClientID     string       // Required: application client id
	ClientSecret string       // Required: application client secret
	HTTPClient   *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL      string       // Optional: Web API base URL (defaults to DefaultBaseURL, used for testing)
	AccountsURL  string       // Optional: accounts service base URL (defaults to DefaultAccountsURL)
	Country      string       // Optional: country code for top tracks (defaults to DefaultCountry)
	Logger       Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify catalog operations.
//
// A Client caches a single bearer token and refreshes it before any
// authenticated request once it has expired.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	baseURL      string
	accountsURL  string
	country      string
	logger       Logger

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
	now         func() time.Time

	auth    *AuthService
	albums  *AlbumService
	artists *ArtistService
	tracks  *TrackService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com"

	// DefaultAccountsURL is the default Spotify accounts endpoint.
	DefaultAccountsURL = "https://accounts.spotify.com"

	// DefaultCountry is the country code used for artist top tracks.
	DefaultCountry = "GB"

	// DefaultVersion is the Web API version used when a request leaves it empty.
	DefaultVersion = "v1"
)

// NewClient creates a new Spotify API client.
//
// Returns a *ConfigurationError if ClientID or ClientSecret is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, &ConfigurationError{Field: "ClientID"}
	}
	if cfg.ClientSecret == "" {
		return nil, &ConfigurationError{Field: "ClientSecret"}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	accountsURL := cfg.AccountsURL
	if accountsURL == "" {
		accountsURL = DefaultAccountsURL
	}

	country := cfg.Country
	if country == "" {
		country = DefaultCountry
	}

	c := &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(baseURL, "/"),
		accountsURL:  strings.TrimRight(accountsURL, "/"),
		country:      country,
		logger:       cfg.Logger,
		now:          time.Now,
	}

	c.auth = &AuthService{client: c}
	c.albums = &AlbumService{client: c}
	c.artists = &ArtistService{client: c}
	c.tracks = &TrackService{client: c}

	return c, nil
}

// Auth returns the token lifecycle service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Albums returns the album lookup service.
func (c *Client) Albums() *AlbumService {
	return c.albums
}

// Artists returns the artist lookup service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// Tracks returns the track lookup service.
func (c *Client) Tracks() *TrackService {
	return c.tracks
}

// Country returns the country code used for top tracks lookups.
func (c *Client) Country() string {
	return c.country
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
