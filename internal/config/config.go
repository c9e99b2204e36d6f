package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Log level for the CLI (debug, info, warn, error)
	// Default: "warn"
	LogLevel string

	// Spotify application credentials
	Spotify SpotifyConfig

	// Response cache settings
	Cache CacheConfig
}

// SpotifyConfig holds Spotify specific configuration
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	Country      string

	// Optional endpoint overrides, e.g. for a proxy or tests
	APIURL      string
	AccountsURL string
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	Enabled bool
	TTL     int // seconds
	Path    string
}

// ErrMissingCredentials is returned by Validate when the client id or secret is empty.
var ErrMissingCredentials = errors.New("spotify client id and secret are required; run 'spoticat auth' or set SPOTICAT_SPOTIFY_CLIENT_ID and SPOTICAT_SPOTIFY_CLIENT_SECRET")

// Load reads configuration from file and environment
func Load() (*Config, error) {
	return load(getConfigDir(), ".env")
}

func load(configDir, envFile string) (*Config, error) {
	// A .env file is optional; values already in the environment win
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("log_level", "warn")
	v.SetDefault("spotify.country", "GB")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", 3600)
	v.SetDefault("cache.path", filepath.Join(configDir, "cache.db"))

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables, e.g. SPOTICAT_SPOTIFY_CLIENT_ID
	v.SetEnvPrefix("SPOTICAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		LogLevel: v.GetString("log_level"),
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("spotify.client_id"),
			ClientSecret: v.GetString("spotify.client_secret"),
			Country:      v.GetString("spotify.country"),
			APIURL:       v.GetString("spotify.api_url"),
			AccountsURL:  v.GetString("spotify.accounts_url"),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			TTL:     v.GetInt("cache.ttl"),
			Path:    v.GetString("cache.path"),
		},
	}

	return cfg, nil
}

// Validate checks that the Spotify credentials are present
func (c *Config) Validate() error {
	if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
		return ErrMissingCredentials
	}
	return nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "spoticat")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	return c.saveTo(getConfigDir())
}

func (c *Config) saveTo(configDir string) error {
	v := viper.New()

	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper. Access tokens are never written.
	v.Set("log_level", c.LogLevel)
	v.Set("spotify.client_id", c.Spotify.ClientID)
	v.Set("spotify.client_secret", c.Spotify.ClientSecret)
	v.Set("spotify.country", c.Spotify.Country)
	if c.Spotify.APIURL != "" {
		v.Set("spotify.api_url", c.Spotify.APIURL)
	}
	if c.Spotify.AccountsURL != "" {
		v.Set("spotify.accounts_url", c.Spotify.AccountsURL)
	}
	v.Set("cache.enabled", c.Cache.Enabled)
	v.Set("cache.ttl", c.Cache.TTL)
	v.Set("cache.path", c.Cache.Path)

	// Write to file
	if err := v.WriteConfigAs(configFile); err != nil {
		return err
	}

	// The file holds the client secret
	return os.Chmod(configFile, 0600)
}
