/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jfmyers9/spoticat/internal/cache"
	"github.com/jfmyers9/spoticat/internal/config"
	"github.com/jfmyers9/spoticat/internal/logging"
	"github.com/jfmyers9/spoticat/internal/render"
	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	outputJSON bool
	logLevel   string
	useCache   bool
)

// errNoResults is returned when the API answered with an empty object
var errNoResults = errors.New("no results")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spoticat",
	Short: "Spotify catalog lookups from the command line",
	Long: `spoticat queries the Spotify Web API catalog using your application's
client credentials.

It can search the catalog and look up albums, artists, tracks, audio
analysis and audio features by Spotify ID. Credentials are read from
~/.config/spoticat/config.yaml, a .env file in the working directory, or
SPOTICAT_SPOTIFY_CLIENT_ID and SPOTICAT_SPOTIFY_CLIENT_SECRET.

Lookups that Spotify answers with an error status print nothing and exit 1.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print raw JSON instead of the key/value listing")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error; overrides config)")
	rootCmd.PersistentFlags().BoolVar(&useCache, "cache", false, "Serve repeated lookups from the local response cache (overrides config)")
}

// session bundles what a command needs to talk to the API.
type session struct {
	cfg    *config.Config
	client *spotify.Client
	logger zerolog.Logger
	store  *cache.Store
}

// Close releases the response cache if one was opened.
func (s *session) Close() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

// newSession loads configuration and builds the API client.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newSessionWithConfig(cmd, cfg)
}

func newSessionWithConfig(cmd *cobra.Command, cfg *config.Config) (*session, error) {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger := logging.New(os.Stderr, level)

	s := &session{cfg: cfg, logger: logger}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	cacheEnabled := cfg.Cache.Enabled
	if cmd.Flags().Changed("cache") {
		cacheEnabled = useCache
	}
	if cacheEnabled {
		store, err := cache.NewStore(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		s.store = store
		httpClient.Transport = &cache.Transport{
			Store:  store,
			TTL:    time.Duration(cfg.Cache.TTL) * time.Second,
			Logger: logger,
		}
		logger.Debug().Str("path", cfg.Cache.Path).Msg("Response cache enabled")
	}

	client, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		Country:      cfg.Spotify.Country,
		BaseURL:      cfg.Spotify.APIURL,
		AccountsURL:  cfg.Spotify.AccountsURL,
		HTTPClient:   httpClient,
		Logger:       logging.Adapter{Logger: logger},
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create spotify client: %w", err)
	}
	s.client = client

	return s, nil
}

// printObject writes obj in the selected output format.
func printObject(cmd *cobra.Command, obj spotify.Object) error {
	if obj.Empty() {
		return errNoResults
	}

	var output string
	if outputJSON {
		var err error
		output, err = render.JSON(obj)
		if err != nil {
			return err
		}
	} else {
		output = render.Pretty(obj)
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}
