package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jfmyers9/spoticat/internal/config"
	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Configure Spotify application credentials",
	Long: `Configure the Spotify client credentials used by spoticat.

This command will:
1. Prompt for your application's client ID and client secret
2. Verify them by requesting an access token from Spotify
3. Save them to your config file

The access token itself is never saved; a new one is requested as needed.

You can create an application at: https://developer.spotify.com/dashboard`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Spotify Authentication")
	fmt.Fprintln(out, "======================")
	fmt.Fprintln(out)

	// Check if we already have credentials
	if cfg.Spotify.ClientID != "" && cfg.Spotify.ClientSecret != "" {
		fmt.Fprintf(out, "Found existing credentials.\n")
		fmt.Fprintf(out, "Client ID: %s\n", cfg.Spotify.ClientID)
		fmt.Fprint(out, "\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.Spotify.ClientID = ""
			cfg.Spotify.ClientSecret = ""
		}
	}

	if cfg.Spotify.ClientID == "" {
		fmt.Fprint(out, "Enter your Spotify Client ID: ")
		clientID, err := reader.ReadString('\n')
		if err != nil && clientID == "" {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
		cfg.Spotify.ClientID = strings.TrimSpace(clientID)
	}

	if cfg.Spotify.ClientSecret == "" {
		fmt.Fprint(out, "Enter your Spotify Client Secret: ")
		clientSecret, err := reader.ReadString('\n')
		if err != nil && clientSecret == "" {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
		cfg.Spotify.ClientSecret = strings.TrimSpace(clientSecret)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := newSessionWithConfig(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(out, "\nRequesting access token...")
	if err := s.client.Auth().Authorize(ctx); err != nil {
		var authErr *spotify.AuthenticationError
		if errors.As(err, &authErr) {
			return fmt.Errorf("spotify rejected the credentials (status %d)", authErr.StatusCode)
		}
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Credentials verified!\n")
	fmt.Fprintf(out, "✓ Saved to %s/config.yaml\n", config.GetConfigDir())
	fmt.Fprintln(out, "\nTry 'spoticat search \"miles davis\"' next.")

	return nil
}
