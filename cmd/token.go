package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var tokenShow bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Request an access token and show when it expires",
	Long: `Exchange the configured client credentials for an access token and
print its expiry time. The token is only printed with --show.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().BoolVar(&tokenShow, "show", false, "Print the access token itself")
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	token, err := s.client.Auth().AccessToken(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	expiry := s.client.Auth().Expiry()
	fmt.Fprintf(out, "Expires: %s (in %s)\n", expiry.Format(time.RFC3339), time.Until(expiry).Round(time.Second))
	if tokenShow {
		fmt.Fprintf(out, "Token: %s\n", token)
	}

	return nil
}
