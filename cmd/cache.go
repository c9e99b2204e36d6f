package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/spoticat/internal/cache"
	"github.com/jfmyers9/spoticat/internal/config"
	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local response cache",
	Long: `Inspect or clear the local response cache.

Only successful GET lookups are cached, keyed by URL. Access tokens and
credentials are never written to the cache.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCacheStore(func(ctx context.Context, path string, store *cache.Store) error {
			st, err := store.Stats(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path:    %s\n", path)
			fmt.Fprintf(out, "Entries: %d\n", st.Total)
			fmt.Fprintf(out, "Expired: %d\n", st.Expired)
			return nil
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached response",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCacheStore(func(ctx context.Context, _ string, store *cache.Store) error {
			deleted, err := store.Clear(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached responses\n", deleted)
			return nil
		})
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired cached responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCacheStore(func(ctx context.Context, _ string, store *cache.Store) error {
			deleted, err := store.Prune(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired responses\n", deleted)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd, cachePruneCmd)
}

// withCacheStore opens the configured cache database for fn
func withCacheStore(fn func(ctx context.Context, path string, store *cache.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := cache.NewStore(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	return fn(context.Background(), cfg.Cache.Path, store)
}
