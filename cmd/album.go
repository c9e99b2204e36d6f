package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jfmyers9/spoticat/internal/render"
	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/spf13/cobra"
)

// albumCmd represents the album command
var albumCmd = &cobra.Command{
	Use:   "album <id>",
	Short: "Look up an album",
	Long: `Look up an album by Spotify ID.

With --tracks the album's track listing is shown instead. With --track-ids
only the track IDs are printed, one per line, in album order.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlbum,
}

// albumsCmd represents the albums command
var albumsCmd = &cobra.Command{
	Use:   "albums <id>...",
	Short: "Look up several albums in one request",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAlbums,
}

func init() {
	rootCmd.AddCommand(albumCmd)
	rootCmd.AddCommand(albumsCmd)

	albumCmd.Flags().Bool("tracks", false, "Show the album's tracks")
	albumCmd.Flags().Bool("track-ids", false, "Print only the album's track IDs")
	albumCmd.MarkFlagsMutuallyExclusive("tracks", "track-ids")
}

func runAlbum(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	albums := s.client.Albums()
	id := args[0]

	if trackIDs, _ := cmd.Flags().GetBool("track-ids"); trackIDs {
		ids, err := albums.TrackIDs(ctx, id)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return errNoResults
		}
		if outputJSON {
			output, err := render.JSON(ids)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), render.IDs(ids))
		return err
	}

	var obj spotify.Object
	if tracks, _ := cmd.Flags().GetBool("tracks"); tracks {
		obj, err = albums.Tracks(ctx, id)
	} else {
		obj, err = albums.Get(ctx, id)
	}
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}

func runAlbums(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	obj, err := s.client.Albums().GetSeveral(ctx, args)
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}
