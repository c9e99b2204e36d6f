package cmd

import (
	"context"
	"time"

	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/spf13/cobra"
)

// artistCmd represents the artist command
var artistCmd = &cobra.Command{
	Use:   "artist <id>",
	Short: "Look up an artist",
	Long: `Look up an artist by Spotify ID.

Use one of --albums, --top-tracks or --related to look up the artist's
albums, top tracks (for the configured country, GB by default) or related
artists instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runArtist,
}

// artistsCmd represents the artists command
var artistsCmd = &cobra.Command{
	Use:   "artists <id>...",
	Short: "Look up several artists in one request",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtists,
}

func init() {
	rootCmd.AddCommand(artistCmd)
	rootCmd.AddCommand(artistsCmd)

	artistCmd.Flags().Bool("albums", false, "Show the artist's albums")
	artistCmd.Flags().Bool("top-tracks", false, "Show the artist's top tracks")
	artistCmd.Flags().Bool("related", false, "Show related artists")
	artistCmd.MarkFlagsMutuallyExclusive("albums", "top-tracks", "related")
}

func runArtist(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	artists := s.client.Artists()
	id := args[0]

	albums, _ := cmd.Flags().GetBool("albums")
	topTracks, _ := cmd.Flags().GetBool("top-tracks")
	related, _ := cmd.Flags().GetBool("related")

	var obj spotify.Object
	switch {
	case albums:
		obj, err = artists.Albums(ctx, id)
	case topTracks:
		obj, err = artists.TopTracks(ctx, id)
	case related:
		obj, err = artists.RelatedArtists(ctx, id)
	default:
		obj, err = artists.Get(ctx, id)
	}
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}

func runArtists(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	obj, err := s.client.Artists().GetSeveral(ctx, args)
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}
