package cmd

import (
	"context"
	"time"

	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/spf13/cobra"
)

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track <id>",
	Short: "Look up a track",
	Long: `Look up a track by Spotify ID.

Use --analysis for the track's audio analysis or --features for its
audio features (tempo, key, energy, ...).`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

// tracksCmd represents the tracks command
var tracksCmd = &cobra.Command{
	Use:   "tracks <id>...",
	Short: "Look up several tracks in one request",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTracks,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(tracksCmd)

	trackCmd.Flags().Bool("analysis", false, "Show the track's audio analysis")
	trackCmd.Flags().Bool("features", false, "Show the track's audio features")
	trackCmd.MarkFlagsMutuallyExclusive("analysis", "features")

	tracksCmd.Flags().Bool("features", false, "Show audio features for the tracks")
}

func runTrack(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	tracks := s.client.Tracks()
	id := args[0]

	analysis, _ := cmd.Flags().GetBool("analysis")
	features, _ := cmd.Flags().GetBool("features")

	var obj spotify.Object
	switch {
	case analysis:
		obj, err = tracks.AudioAnalysis(ctx, id)
	case features:
		obj, err = tracks.AudioFeatures(ctx, id)
	default:
		obj, err = tracks.Get(ctx, id)
	}
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}

func runTracks(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var obj spotify.Object
	if features, _ := cmd.Flags().GetBool("features"); features {
		obj, err = s.client.Tracks().AudioFeaturesSeveral(ctx, args)
	} else {
		obj, err = s.client.Tracks().GetSeveral(ctx, args)
	}
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}
