package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jfmyers9/spoticat/pkg/spotify"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the Spotify catalog",
	Long: `Search the Spotify catalog.

Free text arguments are joined with spaces. Field filters are added with
--field name=value and sent as name:value. Use --or or --not to add an
alternative or excluded term.

Examples:
  spoticat search radiohead
  spoticat search --type album --field artist=Radiohead --field year=1997
  spoticat search "kind of blue" --type album --not live`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("type", "t", spotify.DefaultSearchType, "Result type (artist, album, track, playlist, ...)")
	searchCmd.Flags().StringArrayP("field", "f", nil, "Field filter as name=value (repeatable)")
	searchCmd.Flags().String("or", "", "Alternative term, rendered as OR <term>")
	searchCmd.Flags().String("not", "", "Excluded term, rendered as NOT <term>")
	searchCmd.MarkFlagsMutuallyExclusive("or", "not")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, err := searchQueryFromFlags(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	obj, err := s.client.Search(ctx, query)
	if err != nil {
		return err
	}

	return printObject(cmd, obj)
}

// searchQueryFromFlags builds a SearchQuery from the command line
func searchQueryFromFlags(cmd *cobra.Command, args []string) (spotify.SearchQuery, error) {
	searchType, _ := cmd.Flags().GetString("type")
	rawFields, _ := cmd.Flags().GetStringArray("field")

	fields, err := parseFields(rawFields)
	if err != nil {
		return spotify.SearchQuery{}, err
	}

	query := spotify.SearchQuery{
		Text:   strings.Join(args, " "),
		Fields: fields,
		Type:   searchType,
	}

	if or, _ := cmd.Flags().GetString("or"); or != "" {
		query.Operator = "or"
		query.OperatorQuery = or
	}
	if not, _ := cmd.Flags().GetString("not"); not != "" {
		query.Operator = "not"
		query.OperatorQuery = not
	}

	if query.Text == "" && len(query.Fields) == 0 {
		return spotify.SearchQuery{}, fmt.Errorf("a query or at least one --field is required")
	}

	return query, nil
}

// parseFields parses name=value pairs, keeping their order
func parseFields(raw []string) ([]spotify.Field, error) {
	fields := make([]spotify.Field, 0, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("invalid field %q: expected name=value", r)
		}
		fields = append(fields, spotify.Field{Name: name, Value: value})
	}
	return fields, nil
}
