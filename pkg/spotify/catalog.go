package spotify

import (
	"context"
	"net/url"
)

// Resource types understood by the catalog endpoints.
const (
	TypeAlbums        = "albums"
	TypeArtists       = "artists"
	TypeTracks        = "tracks"
	TypeAudioAnalysis = "audio-analysis"
	TypeAudioFeatures = "audio-features"
)

// AlbumService provides album lookups.
type AlbumService struct {
	client *Client
}

// Get fetches a single album.
func (s *AlbumService) Get(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeAlbums, ID: id})
}

// Tracks fetches the track listing of an album.
func (s *AlbumService) Tracks(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeAlbums, ID: id, Extension: "tracks"})
}

// GetSeveral fetches several albums in one request.
func (s *AlbumService) GetSeveral(ctx context.Context, ids []string) (Object, error) {
	return s.client.GetResources(ctx, ResourceRequest{Type: TypeAlbums, IDs: ids})
}

// TrackIDs returns the identifiers of an album's tracks in listing order.
//
// An album whose listing could not be fetched yields an empty slice.
func (s *AlbumService) TrackIDs(ctx context.Context, id string) ([]string, error) {
	listing, err := s.Tracks(ctx, id)
	if err != nil {
		return nil, err
	}

	items := listing.Items()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if trackID := item.GetString("id"); trackID != "" {
			ids = append(ids, trackID)
		}
	}
	return ids, nil
}

// ArtistService provides artist lookups.
type ArtistService struct {
	client *Client
}

// Get fetches a single artist.
func (s *ArtistService) Get(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeArtists, ID: id})
}

// Albums fetches an artist's albums.
func (s *ArtistService) Albums(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeArtists, ID: id, Extension: "albums"})
}

// TopTracks fetches an artist's top tracks for the client's country.
func (s *ArtistService) TopTracks(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{
		Type:      TypeArtists,
		ID:        id,
		Extension: "top-tracks",
		Query:     url.Values{"country": []string{s.client.country}},
	})
}

// RelatedArtists fetches artists similar to the given one.
func (s *ArtistService) RelatedArtists(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeArtists, ID: id, Extension: "related-artists"})
}

// GetSeveral fetches several artists in one request.
func (s *ArtistService) GetSeveral(ctx context.Context, ids []string) (Object, error) {
	return s.client.GetResources(ctx, ResourceRequest{Type: TypeArtists, IDs: ids})
}

// TrackService provides track, audio analysis and audio features lookups.
type TrackService struct {
	client *Client
}

// Get fetches a single track.
func (s *TrackService) Get(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeTracks, ID: id})
}

// GetSeveral fetches several tracks in one request.
func (s *TrackService) GetSeveral(ctx context.Context, ids []string) (Object, error) {
	return s.client.GetResources(ctx, ResourceRequest{Type: TypeTracks, IDs: ids})
}

// AudioAnalysis fetches the audio analysis of a track.
func (s *TrackService) AudioAnalysis(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeAudioAnalysis, ID: id})
}

// AudioFeatures fetches the audio features of a track.
func (s *TrackService) AudioFeatures(ctx context.Context, id string) (Object, error) {
	return s.client.GetResource(ctx, ResourceRequest{Type: TypeAudioFeatures, ID: id})
}

// AudioFeaturesSeveral fetches audio features for several tracks in one request.
func (s *TrackService) AudioFeaturesSeveral(ctx context.Context, ids []string) (Object, error) {
	return s.client.GetResources(ctx, ResourceRequest{Type: TypeAudioFeatures, IDs: ids})
}
