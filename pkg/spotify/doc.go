// Package spotify provides a client library for the Spotify Web API catalog.
//
// # Overview
//
// This package implements a small Go client for the Spotify Web API,
// focusing on application (client-credentials) authentication, search and
// catalog lookups. It has context support, structured errors, and caches a
// single bearer token per client.
//
// # Installation
//
//	go get github.com/jfmyers9/spoticat/pkg/spotify
//
// # Quick Start
//
// Create a client with your application credentials:
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Authentication
//
// Tokens are obtained lazily. The first request exchanges the credentials
// for a bearer token, which is reused until it expires and then refreshed
// once before the next request:
//
//	token, err := client.Auth().AccessToken(ctx)
//
// Errors from the token endpoint are reported as *AuthenticationError:
//
//	var authErr *spotify.AuthenticationError
//	if errors.As(err, &authErr) {
//	    log.Printf("status %d", authErr.StatusCode)
//	}
//
// # Catalog Lookups
//
//	album, err := client.Albums().Get(ctx, albumID)
//	ids, err := client.Albums().TrackIDs(ctx, albumID)
//	top, err := client.Artists().TopTracks(ctx, artistID)
//	features, err := client.Tracks().AudioFeaturesSeveral(ctx, []string{a, b})
//
// Lookups that the API answers with a non-2xx status return an empty
// Object and a nil error. Only transport, decoding and authentication
// failures are returned as errors.
//
// # Search
//
//	results, err := client.Search(ctx, spotify.SearchQuery{
//	    Fields:        []spotify.Field{{Name: "artist", Value: "Miles Davis"}},
//	    Operator:      "not",
//	    OperatorQuery: "live",
//	    Type:          "album",
//	})
//
// # Concurrency
//
// A Client may be shared between goroutines. Token refreshes are serialized
// so that concurrent callers never observe a token without its expiry.
//
// # Spotify Web API Documentation
//
// For more information about the Web API:
// https://developer.spotify.com/documentation/web-api
package spotify
