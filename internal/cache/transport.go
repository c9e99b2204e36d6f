package cache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Transport is an http.RoundTripper that serves GET requests from a Store
// when a fresh entry exists and records successful GET responses.
//
// Only the URL keys an entry. Request headers, including Authorization,
// are neither part of the key nor stored. Non-GET requests such as the
// token exchange always go to Base.
type Transport struct {
	Store  *Store
	TTL    time.Duration
	Base   http.RoundTripper // defaults to http.DefaultTransport
	Logger zerolog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base().RoundTrip(req)
	}

	ctx := req.Context()
	key := req.URL.String()

	entry, err := t.Store.Get(ctx, key)
	if err != nil {
		t.Logger.Warn().Err(err).Str("url", key).Msg("Cache lookup failed")
	} else if entry != nil {
		t.Logger.Debug().Str("url", key).Time("expires_at", entry.ExpiresAt).Msg("Cache hit")
		return entry.response(req), nil
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if err := t.Store.Put(ctx, key, resp.StatusCode, resp.Header.Get("Content-Type"), body, t.TTL); err != nil {
		t.Logger.Warn().Err(err).Str("url", key).Msg("Failed to cache response")
	} else {
		t.Logger.Debug().Str("url", key).Dur("ttl", t.TTL).Msg("Cached response")
	}

	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// response rebuilds an *http.Response from a cached entry.
func (e *Entry) response(req *http.Request) *http.Response {
	header := make(http.Header)
	if e.ContentType != "" {
		header.Set("Content-Type", e.ContentType)
	}
	header.Set("X-Cache", "HIT")

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status)),
		StatusCode:    e.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}
