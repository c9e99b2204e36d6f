package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ResourceRequest describes a single catalog lookup or a batch lookup.
//
// ID is used by GetResource, IDs by GetResources.
type ResourceRequest struct {
	Type      string     // Required: resource type, e.g. "albums" or "audio-features"
	ID        string     // Identifier for single lookups
	IDs       []string   // Identifiers for batch lookups, joined in order
	Extension string     // Optional: trailing path segment, e.g. "tracks"
	Version   string     // Optional: API version (defaults to DefaultVersion)
	Query     url.Values // Optional: extra query parameters
}

func (r ResourceRequest) version() string {
	if r.Version == "" {
		return DefaultVersion
	}
	return r.Version
}

// resourceURL builds {base}/{version}/{type}/{id}[/{extension}][?query].
func (c *Client) resourceURL(r ResourceRequest) string {
	u := c.baseURL + "/" + r.version() + "/" + r.Type + "/" + url.PathEscape(r.ID)
	if r.Extension != "" {
		u += "/" + r.Extension
	}
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// resourcesURL builds {base}/{version}/{type}?ids={id,id,...}.
//
// Each id is escaped on its own so the separating commas stay literal.
func (c *Client) resourcesURL(r ResourceRequest) string {
	escaped := make([]string, len(r.IDs))
	for i, id := range r.IDs {
		escaped[i] = url.QueryEscape(id)
	}

	u := c.baseURL + "/" + r.version() + "/" + r.Type + "?ids=" + strings.Join(escaped, ",")
	if len(r.Query) > 0 {
		u += "&" + r.Query.Encode()
	}
	return u
}

// GetResource fetches a single catalog resource.
//
// A non-2xx response is not an error: it yields an empty Object, the same
// as a lookup that found nothing.
func (c *Client) GetResource(ctx context.Context, r ResourceRequest) (Object, error) {
	if r.Type == "" {
		return nil, &InvalidArgumentError{Argument: "resource type"}
	}
	if r.ID == "" {
		return nil, &InvalidArgumentError{Argument: "id"}
	}

	return c.get(ctx, c.resourceURL(r))
}

// GetResources fetches several catalog resources of one type in a single
// batch request.
//
// A non-2xx response yields an empty Object.
func (c *Client) GetResources(ctx context.Context, r ResourceRequest) (Object, error) {
	if r.Type == "" {
		return nil, &InvalidArgumentError{Argument: "resource type"}
	}
	if len(r.IDs) == 0 {
		return nil, &InvalidArgumentError{Argument: "ids"}
	}

	return c.get(ctx, c.resourcesURL(r))
}

// get issues an authenticated GET and decodes the JSON body.
//
// It handles:
// - Attaching the bearer header (refreshing the token when needed)
// - Swallowing non-2xx statuses into an empty Object
// - Context cancellation
func (c *Client) get(ctx context.Context, endpoint string) (Object, error) {
	header, err := c.auth.ResourceHeader(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", header)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "spoticat/1.0")

	c.logDebugf("spotify: GET %s", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify: http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("spotify: failed to read response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		c.logDebugf("spotify: GET %s returned %d, treating as empty", endpoint, resp.StatusCode)
		return Object{}, nil
	}

	obj := Object{}
	if len(body) == 0 {
		return obj, nil
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("spotify: failed to parse response: %w", err)
	}

	return obj, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
