package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AuthService manages the client-credentials token for a Client.
type AuthService struct {
	client *Client
}

// tokenResponse is the body returned by the accounts token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AuthorizationHeader returns the Basic authorization header value used for
// the token exchange.
//
// The value is "Basic " followed by base64("client_id:client_secret").
func (a *AuthService) AuthorizationHeader() (string, error) {
	c := a.client
	if c.clientID == "" {
		return "", &ConfigurationError{Field: "ClientID"}
	}
	if c.clientSecret == "" {
		return "", &ConfigurationError{Field: "ClientSecret"}
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	return "Basic " + credentials, nil
}

// Authorize exchanges the client credentials for a new access token.
//
// On success the token and its expiry replace the cached ones. On failure
// the cached state is left untouched and an *AuthenticationError carrying
// the response status is returned.
//
// Example:
//
//	if err := client.Auth().Authorize(ctx); err != nil {
//	    var authErr *spotify.AuthenticationError
//	    if errors.As(err, &authErr) {
//	        log.Printf("token endpoint returned %d", authErr.StatusCode)
//	    }
//	}
func (a *AuthService) Authorize(ctx context.Context) error {
	c := a.client

	c.mu.Lock()
	defer c.mu.Unlock()

	return a.authorizeLocked(ctx)
}

// authorizeLocked performs the token exchange. c.mu must be held.
func (a *AuthService) authorizeLocked(ctx context.Context) error {
	c := a.client

	header, err := a.AuthorizationHeader()
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	endpoint := c.accountsURL + "/api/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("spotify: failed to create token request: %w", err)
	}
	req.Header.Set("Authorization", header)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logDebugf("spotify: requesting access token from %s", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("spotify: failed to read token response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		c.logDebugf("spotify: token request returned %d", resp.StatusCode)
		return &AuthenticationError{StatusCode: resp.StatusCode}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("spotify: failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return &AuthenticationError{StatusCode: resp.StatusCode, Message: "response did not include an access token"}
	}

	c.accessToken = token.AccessToken
	c.expiresAt = c.now().Add(time.Duration(token.ExpiresIn) * time.Second)

	c.logDebugf("spotify: access token valid until %s", c.expiresAt.Format(time.RFC3339))
	return nil
}

// AccessToken returns a valid access token, authorizing first when no token
// is cached or the cached one has expired.
//
// A refresh happens at most once per call. If the provider hands out a token
// that is already expired it is returned as is; the next call refreshes again.
func (a *AuthService) AccessToken(ctx context.Context) (string, error) {
	c := a.client

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tokenValidLocked() {
		return c.accessToken, nil
	}

	if err := a.authorizeLocked(ctx); err != nil {
		return "", err
	}

	return c.accessToken, nil
}

// Expiry returns the expiry of the cached token, or the zero time when no
// token has been obtained yet.
func (a *AuthService) Expiry() time.Time {
	c := a.client

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken == "" {
		return time.Time{}
	}
	return c.expiresAt
}

// ResourceHeader returns the Bearer authorization header value for resource
// and search requests.
func (a *AuthService) ResourceHeader(ctx context.Context) (string, error) {
	token, err := a.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	return "Bearer " + token, nil
}

// tokenValidLocked reports whether the cached token can be used. c.mu must be held.
func (c *Client) tokenValidLocked() bool {
	return c.accessToken != "" && c.now().Before(c.expiresAt)
}
