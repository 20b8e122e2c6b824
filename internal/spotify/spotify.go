// Package spotify implements the PKCE token calls against the Spotify
// accounts service. No client secret is involved.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTokenURL = "https://accounts.spotify.com/api/token"

// Token is the accounts service response for both exchange and
// refresh calls.
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Client talks to the Spotify accounts service.
type Client struct {
	httpClient *http.Client
	tokenURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithTokenURL overrides the accounts endpoint, for tests.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient returns a Client with a fixed 15 second timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokenURL:   defaultTokenURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExchangeCode trades an authorization code plus PKCE verifier for a
// token pair.
func (c *Client) ExchangeCode(ctx context.Context, clientID, code, codeVerifier, redirectURI string) (*Token, error) {
	form := url.Values{
		"client_id":     {clientID},
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {redirectURI},
		"code_verifier": {codeVerifier},
	}
	return c.postForm(ctx, form)
}

// Refresh obtains a fresh access token from a refresh token.
func (c *Client) Refresh(ctx context.Context, clientID, refreshToken string) (*Token, error) {
	form := url.Values{
		"client_id":     {clientID},
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	return c.postForm(ctx, form)
}

func (c *Client) postForm(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify connection failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromBody(resp.StatusCode, body)
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	return &token, nil
}

// errorFromBody prefers the error_description field of the accounts
// service error shape.
func errorFromBody(status int, body []byte) error {
	var payload struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.ErrorDescription != "" {
			return fmt.Errorf("spotify: %s", payload.ErrorDescription)
		}
		if payload.Error != "" {
			return fmt.Errorf("spotify: %s", payload.Error)
		}
	}
	return fmt.Errorf("spotify token request failed with status %d", status)
}
