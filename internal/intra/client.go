package intra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client errors
var (
	// ErrNoAccessToken is returned when the token exchange succeeds but the
	// response carries no access_token.
	ErrNoAccessToken = errors.New("token response contains no access token")
)

// StatusError carries status and body for non-2xx upstream responses.
// The pipeline does not retry; the error aborts the run.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Error implements the error interface
func (e *StatusError) Error() string {
	body := string(e.Body)
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("intra: %s %s failed: status=%d body=%s", e.Method, e.URL, e.StatusCode, body)
}

// Client is an authenticated intra API client. It holds a single bearer
// token for its lifetime; the token is assumed valid for the duration of
// one ingestion run, there is no refresh-on-expiry.
type Client struct {
	BaseURL string
	UID     string
	Secret  string
	HTTP    *http.Client

	token string
}

// NewClient creates an intra API client with the given client credentials
func NewClient(baseURL, uid, secret string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		UID:     uid,
		Secret:  secret,
		HTTP: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Authenticate exchanges the client credentials for a bearer token using
// the client-credentials grant and caches it on the client.
func (c *Client) Authenticate(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.UID)
	form.Set("client_secret", c.Secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("intra: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("intra: token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("intra: read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPost, URL: c.BaseURL + "/oauth/token", StatusCode: resp.StatusCode, Body: body}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return fmt.Errorf("intra: parse token response: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("intra: %w", ErrNoAccessToken)
	}

	c.token = tok.AccessToken
	return nil
}

// FetchProjects performs an authenticated GET of one page of cursus
// projects. It lazily authenticates exactly once when no token is cached.
func (c *Client) FetchProjects(ctx context.Context, cursusID int, page, perPage int) ([]Project, error) {
	if c.token == "" {
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	u, err := url.Parse(fmt.Sprintf("%s/v2/cursus/%d/projects", c.BaseURL, cursusID))
	if err != nil {
		return nil, fmt.Errorf("intra: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("intra: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("intra: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("intra: read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: http.MethodGet, URL: u.String(), StatusCode: resp.StatusCode, Body: body}
	}

	var projects []Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("intra: parse projects page: %w", err)
	}

	return projects, nil
}
