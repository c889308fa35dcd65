// Package githubfs implements the remote file backend on top of a GitHub
// repository's contents API. Each document path maps to a file in the
// repository; the blob SHA doubles as the version token for optimistic
// concurrency.
package githubfs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	"github.com/sony/gobreaker"
)

const defaultBaseURL = "https://api.github.com"

// Client talks to one branch of one repository. All calls go through a
// circuit breaker so a flapping upstream fails fast instead of stalling
// every mutation behind HTTP timeouts.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	baseURL    string
	owner      string
	repo       string
	branch     string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API host (GitHub Enterprise,
// or an httptest server).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// NewClient creates a backend client for owner/repo on the given branch.
func NewClient(owner, repo, branch, token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		owner:      owner,
		repo:       repo,
		branch:     branch,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "github-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return c
}

var _ portsrepo.RemoteBackend = (*Client)(nil)

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type putResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// Get fetches the current blob and its SHA for path.
func (c *Client) Get(ctx context.Context, path string) ([]byte, string, error) {
	endpoint := c.contentsURL(path) + "?ref=" + url.QueryEscape(c.branch)
	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, "", fmt.Errorf("get %s: %w", path, apperrors.ErrNotFound)
	case status != http.StatusOK:
		return nil, "", fmt.Errorf("get %s: status %d: %w", path, status, apperrors.ErrTransient)
	}

	var resp contentsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("get %s: decoding response: %w", path, apperrors.ErrTransient)
	}
	if resp.Encoding != "base64" {
		return nil, "", fmt.Errorf("get %s: unexpected encoding %q: %w", path, resp.Encoding, apperrors.ErrTransient)
	}
	// The API wraps base64 payloads with newlines.
	raw := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, resp.Content)
	content, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("get %s: decoding content: %w", path, apperrors.ErrTransient)
	}
	return content, resp.SHA, nil
}

// Put replaces (or creates, when version is empty) the file at path. The
// backend rejects the write with a conflict when the given SHA no longer
// matches the current blob.
func (c *Client) Put(ctx context.Context, path string, content []byte, message, version string) (string, error) {
	reqBody, err := json.Marshal(putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  c.branch,
		SHA:     version,
	})
	if err != nil {
		return "", fmt.Errorf("put %s: encoding request: %w", path, err)
	}

	status, body, err := c.do(ctx, http.MethodPut, c.contentsURL(path), reqBody)
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		var resp putResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("put %s: decoding response: %w", path, apperrors.ErrTransient)
		}
		return resp.Content.SHA, nil
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		// 409 is the modern sha-mismatch answer; 422 covers creating a file
		// that already exists (a missing-sha version mismatch).
		return "", fmt.Errorf("put %s: %w", path, apperrors.ErrConflict)
	case status == http.StatusNotFound:
		return "", fmt.Errorf("put %s: %w", path, apperrors.ErrNotFound)
	default:
		return "", fmt.Errorf("put %s: status %d: %w", path, status, apperrors.ErrTransient)
	}
}

// do executes one HTTP exchange through the circuit breaker. Only transport
// failures count against the breaker; HTTP statuses (including conflicts)
// are application-level answers and are interpreted by the caller.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (int, []byte, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return exchange{status: resp.StatusCode, body: respBody}, nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %v: %w", method, endpoint, err, apperrors.ErrTransient)
	}
	ex := result.(exchange)
	return ex.status, ex.body, nil
}

type exchange struct {
	status int
	body   []byte
}

func (c *Client) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, path)
}
