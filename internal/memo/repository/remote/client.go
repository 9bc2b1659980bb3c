package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"memo-manager/internal/memo/repository"
	"memo-manager/internal/model"
)

const (
	collectionPath = "/api/memos"
	maxErrorBody   = 512
)

// Client is the HTTP wrapper for the remote memo REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outgoing calls at rps per second. rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a client for the API at baseURL. A non-empty accessToken
// is sent as a bearer token on every request.
func NewClient(baseURL, accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if accessToken != "" {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
		c.httpClient = &http.Client{
			Transport: &oauth2.Transport{Source: ts, Base: base},
			Timeout:   c.httpClient.Timeout,
		}
	}
	return c
}

// ListMemos fetches the whole collection via GET /api/memos.
func (c *Client) ListMemos(ctx context.Context) ([]model.Memo, error) {
	resp, err := c.do(ctx, repository.OpList, http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var memos []model.Memo
	if err := json.NewDecoder(resp.Body).Decode(&memos); err != nil {
		return nil, &repository.RemoteError{
			Op:         repository.OpList,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode memos list response: %w", err),
		}
	}
	if memos == nil {
		memos = []model.Memo{}
	}
	return memos, nil
}

// CreateMemo posts a new memo via POST /api/memos.
func (c *Client) CreateMemo(ctx context.Context, memo model.Memo) error {
	return c.send(ctx, repository.OpCreate, http.MethodPost, c.collectionURL(), memo)
}

// UpdateMemo replaces a memo via PUT /api/memos/{id}.
func (c *Client) UpdateMemo(ctx context.Context, id string, memo model.Memo) error {
	return c.send(ctx, repository.OpUpdate, http.MethodPut, c.memoURL(id), memo)
}

// DeleteMemo removes a memo via DELETE /api/memos/{id}.
func (c *Client) DeleteMemo(ctx context.Context, id string) error {
	resp, err := c.do(ctx, repository.OpRemove, http.MethodDelete, c.memoURL(id), nil)
	if err != nil {
		return err
	}
	drain(resp.Body)
	return nil
}

func (c *Client) send(ctx context.Context, op, method, url string, memo model.Memo) error {
	body, err := json.Marshal(memo)
	if err != nil {
		return &repository.RemoteError{Op: op, Err: fmt.Errorf("failed to marshal %s memo request: %w", op, err)}
	}
	resp, err := c.do(ctx, op, method, url, body)
	if err != nil {
		return err
	}
	drain(resp.Body)
	return nil
}

// do performs the request and hands back the response only on a 2xx status.
// The caller owns the body.
func (c *Client) do(ctx context.Context, op, method, url string, body []byte) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &repository.RemoteError{Op: op, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &repository.RemoteError{Op: op, Err: fmt.Errorf("failed to build %s memo request: %w", op, err)}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &repository.RemoteError{Op: op, Err: fmt.Errorf("failed to call memos %s API: %w", op, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &repository.RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return resp, nil
}

func (c *Client) collectionURL() string {
	return c.baseURL + collectionPath
}

func (c *Client) memoURL(id string) string {
	return c.baseURL + collectionPath + "/" + url.PathEscape(id)
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	body.Close()
}
