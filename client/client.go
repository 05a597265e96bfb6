// Package client is the typed API gateway for the LifeForge Connect
// backend. Each domain area (auth, blood, thal, platelet, marrow, organ,
// milk, dashboard, notifications) exposes narrow methods that map 1:1 to
// one HTTP endpoint; all of them go through the single do helper below.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lifeforge-dev/lifeforge/session"
	internal_errors "github.com/lifeforge-dev/lifeforge/shared/errors"
)

// Client handles all communication with the backend API. BaseURL may be
// empty, in which case requests use server-relative paths (same-origin
// proxying during local dev); both modes produce identical query strings.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	session     session.Store
	chatTimeout time.Duration
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport (e.g. to add metrics or
// for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithChatTimeout overrides the streaming chat first-response timeout.
func WithChatTimeout(d time.Duration) Option {
	return func(c *Client) { c.chatTimeout = d }
}

// New creates a client for the backend at baseURL, using store for the
// authentication state read on every request.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		session:     store,
		chatTimeout: defaultChatTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params is an optional query parameter set. Nil values are omitted from
// the URL entirely; empty strings are kept, so "filter by empty string"
// stays distinguishable from "no filter".
type Params map[string]any

// Session state pass-throughs for UI gating.

func (c *Client) IsLoggedIn() bool      { return c.session.IsLoggedIn() }
func (c *Client) CurrentUserID() string { return c.session.UserID() }
func (c *Client) CurrentRole() string   { return string(c.session.Role()) }

// buildURL composes the request target from the base address, path and
// params. With an empty base address the same query string is appended to
// the relative path byte-for-byte.
func (c *Client) buildURL(path string, params Params) string {
	q := encodeParams(params)
	target := c.baseURL + path
	if q == "" {
		return target
	}
	return target + "?" + q
}

func encodeParams(params Params) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, raw := range params {
		s, ok := paramString(raw)
		if !ok {
			continue
		}
		values.Set(key, s)
	}
	return values.Encode()
}

// paramString formats one query value; the second return is false for nil
// values and nil pointers, which must not appear in the URL at all.
func paramString(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case int:
		return strconv.Itoa(v), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case *float64:
		if v == nil {
			return "", false
		}
		return strconv.FormatFloat(*v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case *bool:
		if v == nil {
			return "", false
		}
		return strconv.FormatBool(*v), true
	default:
		return fmt.Sprint(v), true
	}
}

// do builds and issues one request: JSON body for non-GET calls, bearer
// header when a session token exists, transport failures normalized.
func (c *Client) do(ctx context.Context, method, path string, body any, params Params) (*http.Response, error) {
	var reader io.Reader
	if body != nil && method != http.MethodGet {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &internal_errors.Error{
			Kind:    internal_errors.Transport,
			Message: "backend unavailable: " + err.Error(),
			Err:     err,
		}
	}
	return resp, nil
}

// doJSON runs do and decodes a JSON response into out (which may be nil
// when the caller discards the body). Non-success statuses become the
// single normalized error; no retries happen at this layer.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, params Params, out any) error {
	resp, err := c.do(ctx, method, path, body, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}
	return nil
}

// decodeError normalizes a failure response to one displayable message,
// preferring the backend's detail field and tolerating non-JSON bodies.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	message := http.StatusText(resp.StatusCode)
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		message = body.Detail
	}

	return &internal_errors.Error{
		Kind:       internal_errors.HTTPStatus,
		Message:    message,
		StatusCode: resp.StatusCode,
	}
}
