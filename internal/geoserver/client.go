package geoserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geoservercloud/geoserver-mcp/internal/cache"
	"github.com/geoservercloud/geoserver-mcp/internal/config"
)

const defaultTimeout = 30 * time.Second

// Client performs administrative and OGC calls against one GeoServer
// instance. A Client is cheap to construct and holds no connection
// state; build a fresh one per invocation.
type Client struct {
	baseURL  string
	user     string
	password string
	http     *http.Client
	caps     *cache.Cache[string, string]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCapabilitiesCache shares a capabilities-document cache across
// client instances. Without it each client gets its own (per-invocation
// clients then effectively never hit it).
func WithCapabilitiesCache(caps *cache.Cache[string, string]) Option {
	return func(c *Client) { c.caps = caps }
}

// NewClient creates a client from resolved connection parameters. No
// connection is established at construction time.
func NewClient(conn config.Connection, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(conn.URL, "/"),
		user:     conn.User,
		password: conn.Password,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	if c.caps == nil {
		c.caps = cache.New[string, string](5 * time.Minute)
	}
	return c
}

// BaseURL returns the configured GeoServer base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// User returns the configured principal.
func (c *Client) User() string { return c.user }

// restJSON performs an administrative REST call with an optional JSON
// payload and returns the decoded response content and HTTP status.
// An error is returned only for transport-level failures; non-success
// statuses are the caller's to interpret.
func (c *Client) restJSON(
	ctx context.Context, method, path string, query url.Values, payload any,
) (any, int, error) {
	var body []byte
	contentType := ""
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal payload: %w", err)
		}
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, contentType, body)
}

// restRaw performs an administrative REST call with a raw body (SLD
// documents, plain-text paths for mosaic operations).
func (c *Client) restRaw(
	ctx context.Context, method, path string, query url.Values, contentType string, body []byte,
) (any, int, error) {
	return c.do(ctx, method, path, query, contentType, body)
}

func (c *Client) do(
	ctx context.Context, method, path string, query url.Values, contentType string, body []byte,
) (any, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return decodeContent(resp.Header.Get("Content-Type"), data), resp.StatusCode, nil
}

// decodeContent parses a JSON response body; anything else passes
// through as a string.
func decodeContent(contentType string, data []byte) any {
	text := strings.TrimSpace(string(data))
	if strings.Contains(contentType, "json") && len(text) > 0 {
		var v any
		if err := json.Unmarshal(data, &v); err == nil {
			return v
		}
	}
	return text
}

// ows performs an OGC service request against a workspace's virtual
// service endpoint and returns the raw response body.
func (c *Client) ows(
	ctx context.Context, workspace string, query url.Values, headers map[string]string,
) (string, int, error) {
	path := "/ows"
	if workspace != "" {
		path = "/" + url.PathEscape(workspace) + "/ows"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.user, c.password)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return string(data), resp.StatusCode, nil
}

// StatusError reports an OGC request that failed at the HTTP level.
// Administrative REST calls return their status alongside the content
// instead; OGC helpers have no status channel, so they wrap it here.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geoserver returned %d: %s", e.Status, e.Message)
}

func trimForError(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 200 {
		return body[:200]
	}
	return body
}
