// Package grist provides a thin client for the Grist REST API: workspace and
// document discovery, table reconciliation and record upload.
package grist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultOrg is the organization used when none is configured.
const DefaultOrg = "brightstar"

// Client talks to a single Grist server on behalf of one organization.
type Client struct {
	server     string
	org        string
	workspace  string
	timeout    time.Duration
	timeoutSet bool
	hc         *http.Client
	logger     *zap.Logger
	http       *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithOrg sets the organization (default "brightstar").
func WithOrg(org string) Option {
	return func(c *Client) {
		if org != "" {
			c.org = org
		}
	}
}

// WithWorkspace sets the default workspace id or name.
// When unset the org name is used as the workspace name.
func WithWorkspace(ref string) Option {
	return func(c *Client) { c.workspace = ref }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.timeoutSet = true
	}
}

// WithHTTPClient sets the underlying HTTP client. Its own Timeout is kept
// unless WithTimeout is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// NewClient creates a client for server (e.g. https://grist.example.com).
func NewClient(apiKey, server string, opts ...Option) *Client {
	c := &Client{
		server:  strings.TrimRight(server, "/"),
		org:     DefaultOrg,
		timeout: 30 * time.Second,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.hc != nil {
		c.http = resty.NewWithClient(c.hc)
	} else {
		c.http = resty.New()
	}
	c.http.
		SetBaseURL(c.BaseURL()).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if c.hc == nil || c.timeoutSet {
		c.http.SetTimeout(c.timeout)
	}

	return c
}

// Server returns the server URL without a trailing slash.
func (c *Client) Server() string {
	return c.server
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.server + "/api"
}

// Org returns the configured organization.
func (c *Client) Org() string {
	return c.org
}

type pathParams map[string]string

// request performs one API call. body is sent as JSON when non-nil and the
// response is decoded into out when out is non-nil.
func (c *Client) request(ctx context.Context, method, path string, params pathParams, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetPathParams(params)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("grist api %s %s: %w", method, path, err)
	}

	c.logger.Debug("grist request",
		zap.String("method", method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("took", resp.Time()))

	if resp.IsError() {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("grist api %s %s: decode response: %w", method, path, err)
		}
	}

	return nil
}
