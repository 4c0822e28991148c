package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

const DefaultBaseUrl = "http://serpapi.com"

const (
	searchEndpoint   = "/search"
	htmlEndpoint     = "/html"
	locationEndpoint = "/locations.json"
	accountEndpoint  = "/account"

	archivePrefix = "/searches/"
	archiveSuffix = ".json"
)

// Client sends requests to serpapi.com. The defaults given to NewClient (typically api_key
// and engine) are merged into every request, per-call parameters take precedence over them.
// A Client is never modified after construction and is safe for concurrent use.
type Client struct {
	defaults  Params
	baseUrl   string
	transport Transport
	logger    *slog.Logger
}

type Option func(*Client)

func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithBaseURL replaces the serpapi.com host, used to point the client at a test server.
func WithBaseURL(baseUrl string) Option {
	return func(c *Client) {
		c.baseUrl = strings.TrimSuffix(baseUrl, "/")
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(defaults Params, opts ...Option) *Client {
	client := &Client{
		defaults: defaults.Clone(),
		baseUrl:  DefaultBaseUrl,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.transport == nil {
		client.transport = NewRestyTransport()
	}

	return client
}

func (c *Client) Defaults() Params {
	return c.defaults.Clone()
}

// Get sends a GET to the endpoint and returns the body as text. The status code is not
// inspected, error payloads from serpapi are returned like any other body.
func (c *Client) Get(ctx context.Context, endpoint string, parameter Params) (string, error) {
	query := url.Values{}
	for key, value := range Merge(c.defaults, parameter) {
		query.Set(key, value)
	}

	res, err := c.transport.Get(ctx, c.baseUrl+endpoint, query)
	if err != nil {
		c.logger.Error("serpapi request failed", "endpoint", endpoint, "error", err)
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	c.logger.Debug("serpapi response received", "endpoint", endpoint, "status_code", res.StatusCode, "size", len(res.Body))

	return res.Body, nil
}

func (c *Client) JSON(ctx context.Context, endpoint string, parameter Params) (Value, error) {
	body, err := c.Get(ctx, endpoint, parameter)
	if err != nil {
		return Value{}, err
	}

	value, err := ParseValue(body)
	if err != nil {
		c.logger.Error("serpapi response is not valid json", "endpoint", endpoint, "size", len(body))
		return Value{}, newMalformedResponseError(endpoint, body, errInvalidJson)
	}

	return value, nil
}

func (c *Client) Search(ctx context.Context, parameter Params) (Value, error) {
	return c.JSON(ctx, searchEndpoint, parameter)
}

func (c *Client) HTML(ctx context.Context, parameter Params) (string, error) {
	return c.Get(ctx, htmlEndpoint, parameter)
}

func (c *Client) Location(ctx context.Context, parameter Params) (Value, error) {
	return c.JSON(ctx, locationEndpoint, parameter)
}

func (c *Client) Account(ctx context.Context, parameter Params) (Value, error) {
	return c.JSON(ctx, accountEndpoint, parameter)
}

// SearchArchive retrieves a previous search by its search_metadata.id. No per-call
// parameters are sent, the client defaults still apply.
func (c *Client) SearchArchive(ctx context.Context, searchId string) (Value, error) {
	return c.JSON(ctx, archivePrefix+url.PathEscape(searchId)+archiveSuffix, Params{})
}
