package search

import (
	"context"
	"net/url"
	"serpapi/serpapi/monitoring"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

type Response struct {
	StatusCode int
	Body       string
}

// Transport performs the GET request for the client. Any status code is a valid response,
// an error is only returned when no response was received.
type Transport interface {
	Get(ctx context.Context, url string, query url.Values) (*Response, error)
}

type TransportFunc func(ctx context.Context, url string, query url.Values) (*Response, error)

func (f TransportFunc) Get(ctx context.Context, url string, query url.Values) (*Response, error) {
	return f(ctx, url, query)
}

// Archived searches are folded into a single label so the metric doesn't grow per id.
func endpointLabel(path string) string {
	if strings.HasPrefix(path, archivePrefix) {
		return archivePrefix + "{search_id}" + archiveSuffix
	}
	return path
}

type RestyTransport struct {
	client *resty.Client
}

func NewRestyTransport() *RestyTransport {
	client := resty.New().
		SetRetryCount(0).
		OnAfterResponse(func(client *resty.Client, response *resty.Response) error {
			endpoint := endpointLabel(response.Request.RawRequest.URL.Path)
			monitoring.SerpapiCalls.WithLabelValues(endpoint, strconv.Itoa(response.StatusCode())).Inc()
			monitoring.SerpapiLatency.WithLabelValues(endpoint).Observe(float64(response.Time().Milliseconds()))
			return nil
		}).
		OnError(func(request *resty.Request, err error) {
			if u, perr := url.Parse(request.URL); perr == nil {
				monitoring.SerpapiCalls.WithLabelValues(endpointLabel(u.Path), "error").Inc()
			}
		})

	return &RestyTransport{client: client}
}

func (t *RestyTransport) Get(ctx context.Context, rawUrl string, query url.Values) (*Response, error) {
	res, err := t.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(rawUrl)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: res.StatusCode(), Body: string(res.Body())}, nil
}
