package api

import (
	"context"
	"encoding/json"
	"fmt"
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/constants"
	"fortnite-stats/internal/domain"
	"fortnite-stats/internal/stats"
	"fortnite-stats/internal/tracing"
	"net/http"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

type Client struct {
	apiKey   string
	statsURL string
	client   *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		statsURL: cfg.StatsURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     4,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
			// account IDs are escaped by us and must reach the upstream as-is
			DisablePathNormalizing: true,
		},
	}
}

// HTTPError is a non-2xx upstream answer.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Message)
}

// TransportError is a failure before a usable response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GetSummaryStats queries the v2 battle royale endpoint. Account IDs go in
// the path; display names go in the query along with the account type.
func (c *Client) GetSummaryStats(ctx context.Context, q domain.StatsQuery) (stats.Payload, error) {
	endpoint := c.statsURL
	params := [][2]string{}
	if q.IsAccountID {
		endpoint = fmt.Sprintf("%s/%s", c.statsURL, url.PathEscape(q.Identifier))
	} else {
		params = append(params,
			[2]string{"name", q.Identifier},
			[2]string{"accountType", string(q.AccountType)},
		)
	}
	params = append(params,
		[2]string{"timeWindow", string(q.TimeWindow)},
		[2]string{"image", constants.ImageAll},
	)
	return doRequest[stats.Payload](ctx, c, endpoint, params)
}

func (c *Client) GetCounterStats(ctx context.Context, username string) (stats.Payload, error) {
	return doRequest[stats.Payload](ctx, c, c.statsURL, [][2]string{{"account", username}})
}

// Probe returns the raw status and body without judging either.
func (c *Client) Probe(ctx context.Context, endpoint string, params [][2]string) (int, []byte, error) {
	req, resp := c.prepare(ctx, endpoint, params)
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	if err := c.do(ctx, req, resp); err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	return resp.StatusCode(), append([]byte(nil), resp.Body()...), nil
}

func (c *Client) prepare(ctx context.Context, endpoint string, params [][2]string) (*fasthttp.Request, *fasthttp.Response) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	req.SetRequestURI(endpoint)
	args := req.URI().QueryArgs()
	for _, p := range params {
		args.Add(p[0], p[1])
	}
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", c.apiKey)
	if id := tracing.LookupID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	return req, resp
}

// do follows up to constants.MaxRedirects redirects; each hop is bounded by
// the time left on ctx.
func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return fasthttp.ErrTimeout
		}
		req.SetTimeout(remaining)
	}
	return c.client.DoRedirects(req, resp, constants.MaxRedirects)
}

func doRequest[T any](ctx context.Context, client *Client, endpoint string, params [][2]string) (T, error) {
	var result T

	req, resp := client.prepare(ctx, endpoint, params)
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	if err := client.do(ctx, req, resp); err != nil {
		return result, &TransportError{Err: err}
	}

	if status := resp.StatusCode(); status < 200 || status > 299 {
		body := append([]byte(nil), resp.Body()...)
		return result, &HTTPError{
			StatusCode: status,
			Message:    errorMessage(status, body),
			Body:       body,
		}
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return result, nil
}

// errorMessage prefers the upstream's own error field over the status text.
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Could not fetch stats"
}
