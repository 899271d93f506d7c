// Package intra is the single chokepoint for all calls to the intranet
// portal. It builds authenticated paths, applies the client-wide timeout and
// classifies failures so callers can tell transport errors, portal refusals
// and shape drift apart.
package intra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/epiday/epiday/internal/model"
)

// userAgent identifies the gateway on every portal call.
const userAgent = "epiday/1.0"

// Client wraps a resty client pointed at the portal origin.
type Client struct {
	http *resty.Client
}

// NewClient creates a portal client. All calls share the one fixed timeout;
// a call that exceeds it surfaces as model.ErrUpstreamUnavailable and is
// never retried here.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	return &Client{http: c}
}

// AuthPath embeds the credential as a path segment, which is the portal's
// authentication mechanism (not a header or cookie).
func AuthPath(cred, path string) string {
	return fmt.Sprintf("/auth-%s%s", cred, path)
}

// Get performs an unauthenticated GET and returns the raw 2xx body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	return classify(resp, err)
}

// GetAuth performs a GET as the credential's user.
func (c *Client) GetAuth(ctx context.Context, cred, path string) ([]byte, error) {
	return c.Get(ctx, AuthPath(cred, path))
}

// PostAuth performs a bodyless POST as the credential's user.
func (c *Client) PostAuth(ctx context.Context, cred, path string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Post(AuthPath(cred, path))
	return classify(resp, err)
}

// PostJSONAuth performs a POST with a JSON body as the credential's user.
func (c *Client) PostJSONAuth(ctx context.Context, cred, path string, body interface{}) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(AuthPath(cred, path))
	return classify(resp, err)
}

// GetAuthRaw performs an authenticated GET and returns status and body
// without classifying non-2xx statuses. Some portal endpoints put the real
// error in the body of a failed response.
func (c *Client) GetAuthRaw(ctx context.Context, cred, path string) (int, []byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(AuthPath(cred, path))
	if err != nil {
		return 0, nil, errors.Wrap(model.ErrUpstreamUnavailable, err.Error())
	}
	return resp.StatusCode(), resp.Body(), nil
}

// PostAuthRaw is the POST counterpart of GetAuthRaw.
func (c *Client) PostAuthRaw(ctx context.Context, cred, path string) (int, []byte, error) {
	resp, err := c.http.R().SetContext(ctx).Post(AuthPath(cred, path))
	if err != nil {
		return 0, nil, errors.Wrap(model.ErrUpstreamUnavailable, err.Error())
	}
	return resp.StatusCode(), resp.Body(), nil
}

// Probe performs an unauthenticated GET and returns the raw status code.
// Health checks need the status itself: the portal answers 403 to anonymous
// callers when it is up.
func (c *Client) Probe(ctx context.Context, path string) (int, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return 0, errors.Wrap(model.ErrUpstreamUnavailable, err.Error())
	}
	return resp.StatusCode(), nil
}

// classify maps the three failure classes: transport error, non-2xx status,
// and (for the caller to decide) a 2xx body with a broken shape.
func classify(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, errors.Wrap(model.ErrUpstreamUnavailable, err.Error())
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", model.ErrUpstreamRejected, resp.StatusCode())
	}
	return resp.Body(), nil
}
