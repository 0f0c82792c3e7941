// Package linkcheck probes external http(s) links referenced from SKILL.md.
package linkcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	userAgent         = "skillcheck/1.0"
)

// Client checks link reachability over HTTP.
type Client struct {
	restyClient *resty.Client
}

// NewClient creates a client with the given per-request timeout and retry count.
func NewClient(timeout time.Duration, retries int) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries < 0 {
		retries = defaultRetryCount
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(500 * time.Millisecond)
	client.SetHeader("User-Agent", userAgent)

	return &Client{restyClient: client}
}

// Check issues a HEAD request, falling back to GET when the server does not
// support HEAD. Any status of 400 or above is an error.
func (c *Client) Check(ctx context.Context, url string) error {
	resp, err := c.restyClient.R().SetContext(ctx).Head(url)
	if err == nil && (resp.StatusCode() == http.StatusMethodNotAllowed || resp.StatusCode() == http.StatusNotImplemented) {
		resp, err = c.restyClient.R().SetContext(ctx).Get(url)
	}
	if err != nil {
		return &LinkCheckError{
			Type:    ErrorTypeRequest,
			Message: "request failed",
			Err:     err,
		}
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return &LinkCheckError{
			Type:       ErrorTypeStatus,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode()),
			StatusCode: resp.StatusCode(),
		}
	}

	return nil
}
