package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client. resty installs a cookie
// jar by default, so session cookies set by the backend are replayed on every
// later request.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewStreamClient returns a client for long-lived streaming responses.
//
// It shares the base URL and cookie jar of rest but has no overall timeout:
// the request timeout of rest would otherwise cut a healthy stream. Stream
// lifetime is bounded by the request context instead.
func NewStreamClient(rest *HTTPClient) *HTTPClient {
	stream := resty.New().
		SetBaseURL(rest.BaseURL).
		SetCookieJar(rest.GetClient().Jar).
		SetDoNotParseResponse(true)

	return &HTTPClient{Client: stream}
}
