package telegraph

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	uploadURL  string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// WithBaseURL sets the API root, e.g. https://api.telegra.ph
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUploadURL sets the media upload endpoint.
func WithUploadURL(uploadURL string) Option {
	return func(o *clientOptions) {
		o.uploadURL = uploadURL
	}
}

// WithHTTPClient sets the HTTP client shared by every request.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
