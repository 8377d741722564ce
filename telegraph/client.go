package telegraph

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the root of the Telegraph API
	DefaultBaseURL = "https://api.telegra.ph"
	// DefaultUploadURL is the media upload endpoint
	DefaultUploadURL = "https://telegra.ph/upload"
	// DefaultUserAgent is sent unless WithUserAgent overrides it
	DefaultUserAgent = "telegraph-go/1"

	formContentType = "application/x-www-form-urlencoded"

	// maxResponseSize limits response body reads
	maxResponseSize = 10 << 20
)

// API method names
const (
	methodCreateAccount     = "createAccount"
	methodEditAccountInfo   = "editAccountInfo"
	methodGetAccountInfo    = "getAccountInfo"
	methodRevokeAccessToken = "revokeAccessToken"
	methodCreatePage        = "createPage"
	methodEditPage          = "editPage"
	methodGetPage           = "getPage"
	methodGetPageList       = "getPageList"
	methodGetViews          = "getViews"
	opUpload                = "upload"
)

// Client represents a Telegraph API client. It is safe for concurrent use;
// every builder it returns shares its HTTP client.
type Client struct {
	baseURL    string
	uploadURL  string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Telegraph client
func NewClient(opts ...Option) *Client {
	o := clientOptions{
		baseURL:   DefaultBaseURL,
		uploadURL: DefaultUploadURL,
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if o.timeout > 0 {
		hc := *httpClient
		hc.Timeout = o.timeout
		httpClient = &hc
	}

	return &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		uploadURL:  o.uploadURL,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     o.logger,
	}
}

func (c *Client) endpoint(method string) string {
	return c.baseURL + "/" + method
}

func (c *Client) bind(method string) endpoint {
	return endpoint{client: c, method: method}
}

// post performs one HTTP POST and returns the raw body and status code
func (c *Client) post(ctx context.Context, op, target, contentType string, body io.Reader) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return nil, 0, transportError(op, fmt.Errorf("failed to create request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", op).
			Str("request_id", requestID).
			Msg("Telegraph API request failed")
		return nil, 0, transportError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, resp.StatusCode, transportError(op, fmt.Errorf("failed to read response body: %w", err))
	}
	if len(data) > maxResponseSize {
		return nil, resp.StatusCode, &Error{
			Kind:       KindTransport,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: exceeds %d bytes", ErrResponseTooLarge, maxResponseSize),
		}
	}

	c.logger.Debug().
		Str("method", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("took", time.Since(start)).
		Msg("Telegraph API request")

	return data, resp.StatusCode, nil
}

// CreateAccount starts a createAccount request. ShortName is required.
func (c *Client) CreateAccount() CreateAccount[Missing] {
	return CreateAccount[Missing]{endpoint: c.bind(methodCreateAccount)}
}

// EditAccountInfo starts an editAccountInfo request. AccessToken is required.
func (c *Client) EditAccountInfo() EditAccountInfo[Missing] {
	return EditAccountInfo[Missing]{endpoint: c.bind(methodEditAccountInfo)}
}

// GetAccountInfo starts a getAccountInfo request requesting
// DefaultAccountFields. AccessToken is required.
func (c *Client) GetAccountInfo() GetAccountInfo[Missing] {
	return GetAccountInfo[Missing]{
		endpoint: c.bind(methodGetAccountInfo),
		fields:   append([]AccountField(nil), DefaultAccountFields...),
	}
}

// RevokeAccessToken starts a revokeAccessToken request. AccessToken is required.
func (c *Client) RevokeAccessToken() RevokeAccessToken[Missing] {
	return RevokeAccessToken[Missing]{endpoint: c.bind(methodRevokeAccessToken)}
}

// CreatePage starts a createPage request. AccessToken, Title and Content are
// required.
func (c *Client) CreatePage() CreatePage[Missing, Missing, Missing] {
	return CreatePage[Missing, Missing, Missing]{endpoint: c.bind(methodCreatePage)}
}

// EditPage starts an editPage request. AccessToken, Path, Title and Content
// are required.
func (c *Client) EditPage() EditPage[Missing, Missing, Missing, Missing] {
	return EditPage[Missing, Missing, Missing, Missing]{endpoint: c.bind(methodEditPage)}
}

// GetPage starts a getPage request. Path is required.
func (c *Client) GetPage() GetPage[Missing] {
	return GetPage[Missing]{endpoint: c.bind(methodGetPage)}
}

// GetPageList starts a getPageList request with offset 0 and limit 50.
// AccessToken is required.
func (c *Client) GetPageList() GetPageList[Missing] {
	return GetPageList[Missing]{
		endpoint: c.bind(methodGetPageList),
		form:     getPageListForm{Offset: 0, Limit: DefaultPageListLimit},
	}
}

// GetViews starts a getViews request. Path is required.
func (c *Client) GetViews() GetViews[Missing] {
	return GetViews[Missing]{endpoint: c.bind(methodGetViews)}
}
