package telegraph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Missing marks a required field that has not been set yet
type Missing struct{}

// Filled marks a required field that has been set
type Filled struct{}

// Call is a request ready to be sent. Builders carry one Missing/Filled type
// parameter per required field and report them through required, padded to
// four slots with Filled. Only a builder whose markers are all Filled has the
// required method this interface asks for, so passing an incomplete builder
// to Send does not compile:
//
//	req := client.CreatePage().AccessToken(token).Title("Hi")
//	telegraph.Send(ctx, req)                  // compile error: content is Missing
//	telegraph.Send(ctx, req.Content(nodes))   // ok
type Call[T any] interface {
	// Method returns the API method name, e.g. "createPage"
	Method() string
	// Values returns the form body of the request
	Values() (url.Values, error)

	target() endpoint
	required() (Filled, Filled, Filled, Filled)
	decode(body []byte) (*T, error)
}

// endpoint binds a builder to the client that created it and its API method
type endpoint struct {
	client *Client
	method string
}

func (e endpoint) target() endpoint { return e }

// Method returns the API method the request is sent to
func (e endpoint) Method() string { return e.method }

// Send performs one POST for the request and decodes its result
func Send[T any](ctx context.Context, call Call[T]) (*T, error) {
	ep := call.target()
	if ep.client == nil {
		return nil, transportError(ep.method, errors.New("request was not created by a Client"))
	}

	form, err := call.Values()
	if err != nil {
		return nil, decodeError(ep.method, fmt.Errorf("encode request: %w", err))
	}

	body, status, err := ep.client.post(ctx, ep.method, ep.client.endpoint(ep.method),
		formContentType, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	result, err := call.decode(body)
	if err != nil && (status < http.StatusOK || status >= http.StatusMultipleChoices) {
		var te *Error
		if errors.As(err, &te) && te.Kind == KindDecode {
			return nil, &Error{
				Kind:       KindTransport,
				Op:         ep.method,
				StatusCode: status,
				Err:        fmt.Errorf("unexpected response: %s", truncate(body, 200)),
			}
		}
	}
	return result, err
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
