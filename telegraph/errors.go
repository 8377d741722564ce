package telegraph

import (
	"errors"
	"fmt"
)

// Kind classifies the layer a failure came from
type Kind int

const (
	// KindAPI is a server-reported failure (ok:false)
	KindAPI Kind = iota + 1
	// KindTransport is a network or HTTP failure before a usable body was read
	KindTransport
	// KindDecode is a body that does not match the expected envelope, or a
	// request that could not be serialized
	KindDecode
	// KindIO is a local file failure on the upload path
	KindIO
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind. errors.Is(err, ErrAPI) reports whether err
// is an *Error of KindAPI.
var (
	ErrAPI       = errors.New("telegraph api error")
	ErrTransport = errors.New("telegraph transport error")
	ErrDecode    = errors.New("telegraph decode error")
	ErrIO        = errors.New("telegraph io error")
)

// ErrResponseTooLarge is wrapped by the transport error returned for a
// response body over the read limit
var ErrResponseTooLarge = errors.New("response too large")

// Error is the single error type returned by every operation
type Error struct {
	Kind Kind
	// Op is the API method (e.g. "createPage") or "upload"
	Op string
	// Message is the server-provided message for KindAPI (e.g. SHORT_NAME_REQUIRED)
	Message string
	// StatusCode is the HTTP status when one was received
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Kind == KindAPI {
		return fmt.Sprintf("telegraph %s: api error: %s", e.Op, e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("telegraph %s: %s error: status %d: %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("telegraph %s: %s error: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying transport, decode or io error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's Kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAPI:
		return e.Kind == KindAPI
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// APIMessage returns the server message if err is an API error
func APIMessage(err error) (string, bool) {
	var te *Error
	if errors.As(err, &te) && te.Kind == KindAPI {
		return te.Message, true
	}
	return "", false
}

func apiError(op, message string) *Error {
	return &Error{Kind: KindAPI, Op: op, Message: message}
}

func transportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

func decodeError(op string, err error) *Error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}

func ioError(op string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}
