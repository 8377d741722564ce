package telegraph

import (
	"encoding/json"
	"errors"
)

var (
	errMissingResult = errors.New(`"ok" is true but "result" is missing`)
	errMissingError  = errors.New(`"ok" is false but "error" is missing`)
)

// Envelope is the wrapper of every API response. Exactly one of Result and
// Error is set, selected by OK.
type Envelope[T any] struct {
	OK     bool    `json:"ok"`
	Result *T      `json:"result,omitempty"`
	Error  *string `json:"error,omitempty"`
}

// Unwrap returns the result of a successful envelope or an *Error
func (e Envelope[T]) Unwrap(op string) (*T, error) {
	if e.OK {
		if e.Result == nil {
			return nil, decodeError(op, errMissingResult)
		}
		return e.Result, nil
	}
	if e.Error == nil {
		return nil, decodeError(op, errMissingError)
	}
	return nil, apiError(op, *e.Error)
}

// Decode parses body as an Envelope[T] and unwraps it
func Decode[T any](op string, body []byte) (*T, error) {
	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, decodeError(op, err)
	}
	return env.Unwrap(op)
}
