package search

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed     = errors.New("serpapi request failed")
	ErrMalformedResponse = errors.New("malformed serpapi response")
)

// MalformedResponseError is returned when a json endpoint answers with a body that is not
// valid json. Body holds at most the first 512 bytes of the response.
type MalformedResponseError struct {
	Endpoint string
	Body     string
	Err      error
}

const maxErrorBody = 512

func newMalformedResponseError(endpoint, body string, err error) *MalformedResponseError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &MalformedResponseError{Endpoint: endpoint, Body: body, Err: err}
}

func (e *MalformedResponseError) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("%v: %v", ErrMalformedResponse, e.Err)
	}
	return fmt.Sprintf("%v from %s: %v", ErrMalformedResponse, e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}
