package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
)

// ApiError is returned by every SendPost API call that did not succeed.
// HttpStatusCode and Body are only set once a response was received.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// SendPostMessage holds the "error" field of a JSON error body, if any.
	SendPostMessage string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to SendPost failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false for a joined error:
// ok := errors.Is(errors.Join(&sendpost_errors.ApiError{}), &sendpost_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// StatusCode returns the HTTP status code carried by err,
// or 0 when err is not an *ApiError or no response was received.
func StatusCode(err error) int {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.HttpStatusCode
	}
	return 0
}

// ResponseBody returns the raw response body carried by err, if any.
func ResponseBody(err error) string {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return string(apiErr.Body)
	}
	return ""
}
