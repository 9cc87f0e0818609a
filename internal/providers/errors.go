package providers

import (
	"errors"
	"fmt"
)

const fetchErrorPrefix = "Failed to fetch MLB data: "

// FetchError is the single failure type surfaced by schedule providers.
// StatusCode is zero for transport and decode failures.
type FetchError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fetchErrorPrefix + "unknown error"
	}
	return fetchErrorPrefix + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewStatusError builds a FetchError for a non-success upstream response.
func NewStatusError(provider string, status int) *FetchError {
	return &FetchError{
		Provider:   provider,
		StatusCode: status,
		Err:        fmt.Errorf("HTTP error! status: %d", status),
	}
}

// NewTransportError wraps a transport or decode failure.
func NewTransportError(provider string, err error) *FetchError {
	return &FetchError{Provider: provider, Err: err}
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
