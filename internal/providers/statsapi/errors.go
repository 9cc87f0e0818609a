package statsapi

import (
	"errors"
	"net/url"
)

// unwrapURLError drops the "Get <url>:" prefix net/http adds so the message carries only the cause.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
