package gsc

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrEmptyResult marks a query that succeeded but matched no rows. It is not
// a failure: callers surface it as a notice, never as an error page.
var ErrEmptyResult = errors.New("gsc: query returned no rows")

// ErrAuthentication indicates the credential was rejected. The only remedy
// is signing in again; there is no automatic retry.
var ErrAuthentication = errors.New("gsc: authentication failed")

// DataFetchError wraps any transport, permission, or quota failure from the
// Search Analytics API. Downstream rendering degrades to an empty table
// rather than crashing the session.
type DataFetchError struct {
	Err error
}

func (e *DataFetchError) Error() string {
	return "gsc: fetch search analytics data: " + e.Err.Error()
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// WrapError classifies an API error. 401s become ErrAuthentication so the
// caller can clear the session; everything else becomes a DataFetchError
// carrying the underlying message.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAuthentication(err) {
		return errors.Join(ErrAuthentication, err)
	}
	return &DataFetchError{Err: err}
}

// IsAuthentication returns true if the error indicates invalid or expired
// credentials.
func IsAuthentication(err error) bool {
	if errors.Is(err, ErrAuthentication) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized
	}
	return false
}

// IsQuota returns true if the error indicates rate limiting or exhausted
// quota.
func IsQuota(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code == http.StatusForbidden
	}
	return false
}
