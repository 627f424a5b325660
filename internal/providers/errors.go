package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed marks transport errors and non-success HTTP statuses.
	ErrFetchFailed = errors.New("feed fetch failed")
	// ErrParseFailed marks bodies that are not JSON or lack expected fields.
	ErrParseFailed = errors.New("feed parse failed")
	// ErrGameNotFound is returned by GameDetail when the id is absent from the feed.
	ErrGameNotFound = errors.New("game not found in feed")
	// ErrProviderUnavailable is returned by wrappers with no inner provider.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// FeedError captures a failed feed call. It matches ErrFetchFailed or
// ErrParseFailed through errors.Is, as well as the underlying cause.
type FeedError struct {
	Feed       string
	Kind       error
	StatusCode int
	Err        error
}

func (e *FeedError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Feed, e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FeedError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// FetchFailed builds a FeedError of kind ErrFetchFailed.
func FetchFailed(feed string, status int, err error) error {
	return &FeedError{Feed: feed, Kind: ErrFetchFailed, StatusCode: status, Err: err}
}

// ParseFailed builds a FeedError of kind ErrParseFailed.
func ParseFailed(feed string, err error) error {
	return &FeedError{Feed: feed, Kind: ErrParseFailed, Err: err}
}

// AsFeedError attempts to unwrap an error into a FeedError.
func AsFeedError(err error) (*FeedError, bool) {
	var feedErr *FeedError
	if errors.As(err, &feedErr) {
		return feedErr, true
	}
	return nil, false
}
