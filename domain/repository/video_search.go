package repository

import (
	"context"
	"errors"

	"tagtube/domain/model"
)

var (
	// ErrExtractionFailed is returned when a URL cannot be resolved to a video.
	ErrExtractionFailed = errors.New("video extraction failed")
	// ErrNoEntries is returned when a keyword search yields no entry list.
	ErrNoEntries = errors.New("no entries in search result")
)

// IVideoSearch is the external video platform.
type IVideoSearch interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error)
	SearchByURL(ctx context.Context, url string) ([]model.RawResult, error)
}
