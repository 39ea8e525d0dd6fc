package youtube

import (
	"context"

	"tagtube/domain/model"
	"tagtube/domain/repository"
)

// DisabledClient stands in when no YouTube credentials are configured.
type DisabledClient struct{}

func (DisabledClient) Search(context.Context, string, int) ([]model.RawResult, error) {
	return nil, repository.ErrNoEntries
}

func (DisabledClient) SearchByURL(context.Context, string) ([]model.RawResult, error) {
	return nil, repository.ErrNoEntries
}
