package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"tagtube/domain/dto"
	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/logger"
	"tagtube/infrastructure/utils"
)

type SearchOptions struct {
	DefaultMaxResults int
	MaxResultsLimit   int
}

type ISearchUsecase interface {
	// Search logs the request and then returns normalized results. A
	// failed lookup yields a single default record, never an error.
	Search(ctx context.Context, user model.User, req dto.SearchRequest) []model.VideoRecord
}

type searchUsecase struct {
	searches   repository.ISearch
	videos     repository.IVideoSearch
	defaults   *VideoDefaults
	normalizer *VideoNormalizer
	audit      repository.IAuditPublisher
	options    SearchOptions
	now        func() time.Time
}

func NewSearchUsecase(
	searches repository.ISearch,
	videos repository.IVideoSearch,
	defaults *VideoDefaults,
	audit repository.IAuditPublisher,
	options SearchOptions,
) ISearchUsecase {
	if options.DefaultMaxResults <= 0 {
		options.DefaultMaxResults = 10
	}
	if options.MaxResultsLimit < options.DefaultMaxResults {
		options.MaxResultsLimit = options.DefaultMaxResults
	}
	return &searchUsecase{
		searches:   searches,
		videos:     videos,
		defaults:   defaults,
		normalizer: NewVideoNormalizer(defaults),
		audit:      audit,
		options:    options,
		now:        utils.GetCurrentTime,
	}
}

// MaxResults applies the default and clamps into [1, limit].
func (o SearchOptions) MaxResults(requested *int) int {
	if requested == nil {
		return o.DefaultMaxResults
	}
	return min(max(*requested, 1), o.MaxResultsLimit)
}

func (u *searchUsecase) Search(ctx context.Context, user model.User, req dto.SearchRequest) []model.VideoRecord {
	maxResults := u.options.MaxResults(req.MaxResults)
	u.logSearch(ctx, user, req.Query, maxResults)

	var (
		raws []model.RawResult
		err  error
	)
	if utils.IsURL(req.Query) {
		raws, err = u.videos.SearchByURL(ctx, req.Query)
	} else {
		raws, err = u.videos.Search(ctx, req.Query, maxResults)
	}
	if err != nil {
		return u.failure(req.Query, maxResults, err)
	}

	results := slices.Collect(u.normalizer.Normalize(raws))
	if results == nil {
		results = []model.VideoRecord{}
	}
	return results
}

// logSearch writes the audit row before the lookup. Losing the row does
// not block the search.
func (u *searchUsecase) logSearch(ctx context.Context, user model.User, query string, maxResults int) {
	search := &model.Search{
		UserID:       user.ID,
		Query:        query,
		MaxResults:   maxResults,
		CreationDate: u.now(),
	}
	if err := u.searches.Create(ctx, search); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "user": user.ID}).Error("Error while logging search")
		return
	}

	publishAudit(ctx, u.audit, model.AuditEvent{
		Type:       model.AuditSearchLogged,
		UserID:     user.ID,
		Tag:        user.Tag,
		Query:      query,
		MaxResults: maxResults,
		OccurredAt: search.CreationDate,
	})
}

func (u *searchUsecase) failure(query string, maxResults int, err error) []model.VideoRecord {
	switch {
	case errors.Is(err, repository.ErrExtractionFailed):
		return u.defaults.Records(model.ErrorKindNotValid)
	case errors.Is(err, repository.ErrNoEntries):
		return u.defaults.Records(model.ErrorKindNotAvailable)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"error":      err,
		"query":      query,
		"maxResults": maxResults,
	}).Error("Error during search")
	return u.defaults.Records(model.ErrorKindUnknownError)
}
