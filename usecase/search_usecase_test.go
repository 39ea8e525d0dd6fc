package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tagtube/domain/dto"
	"tagtube/domain/model"
	"tagtube/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchFixture struct {
	searches *MockSearchRepository
	videos   *MockVideoSearch
	audit    *MockAuditPublisher
	usecase  ISearchUsecase
}

func newSearchFixture(t *testing.T) *searchFixture {
	f := &searchFixture{
		searches: &MockSearchRepository{},
		videos:   &MockVideoSearch{},
		audit:    &MockAuditPublisher{},
	}
	u := NewSearchUsecase(f.searches, f.videos, newTestDefaults(t), f.audit, SearchOptions{DefaultMaxResults: 10, MaxResultsLimit: 100})
	u.(*searchUsecase).now = func() time.Time { return fixedNow }
	f.usecase = u
	return f
}

var searcher = model.User{ID: 3, Tag: "pretty-fox"}

func errorCodes(records []model.VideoRecord) []model.ErrorKind {
	codes := make([]model.ErrorKind, 0, len(records))
	for _, r := range records {
		if r.ErrorCode == nil {
			codes = append(codes, "")
			continue
		}
		codes = append(codes, *r.ErrorCode)
	}
	return codes
}

func TestSearch_KeywordLogsBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	f := newSearchFixture(t)

	var order []string
	f.searches.On("Create", ctx, mock.MatchedBy(func(s *model.Search) bool {
		return s.UserID == 3 && s.Query == "lofi" && s.MaxResults == 10
	})).Run(func(mock.Arguments) { order = append(order, "log") }).Return(nil)
	f.audit.On("Publish", ctx, model.AuditEvent{
		Type:       model.AuditSearchLogged,
		UserID:     3,
		Tag:        "pretty-fox",
		Query:      "lofi",
		MaxResults: 10,
		OccurredAt: fixedNow,
	}).Return(nil)
	f.videos.On("Search", ctx, "lofi", 10).
		Run(func(mock.Arguments) { order = append(order, "search") }).
		Return([]model.RawResult{fullRaw(), {"id": "second"}}, nil)

	results := f.usecase.Search(ctx, searcher, dto.SearchRequest{Query: "lofi"})

	require.Len(t, results, 2)
	assert.Equal(t, "aaaaaaaaaaa", results[0].Tag)
	assert.Equal(t, "second", results[1].Tag)
	assert.Equal(t, []string{"log", "search"}, order)
	f.searches.AssertExpectations(t)
	f.videos.AssertExpectations(t)
	f.audit.AssertExpectations(t)
}

func TestSearch_URLTakesSingleURLPath(t *testing.T) {
	ctx := context.Background()
	f := newSearchFixture(t)
	url := "https://youtu.be/aaaaaaaaaaa"

	f.searches.On("Create", ctx, mock.Anything).Return(nil)
	f.audit.On("Publish", ctx, mock.Anything).Return(nil)
	f.videos.On("SearchByURL", ctx, url).Return([]model.RawResult{fullRaw()}, nil)

	results := f.usecase.Search(ctx, searcher, dto.SearchRequest{Query: url, MaxResults: ptr(5)})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].ErrorCode)
	f.videos.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_Failures(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		want  model.ErrorKind
	}{
		{"urlExtractionFailed", "https://youtu.be/broken", repository.ErrExtractionFailed, model.ErrorKindNotValid},
		{"urlWrappedExtractionFailed", "http://youtube.com/watch?v=x", errorsJoin(repository.ErrExtractionFailed), model.ErrorKindNotValid},
		{"urlOtherError", "https://youtu.be/aaaaaaaaaaa", errors.New("quota exceeded"), model.ErrorKindUnknownError},
		{"urlDisabledSearch", "https://youtu.be/aaaaaaaaaaa", repository.ErrNoEntries, model.ErrorKindNotAvailable},
		{"keywordNoEntries", "lofi", repository.ErrNoEntries, model.ErrorKindNotAvailable},
		{"keywordOtherError", "lofi", errors.New("timeout"), model.ErrorKindUnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newSearchFixture(t)
			f.searches.On("Create", ctx, mock.Anything).Return(nil)
			f.audit.On("Publish", ctx, mock.Anything).Return(nil)
			f.videos.On("SearchByURL", ctx, tt.query).Return(nil, tt.err).Maybe()
			f.videos.On("Search", ctx, tt.query, 10).Return(nil, tt.err).Maybe()

			results := f.usecase.Search(ctx, searcher, dto.SearchRequest{Query: tt.query})

			assert.Equal(t, []model.ErrorKind{tt.want}, errorCodes(results))
			assert.Equal(t, string(tt.want)+" title", results[0].Title)
		})
	}
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("context"), err)
}

func TestSearch_EmptyResultsStayEmpty(t *testing.T) {
	ctx := context.Background()
	f := newSearchFixture(t)
	f.searches.On("Create", ctx, mock.Anything).Return(nil)
	f.audit.On("Publish", ctx, mock.Anything).Return(nil)
	f.videos.On("Search", ctx, "zzzz", 10).Return([]model.RawResult{}, nil)

	results := f.usecase.Search(ctx, searcher, dto.SearchRequest{Query: "zzzz"})

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_LogFailureDoesNotBlockSearch(t *testing.T) {
	ctx := context.Background()
	f := newSearchFixture(t)
	f.searches.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))
	f.videos.On("Search", ctx, "lofi", 10).Return([]model.RawResult{fullRaw()}, nil)

	results := f.usecase.Search(ctx, searcher, dto.SearchRequest{Query: "lofi"})

	assert.Len(t, results, 1)
	f.audit.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSearch_MaxResultsIsClampedBeforeLogging(t *testing.T) {
	ctx := context.Background()
	f := newSearchFixture(t)
	f.searches.On("Create", ctx, mock.MatchedBy(func(s *model.Search) bool { return s.MaxResults == 100 })).Return(nil)
	f.audit.On("Publish", ctx, mock.Anything).Return(nil)
	f.videos.On("Search", ctx, "lofi", 100).Return([]model.RawResult{}, nil)

	f.usecase.Search(ctx, searcher, dto.SearchRequest{Query: "lofi", MaxResults: ptr(500)})

	f.searches.AssertExpectations(t)
	f.videos.AssertExpectations(t)
}

func TestSearchOptions_MaxResults(t *testing.T) {
	o := SearchOptions{DefaultMaxResults: 10, MaxResultsLimit: 100}

	assert.Equal(t, 10, o.MaxResults(nil))
	assert.Equal(t, 1, o.MaxResults(ptr(0)))
	assert.Equal(t, 1, o.MaxResults(ptr(-3)))
	assert.Equal(t, 25, o.MaxResults(ptr(25)))
	assert.Equal(t, 100, o.MaxResults(ptr(101)))
}
