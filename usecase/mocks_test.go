package usecase

import (
	"context"
	"time"

	"tagtube/domain/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByTag(ctx context.Context, tag string) (model.User, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockAccessRepository struct {
	mock.Mock
}

func (m *MockAccessRepository) Create(ctx context.Context, access *model.Access) error {
	args := m.Called(ctx, access)
	return args.Error(0)
}

func (m *MockAccessRepository) TouchLatest(ctx context.Context, userID uint, now time.Time) (bool, error) {
	args := m.Called(ctx, userID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessRepository) DeactivateIdle(ctx context.Context, cutoff, now time.Time) (int64, error) {
	args := m.Called(ctx, cutoff, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) Create(ctx context.Context, search *model.Search) error {
	args := m.Called(ctx, search)
	return args.Error(0)
}

type MockVideoSearch struct {
	mock.Mock
}

func (m *MockVideoSearch) Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error) {
	args := m.Called(ctx, query, maxResults)
	results, _ := args.Get(0).([]model.RawResult)
	return results, args.Error(1)
}

func (m *MockVideoSearch) SearchByURL(ctx context.Context, url string) ([]model.RawResult, error) {
	args := m.Called(ctx, url)
	results, _ := args.Get(0).([]model.RawResult)
	return results, args.Error(1)
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) Publish(ctx context.Context, event model.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
