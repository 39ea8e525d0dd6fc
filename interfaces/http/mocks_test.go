package http

import (
	"context"
	"time"

	"tagtube/domain/dto"
	"tagtube/domain/model"
	"tagtube/usecase"

	"github.com/stretchr/testify/mock"
)

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetByTag(ctx context.Context, tag string) (model.User, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserUsecase) Save(ctx context.Context, tag string, req dto.UserDataRequest) bool {
	args := m.Called(ctx, tag, req)
	return args.Bool(0)
}

type MockPresenceUsecase struct {
	mock.Mock
}

func (m *MockPresenceUsecase) Apply(ctx context.Context, user model.User, cmd usecase.PresenceCommand) bool {
	args := m.Called(ctx, user, cmd)
	return args.Bool(0)
}

func (m *MockPresenceUsecase) Touch(ctx context.Context, user model.User) bool {
	return m.Apply(ctx, user, usecase.PresenceTouch)
}

func (m *MockPresenceUsecase) RecordAccess(ctx context.Context, user model.User) bool {
	return m.Apply(ctx, user, usecase.PresenceRecordAccess)
}

func (m *MockPresenceUsecase) Sweep(ctx context.Context, maxIdle time.Duration) bool {
	args := m.Called(ctx, maxIdle)
	return args.Bool(0)
}

type MockSearchUsecase struct {
	mock.Mock
}

func (m *MockSearchUsecase) Search(ctx context.Context, user model.User, req dto.SearchRequest) []model.VideoRecord {
	args := m.Called(ctx, user, req)
	return args.Get(0).([]model.VideoRecord)
}
