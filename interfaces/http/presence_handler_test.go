package http

import (
	"errors"
	"net/http"
	"testing"

	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPresenceRouter(users *MockUserUsecase, presence *MockPresenceUsecase) *gin.Engine {
	handler := NewPresenceHandler(users, presence)
	router := gin.New()
	router.Handle(http.MethodPatch, "/user/:tag/heartbeat", handler.Heartbeat)
	router.Handle(http.MethodPost, "/user/:tag/heartbeat", handler.Heartbeat)
	router.Handle(http.MethodPut, "/user/:tag/heartbeat", handler.Heartbeat)
	return router
}

func TestHeartbeat_Dispatch(t *testing.T) {
	user := model.User{ID: 3, Tag: "pretty-fox"}
	tests := []struct {
		method string
		cmd    usecase.PresenceCommand
		saved  bool
		body   string
	}{
		{http.MethodPatch, usecase.PresenceTouch, true, `{"isSaved":true}`},
		{http.MethodPatch, usecase.PresenceTouch, false, `{"isSaved":false}`},
		{http.MethodPost, usecase.PresenceRecordAccess, true, `{"isSaved":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.method+"/"+tt.body, func(t *testing.T) {
			users := &MockUserUsecase{}
			presence := &MockPresenceUsecase{}
			users.On("GetByTag", mock.Anything, "pretty-fox").Return(user, nil)
			presence.On("Apply", mock.Anything, user, tt.cmd).Return(tt.saved).Once()

			w := serve(newPresenceRouter(users, presence), tt.method, "/user/pretty-fox/heartbeat", "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			presence.AssertExpectations(t)
		})
	}
}

func TestHeartbeat_UnknownUser(t *testing.T) {
	for _, method := range []string{http.MethodPatch, http.MethodPost} {
		users := &MockUserUsecase{}
		presence := &MockPresenceUsecase{}
		users.On("GetByTag", mock.Anything, "ghost").Return(model.User{}, repository.ErrUserNotFound)

		w := serve(newPresenceRouter(users, presence), method, "/user/ghost/heartbeat", "")

		assert.Equal(t, http.StatusBadRequest, w.Code, method)
		assert.JSONEq(t, `{"isSaved":false}`, w.Body.String(), method)
		presence.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestHeartbeat_StoreFailure(t *testing.T) {
	users := &MockUserUsecase{}
	users.On("GetByTag", mock.Anything, "pretty-fox").Return(model.User{}, errors.New("timeout"))

	w := serve(newPresenceRouter(users, &MockPresenceUsecase{}), http.MethodPatch, "/user/pretty-fox/heartbeat", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHeartbeat_OtherMethod(t *testing.T) {
	users := &MockUserUsecase{}

	w := serve(newPresenceRouter(users, &MockPresenceUsecase{}), http.MethodPut, "/user/pretty-fox/heartbeat", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request method"}`, w.Body.String())
	users.AssertNotCalled(t, "GetByTag", mock.Anything, mock.Anything)
}
