package http

import (
	"errors"
	"io"
	"net/http"

	"tagtube/domain/dto"
	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/logger"
	"tagtube/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal     = "Error while unmarshal"
	ErrorUserNotFound  = "User not found"
	ErrorInternal      = "Internal server error"
	ErrorInvalidMethod = "Invalid request method"
)

type IUserHandler interface {
	GetData(c *gin.Context)
	SaveData(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) GetData(c *gin.Context) {
	user, err := h.userUsecase.GetByTag(c.Request.Context(), c.Param("tag"))
	if errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: ErrorUserNotFound})
		return
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while loading user")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: ErrorInternal})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// SaveData registers the tag. An empty body registers it with the
// default location.
func (h *UserHandler) SaveData(c *gin.Context) {
	var req dto.UserDataRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ErrorUnmarshal})
		return
	}

	isSaved := h.userUsecase.Save(c.Request.Context(), c.Param("tag"), req)

	c.JSON(http.StatusOK, dto.SaveResponse{IsSaved: isSaved})
}

// resolveUser writes the error response itself and reports whether the
// handler may continue.
func resolveUser(c *gin.Context, users usecase.IUserUsecase, notFound func(c *gin.Context)) (model.User, bool) {
	user, err := users.GetByTag(c.Request.Context(), c.Param("tag"))
	if errors.Is(err, repository.ErrUserNotFound) {
		notFound(c)
		return model.User{}, false
	}
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "tag": c.Param("tag")}).Error("Error while resolving user")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: ErrorInternal})
		return model.User{}, false
	}
	return user, true
}
