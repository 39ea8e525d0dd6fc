package http

import (
	"net/http"

	"tagtube/domain/dto"
	"tagtube/usecase"

	"github.com/gin-gonic/gin"
)

type IPresenceHandler interface {
	Heartbeat(c *gin.Context)
}

type PresenceHandler struct {
	userUsecase     usecase.IUserUsecase
	presenceUsecase usecase.IPresenceUsecase
}

func NewPresenceHandler(userUsecase usecase.IUserUsecase, presenceUsecase usecase.IPresenceUsecase) IPresenceHandler {
	return &PresenceHandler{userUsecase: userUsecase, presenceUsecase: presenceUsecase}
}

// Heartbeat refreshes the latest access on PATCH and records a new access
// on POST.
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	var cmd usecase.PresenceCommand
	switch c.Request.Method {
	case http.MethodPatch:
		cmd = usecase.PresenceTouch
	case http.MethodPost:
		cmd = usecase.PresenceRecordAccess
	default:
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: ErrorInvalidMethod})
		return
	}

	user, ok := resolveUser(c, h.userUsecase, func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, dto.SaveResponse{IsSaved: false})
	})
	if !ok {
		return
	}

	isSaved := h.presenceUsecase.Apply(c.Request.Context(), user, cmd)

	c.JSON(http.StatusOK, dto.SaveResponse{IsSaved: isSaved})
}
