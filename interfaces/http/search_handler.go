package http

import (
	"net/http"
	"strconv"
	"strings"

	"tagtube/domain/dto"
	"tagtube/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorQueryRequired     = "Search query is required"
	ErrorInvalidMaxResults = "maxResults must be an integer"
)

type ISearchHandler interface {
	Search(c *gin.Context)
}

type SearchHandler struct {
	userUsecase   usecase.IUserUsecase
	searchUsecase usecase.ISearchUsecase
}

func NewSearchHandler(userUsecase usecase.IUserUsecase, searchUsecase usecase.ISearchUsecase) ISearchHandler {
	return &SearchHandler{userUsecase: userUsecase, searchUsecase: searchUsecase}
}

func (h *SearchHandler) Search(c *gin.Context) {
	req := dto.SearchRequest{
		Tag:   c.Param("tag"),
		Query: c.Query("query"),
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ErrorQueryRequired})
		return
	}
	if raw, ok := c.GetQuery("maxResults"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ErrorInvalidMaxResults})
			return
		}
		req.MaxResults = &n
	}

	user, ok := resolveUser(c, h.userUsecase, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: ErrorUserNotFound})
	})
	if !ok {
		return
	}

	results := h.searchUsecase.Search(c.Request.Context(), user, req)

	c.JSON(http.StatusOK, dto.SearchResponse{Results: results})
}
