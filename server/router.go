package server

import (
	"net/http"
	"time"

	"tagtube/domain/dto"
	httpHandler "tagtube/interfaces/http"
	"tagtube/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	presenceHandler httpHandler.IPresenceHandler,
	searchHandler httpHandler.ISearchHandler,
	healthHandler httpHandler.IHealthHandler,
	allowOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: httpHandler.ErrorInvalidMethod})
	})
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	})

	router.GET("/healthz", healthHandler.Health)

	user := router.Group("/user/:tag")
	{
		user.PATCH("/heartbeat", presenceHandler.Heartbeat)
		user.POST("/heartbeat", presenceHandler.Heartbeat)

		user.GET("/data", userHandler.GetData)
		user.POST("/data", userHandler.SaveData)

		user.GET("/search", searchHandler.Search)
	}

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = allowOrigins
	config.AllowCredentials = true
	return config
}
