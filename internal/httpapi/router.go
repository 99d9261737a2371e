package httpapi

import (
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AdvisingHandler *AdvisingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.GET("/healthcheck", HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/chat", cfg.AdvisingHandler.Chat)
		api.POST("/plan", cfg.AdvisingHandler.Plan)
		api.POST("/gap", cfg.AdvisingHandler.Gap)
		api.POST("/gap/compare", cfg.AdvisingHandler.Compare)
		api.GET("/careers/:title", cfg.AdvisingHandler.Career)
	}

	return router
}
