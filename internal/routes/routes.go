package routes

import (
	"devconnector_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under /api.
func RegisterRoutes(engine *gin.Engine, appHandlers *handlers.AppHandlers) {
	engine.GET("/", func(c *gin.Context) {
		c.String(200, "API Running")
	})

	api := engine.Group("/api")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
	}
}
