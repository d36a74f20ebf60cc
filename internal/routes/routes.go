package routes

import (
	"servis_backend/internal/auth"
	"servis_backend/internal/config"
	"servis_backend/internal/handlers"
	"servis_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP API: one public route, three guarded ones,
// and static serving of the public storage area.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	cfg *config.Config,
) {
	router.POST("/login", appHandlers.AuthHandler.Login)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/cek-token", appHandlers.AuthHandler.CekToken)
		protected.GET("/pesanan", appHandlers.PesananHandler.Index)
		protected.POST("/posting-pesanan", appHandlers.PesananHandler.Posting)
	}

	// Stored photos are public-readable under the configured base URL.
	router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
}
