package handlers

import (
	"log/slog"
	"net/http"

	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/evfin/event_finance_app/internal/platform/config"
	"github.com/evfin/event_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type devTokenRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type devTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// registerDevTokenRoutes exposes a token minting endpoint for local
// development. The app does no user management of its own; operators
// normally obtain tokens from the surrounding infrastructure, but a
// local instance needs a way to call the protected API.
func registerDevTokenRoutes(r *gin.Engine, cfg *config.Config) {
	r.POST("/auth/dev-token", func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var req devTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		token, err := utils.GenerateJWT(req.UserID, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
		if err != nil {
			logger.Error("Failed to generate dev token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, devTokenResponse{AccessToken: token})
	})
}
