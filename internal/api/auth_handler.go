package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
)

// AuthHandler serves the stateless admin login check. No session or token is
// issued; the client keeps its own logged-in state and the other admin
// endpoints do not re-verify it.
type AuthHandler struct {
	creds  *auth.Credentials
	logger *slog.Logger
}

// NewAuthHandler returns an AuthHandler.
func NewAuthHandler(creds *auth.Credentials, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{creds: creds, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login answers whether the submitted pair matches the configured admin
// credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || !h.creds.Verify(req.Username, req.Password) {
		h.logger.Warn("failed admin login", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}
