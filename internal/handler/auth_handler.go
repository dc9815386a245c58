package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/internal/auth"
	"github.com/cnsllgllr/qrmaster/internal/config"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// LoginRequest represents the credentials for a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and its expiry
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	cfg    *config.AuthConfig
	logger *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(cfg *config.AuthConfig, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies the admin credentials and issues a bearer token
// @Summary Log in
// @Description Verify the configured admin credentials and issue a JWT bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse} "Issued token"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		h.logger.WithField("username", req.Username).Warn("Login rejected")
		utils.UnauthorizedResponse(c, "Invalid username or password")
		return
	}

	token, expiresAt, err := auth.GenerateToken(h.cfg.JWTSecret, req.Username, h.cfg.TokenTTL)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue token")
		utils.InternalServerErrorResponse(c, "Failed to issue token", err)
		return
	}

	h.logger.WithField("username", req.Username).Info("Login succeeded")
	utils.SuccessResponse(c, "Login successful", LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
	})
}
