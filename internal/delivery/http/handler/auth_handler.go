package handler

import (
	"errors"
	"net/http"

	"github.com/creadoresuy/directorio-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the admin session cookie. Its value is the configured
// admin secret itself, matching the panel this service replaces.
const SessionCookieName = "admin_session"

const sessionMaxAge = 60 * 60 * 24 // 24 hours

type AuthHandler struct {
	authUseCase  *auth.AdminAuthUseCase
	secureCookie bool
}

func NewAuthHandler(authUseCase *auth.AdminAuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		secureCookie: secureCookie,
	}
}

// LoginRequest represents admin login request
type LoginRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
// @Summary Admin login
// @Description Validate operator credentials and issue the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Usuario o contraseña incorrectos",
		})
		return
	}

	err := h.authUseCase.Login(c.Request.Context(), req.User, req.Password, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Admin no configurado. Agrega ADMIN_USER y ADMIN_PASSWORD en .env",
			})
		case errors.Is(err, auth.ErrTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "Demasiados intentos. Probá de nuevo más tarde",
			})
		default:
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "Usuario o contraseña incorrectos",
			})
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, h.authUseCase.SessionValue(), sessionMaxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
