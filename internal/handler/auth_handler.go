package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/config"
	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

// AuthHandler handles the login entry point, registration and logout
type AuthHandler struct {
	service service.AuthService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Request DTOs: the login page posts either the login form or the
// registration form, told apart by which fields were filled in
type LoginForm struct {
	Email string `form:"email"`
	Senha string `form:"senha"`

	Nome          string `form:"nome"`
	EmailCadastro string `form:"email_cadastro"`
	SenhaCadastro string `form:"senha_cadastro"`
}

func (f *LoginForm) isRegistration() bool {
	return f.EmailCadastro != "" || f.SenhaCadastro != "" || f.Nome != ""
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if cookie, err := c.Cookie(service.SessionCookieName); err == nil {
		if _, err := h.service.ValidateSessionToken(cookie); err == nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login or register to continue"})
}

// Authenticate handles POST /login for both login and registration
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Error("❌ [Handler] Invalid login request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if form.isRegistration() {
		user, token, err := h.service.Register(form.Nome, form.EmailCadastro, form.SenhaCadastro)
		if err != nil {
			h.handleAuthError(c, err)
			return
		}
		h.setSessionCookie(c, token)
		h.logger.Info("✅ [Handler] Registration completed", "user_id", user.ID)
		c.Redirect(http.StatusFound, "/")
		return
	}

	user, token, err := h.service.Login(form.Email, form.Senha)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	h.setSessionCookie(c, token)
	h.logger.Info("✅ [Handler] Login completed", "user_id", user.ID)
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(service.SessionCookieName); err == nil {
		if err := h.service.Logout(cookie); err != nil && !errors.Is(err, repository.ErrSessionNotFound) && !errors.Is(err, service.ErrInvalidSession) {
			handleServiceError(c, h.logger, err)
			return
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(service.SessionCookieName, token, int(h.cfg.SessionTTL), "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(service.SessionCookieName, "", -1, "/", "", false, true)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validationErr.Fields})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		// The one duplicate the user is told about explicitly
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, service.ErrInvalidCredentials):
		// Does not reveal whether the email exists
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	default:
		h.logger.Error("❌ [Handler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
