package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/middleware"
	"github.com/Adarshkumar111/Maintenance/internal/models"
	"github.com/Adarshkumar111/Maintenance/internal/services"
	"github.com/Adarshkumar111/Maintenance/internal/utils"
)

// LoginRequest represents the login form
type LoginRequest struct {
	UserID   string `form:"user_id" binding:"required"`
	Password string `form:"password" binding:"required"`
	Role     string `form:"role"`
}

// AuthHandler handles the login screen and the demo session cookie
type AuthHandler struct {
	authService   *services.AuthService
	auditService  *services.AuditService
	sessionExpiry time.Duration
	secureCookie  bool
	logger        *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService *services.AuthService,
	auditService *services.AuditService,
	sessionExpiry time.Duration,
	secureCookie bool,
	logger *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		auditService:  auditService,
		sessionExpiry: sessionExpiry,
		secureCookie:  secureCookie,
		logger:        logger,
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, LoginRequest{}, "")
}

// Login handles POST /login
// Any user ID and password are accepted; the role decides the dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, http.StatusBadRequest, req, alertMessage(services.ErrMissingCredentials))
		return
	}

	result, err := h.authService.Login(req.UserID, req.Password, req.Role)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.WithError(err).Error("Login failed")
		}
		h.renderLogin(c, status, req, alertMessage(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.SessionToken, int(h.sessionExpiry.Seconds()), "/", "", h.secureCookie, true)
	h.auditService.LogLogin(req.UserID, string(result.Role), utils.GetRealIP(c), c.Request.UserAgent())

	c.Redirect(http.StatusSeeOther, result.RedirectPath)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if userID := sessionUser(c); userID != "" {
		h.auditService.LogLogout(userID, utils.GetRealIP(c), c.Request.UserAgent())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form LoginRequest, alert string) {
	render(c, status, "login.html", "Login", gin.H{
		"Roles": models.Roles,
		"Form":  form,
		"Alert": alert,
	})
}
