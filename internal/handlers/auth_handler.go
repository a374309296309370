package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Danskers/Finances-API/internal/auth"
	"github.com/Danskers/Finances-API/internal/config"
	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/services"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration form payload.
type RegisterRequest struct {
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required,max=128"`
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm serves the registration entry point.
// @Summary     Registration form
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]interface{} "Form metadata"
// @Router      /register [get]
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Crear cuenta", "error": nil})
}

// Register handles user registration. Validation failures re-render
// the form contract: HTTP 200 with an inline error, never an error
// status.
// @Summary     Register a new user
// @Description Register with email and password; a default account is created
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "Email"
// @Param       password formData string true "Password"
// @Success     302 "Redirects to /login"
// @Success     200 {object} map[string]interface{} "Inline validation error"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"title": "Crear cuenta", "error": err.Error()})
		return
	}

	if _, err := h.userService.CreateUser(req.Email, req.Password); err != nil {
		c.JSON(http.StatusOK, gin.H{"title": "Crear cuenta", "error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// LoginForm serves the login entry point.
// @Summary     Login form
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]interface{} "Form metadata"
// @Router      /login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Iniciar sesión", "error": nil})
}

// Login authenticates a user and starts a session. On success the
// signed token is set as an http-only cookie and the client is
// redirected to the dashboard. Bad credentials answer HTTP 200 with
// an inline error so the login form can re-render.
// @Summary     Login user
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "Email"
// @Param       password formData string true "Password"
// @Success     302 "Redirects to /dashboard with session cookie"
// @Success     200 {object} map[string]interface{} "Inline validation error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"title": "Iniciar sesión", "error": err.Error()})
		return
	}

	user, err := h.userService.GetUserByEmail(req.Email)
	if err != nil || !h.userService.VerifyPassword(user, req.Password) {
		c.JSON(http.StatusOK, gin.H{"title": "Iniciar sesión", "error": apperrors.ErrInvalidCredentials.Message})
		return
	}

	ttl := config.Get().JWTExpirationDur
	token, err := auth.IssueToken(strconv.FormatUint(uint64(user.ID), 10), ttl)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(ttl.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session cookie and redirects to the login page.
// @Summary     Logout user
// @Tags        auth
// @Success     302 "Redirects to /login"
// @Router      /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
