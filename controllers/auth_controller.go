package controllers

import (
	"errors"
	"net/http"

	"crewcall-shop/middleware"
	"crewcall-shop/models"
	"crewcall-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register a new client
// @Description Create a client record with credentials and sign in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	result, err := ctrl.auth.Register(req)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid email format",
			Errors:  []models.FieldError{{Field: "email", Message: "a valid email is required"}},
		})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "An account with this email already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Registration failed"})
	default:
		c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Registration successful", Data: result})
	}
}

// Login godoc
// @Summary Client login
// @Description Sign in with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	result, err := ctrl.auth.Login(req)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid email format",
			Errors:  []models.FieldError{{Field: "email", Message: "a valid email is required"}},
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid email or password"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Login failed"})
	default:
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Login successful", Data: result})
	}
}

// LoginAsGuest godoc
// @Summary Enter as guest
// @Description Issue a guest session with cart continuity and no client record
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/guest [post]
func (ctrl *AuthController) LoginAsGuest(c *gin.Context) {
	token, err := ctrl.auth.LoginAsGuest()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create guest session"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Guest session created",
		Data:    gin.H{"token": token},
	})
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	claims := middleware.SessionClaims(c)
	if err := ctrl.auth.Logout(claims); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}

// GetSession godoc
// @Summary Current session
// @Description Rehydrate the visitor state from the session token
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/session [get]
func (ctrl *AuthController) GetSession(c *gin.Context) {
	session := ctrl.auth.ResolveSession(middleware.SessionClaims(c))

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Session resolved", Data: session})
}
