package controllers

import (
	"errors"
	"net/http"

	"crewcall-shop/middleware"
	"crewcall-shop/models"
	"crewcall-shop/repositories"
	"crewcall-shop/services"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clients *services.ClientService
	auth    *services.AuthService
}

func NewClientController(clients *services.ClientService, auth *services.AuthService) *ClientController {
	return &ClientController{clients: clients, auth: auth}
}

func (ctrl *ClientController) session(c *gin.Context) models.Session {
	return ctrl.auth.ResolveSession(middleware.SessionClaims(c))
}

func writeClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Success: false, Message: "Access denied. Sign in with a client account"})
	case errors.Is(err, repositories.ErrClientNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Client not found"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "A client with this email already exists"})
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid email format",
			Errors:  []models.FieldError{{Field: "email", Message: "a valid email is required"}},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Operation failed", Error: err.Error()})
	}
}

// GetAllClients godoc
// @Summary List client records
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /clients [get]
func (ctrl *ClientController) GetAllClients(c *gin.Context) {
	clients, err := ctrl.clients.List(ctrl.session(c))
	if err != nil {
		writeClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Clients retrieved", Data: clients})
}

// GetClientByID godoc
// @Summary Get one client record
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [get]
func (ctrl *ClientController) GetClientByID(c *gin.Context) {
	client, err := ctrl.clients.Get(ctrl.session(c), c.Param("id"))
	if err != nil {
		writeClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Client retrieved", Data: client})
}

// CreateClient godoc
// @Summary Create a client record
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateClientRequest true "Client"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /clients [post]
func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Errors:  []models.FieldError{{Field: "name", Message: "name is required"}},
		})
		return
	}

	client, err := ctrl.clients.Create(ctrl.session(c), req)
	if err != nil {
		writeClientError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Client created", Data: client})
}

// UpdateClient godoc
// @Summary Update a client record
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client id"
// @Param request body models.UpdateClientRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [patch]
func (ctrl *ClientController) UpdateClient(c *gin.Context) {
	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	client, err := ctrl.clients.Update(ctrl.session(c), c.Param("id"), req)
	if err != nil {
		writeClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Client updated", Data: client})
}

// DeleteClient godoc
// @Summary Delete a client record
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [delete]
func (ctrl *ClientController) DeleteClient(c *gin.Context) {
	if err := ctrl.clients.Delete(ctrl.session(c), c.Param("id")); err != nil {
		writeClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Client deleted"})
}
