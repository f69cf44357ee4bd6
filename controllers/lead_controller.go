package controllers

import (
	"net/http"

	"crewcall-shop/middleware"
	"crewcall-shop/models"
	"crewcall-shop/services"

	"github.com/gin-gonic/gin"
)

type LeadController struct {
	leads *services.LeadService
}

func NewLeadController(leads *services.LeadService) *LeadController {
	return &LeadController{leads: leads}
}

func writeLeadResult(c *gin.Context, err error) {
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "We could not deliver your request, please retry",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Request sent successfully"})
}

// SubmitPersonalization godoc
// @Summary Submit a personalization request
// @Description Validates the payload and forwards it to the shop inbox
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.PersonalizationRequest true "Personalization request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /requests/personalization [post]
func (ctrl *LeadController) SubmitPersonalization(c *gin.Context) {
	var req models.PersonalizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if fieldErrs := ctrl.leads.ValidatePersonalization(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Please correct the highlighted fields",
			Errors:  fieldErrs,
		})
		return
	}

	writeLeadResult(c, ctrl.leads.SubmitPersonalization(req))
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact message"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /requests/contact [post]
func (ctrl *LeadController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if fieldErrs := ctrl.leads.ValidateContact(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Please correct the highlighted fields",
			Errors:  fieldErrs,
		})
		return
	}

	writeLeadResult(c, ctrl.leads.SubmitContact(req))
}

// SubmitTextileQuote godoc
// @Summary Submit a textile marking quote request
// @Description Forwards the quote to the shop inbox; with a session, a zero-priced quote line is added to the cart
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.TextileQuoteRequest true "Quote request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /requests/textile-quote [post]
func (ctrl *LeadController) SubmitTextileQuote(c *gin.Context) {
	var req models.TextileQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if fieldErrs := ctrl.leads.ValidateTextileQuote(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Please correct the highlighted fields",
			Errors:  fieldErrs,
		})
		return
	}

	sessionID := ""
	if claims := middleware.SessionClaims(c); claims != nil {
		sessionID = claims.SessionID
	}

	writeLeadResult(c, ctrl.leads.SubmitTextileQuote(req, sessionID))
}
