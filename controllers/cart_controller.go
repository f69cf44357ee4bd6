package controllers

import (
	"errors"
	"net/http"

	"crewcall-shop/middleware"
	"crewcall-shop/models"
	"crewcall-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts   *services.CartService
	catalog *services.CatalogService
}

func NewCartController(carts *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{carts: carts, catalog: catalog}
}

func cartPayload(cart *models.Cart) models.CartResponse {
	return models.CartResponse{
		Items: cart.Items,
		Count: cart.Count(),
		Total: cart.TotalPrice().String(),
	}
}

func (ctrl *CartController) sessionID(c *gin.Context) string {
	claims := middleware.SessionClaims(c)
	if claims == nil {
		return ""
	}
	return claims.SessionID
}

// GetCart godoc
// @Summary Get the session cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.carts.GetCart(ctrl.sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved", Data: cartPayload(cart)})
}

// AddItem godoc
// @Summary Add a catalog product to the cart
// @Description Price is resolved from the product tier table at add time; adding the same product again merges quantities
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	cart, err := ctrl.carts.AddProduct(ctrl.sessionID(c), req)
	if errors.Is(err, services.ErrUnknownProduct) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added to cart", Data: cartPayload(cart)})
}

// AddNotebook godoc
// @Summary Add a configured spiral notebook to the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.NotebookConfig true "Notebook configuration"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/notebook [post]
func (ctrl *CartController) AddNotebook(c *gin.Context) {
	var cfg models.NotebookConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if fieldErrs := ctrl.catalog.ValidateNotebookConfig(cfg); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid notebook configuration",
			Errors:  fieldErrs,
		})
		return
	}

	cart, err := ctrl.carts.AddItem(ctrl.sessionID(c), ctrl.catalog.NotebookLine(cfg))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Notebook added to cart", Data: cartPayload(cart)})
}

// UpdateItem godoc
// @Summary Update a line quantity
// @Description Quantities below 1 and unknown ids are ignored and the cart returned unchanged
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Line item id"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	cart, err := ctrl.carts.UpdateQuantity(ctrl.sessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart updated", Data: cartPayload(cart)})
}

// RemoveItem godoc
// @Summary Remove a line from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Line item id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, err := ctrl.carts.RemoveItem(ctrl.sessionID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removed", Data: cartPayload(cart)})
}

// ClearCart godoc
// @Summary Empty the session cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.carts.Clear(ctrl.sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared"})
}
