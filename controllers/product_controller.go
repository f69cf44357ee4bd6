package controllers

import (
	"net/http"
	"strconv"

	"crewcall-shop/models"
	"crewcall-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetAllProducts godoc
// @Summary List catalog products
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    ctrl.catalog.Products(),
	})
}

// GetProductByID godoc
// @Summary Get one product
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.ProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// GetProductPrice godoc
// @Summary Price a product for an order quantity
// @Description Returns the tier with the largest quantity not exceeding the requested order size
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Param quantity query int true "Order quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/price [get]
func (ctrl *ProductController) GetProductPrice(c *gin.Context) {
	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid quantity"})
		return
	}

	tier, err := ctrl.catalog.PriceFor(c.Param("id"), quantity)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Price resolved",
		Data: gin.H{
			"quantity":      quantity,
			"tier_quantity": tier.Quantity,
			"unit_price":    tier.Price,
		},
	})
}

// GetTextiles godoc
// @Summary List textile marking options
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /textiles [get]
func (ctrl *ProductController) GetTextiles(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Textile options retrieved",
		Data:    ctrl.catalog.Textiles(),
	})
}

// QuoteNotebook godoc
// @Summary Price a spiral notebook configuration
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.NotebookConfig true "Notebook configuration"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /notebook/quote [post]
func (ctrl *ProductController) QuoteNotebook(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Quote computed",
		Data: gin.H{
			"unit_price": ctrl.catalog.NotebookUnitPrice(cfg),
			"quantity":   cfg.Quantity,
			"total":      ctrl.catalog.NotebookQuote(cfg),
		},
	})
}
