package services

import (
	"fmt"

	"crewcall-shop/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	notebookBasePrice    = decimal.RequireFromString("12.99")
	notebookA4Extra      = decimal.NewFromInt(5)
	notebookSquareExtra  = decimal.NewFromInt(3)
	notebook100SheetsFee = decimal.NewFromInt(7)
	notebookCoverFee     = decimal.NewFromInt(2)
)

// CatalogService serves the static product catalog and the spiral
// notebook configurator pricing.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) Products() []models.Product {
	return models.Catalog
}

func (s *CatalogService) ProductByID(id string) (*models.Product, error) {
	product, ok := models.FindProduct(id)
	if !ok {
		return nil, ErrUnknownProduct
	}
	return product, nil
}

// PriceFor resolves the tier applicable to an order of quantity units.
func (s *CatalogService) PriceFor(id string, quantity int) (models.PriceOption, error) {
	product, ok := models.FindProduct(id)
	if !ok {
		return models.PriceOption{}, ErrUnknownProduct
	}
	return product.PriceFor(quantity), nil
}

func (s *CatalogService) Textiles() []models.TextileOption {
	return models.TextileCatalog
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// ValidateNotebookConfig checks the configurator enums and quantity.
func (s *CatalogService) ValidateNotebookConfig(cfg models.NotebookConfig) []models.FieldError {
	var errs []models.FieldError

	if !oneOf(cfg.Orientation, "portrait", "landscape") {
		errs = append(errs, models.FieldError{Field: "orientation", Message: "must be portrait or landscape"})
	}
	if !oneOf(cfg.Format, "a5", "a4", "square", "custom") {
		errs = append(errs, models.FieldError{Field: "format", Message: "must be a5, a4, square or custom"})
	}
	if cfg.Format == "custom" && (cfg.CustomWidth <= 0 || cfg.CustomHeight <= 0) {
		errs = append(errs, models.FieldError{Field: "format", Message: "custom format requires width and height"})
	}
	if !oneOf(cfg.BindingColor, "white", "black") {
		errs = append(errs, models.FieldError{Field: "binding_color", Message: "must be white or black"})
	}
	if !oneOf(cfg.BindingPosition, "top", "left") {
		errs = append(errs, models.FieldError{Field: "binding_position", Message: "must be top or left"})
	}
	if !oneOf(cfg.Sheets, "50", "100") {
		errs = append(errs, models.FieldError{Field: "sheets", Message: "must be 50 or 100"})
	}
	if cfg.CoverEnabled && !oneOf(cfg.CoverPaper, "glossy250", "matte300") {
		errs = append(errs, models.FieldError{Field: "cover_paper", Message: "must be glossy250 or matte300"})
	}
	if cfg.CoverEnabled && !oneOf(cfg.CoverFinish, "none", "glossy", "matte", "softTouch") {
		errs = append(errs, models.FieldError{Field: "cover_finish", Message: "must be none, glossy, matte or softTouch"})
	}
	if cfg.Quantity < 1 {
		errs = append(errs, models.FieldError{Field: "quantity", Message: "must be at least 1"})
	}

	return errs
}

// NotebookUnitPrice prices one notebook for a configuration: the base
// price plus format, sheet count and cover surcharges.
func (s *CatalogService) NotebookUnitPrice(cfg models.NotebookConfig) decimal.Decimal {
	price := notebookBasePrice

	switch cfg.Format {
	case "a4":
		price = price.Add(notebookA4Extra)
	case "square":
		price = price.Add(notebookSquareExtra)
	}

	if cfg.Sheets == "100" {
		price = price.Add(notebook100SheetsFee)
	}

	if cfg.CoverEnabled {
		price = price.Add(notebookCoverFee)
	}

	return price
}

// NotebookQuote prices a full configurator order.
func (s *CatalogService) NotebookQuote(cfg models.NotebookConfig) decimal.Decimal {
	return s.NotebookUnitPrice(cfg).Mul(decimal.NewFromInt(int64(cfg.Quantity)))
}

// NotebookLine turns a validated configuration into a cart line. The
// line carries the configured order as a single bundle: the price is
// the quoted total, the tier quantity records how many notebooks the
// quote covers.
func (s *CatalogService) NotebookLine(cfg models.NotebookConfig) models.CartLineItem {
	return models.CartLineItem{
		ID:               "notebook-" + uuid.NewString(),
		Name:             fmt.Sprintf("Bloc-notes spirale personnalisé (x%d)", cfg.Quantity),
		ImageURL:         "/uploads/products/spiral-notebook.png",
		Price:            s.NotebookQuote(cfg),
		Quantity:         1,
		Customizable:     true,
		SelectedQuantity: cfg.Quantity,
	}
}
