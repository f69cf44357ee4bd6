package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name" binding:"required,min=3"`
	Company  string `json:"company" form:"company" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID        string `json:"product_id" binding:"required"`
	SelectedQuantity int    `json:"selected_quantity" binding:"required,min=1"`
	Quantity         int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest carries the new line quantity. Values below 1
// are accepted here and ignored by the cart store, not rejected.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CreateClientRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"omitempty"`
	Phone   string `json:"phone" form:"phone"`
	Company string `json:"company" form:"company"`
	Address string `json:"address" form:"address"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name" form:"name"`
	Email   *string `json:"email" form:"email"`
	Phone   *string `json:"phone" form:"phone"`
	Company *string `json:"company" form:"company"`
	Address *string `json:"address" form:"address"`
}

// PersonalizationRequest is the payload of the personalization lead
// form. Product "other" uses CustomProduct as the display label.
type PersonalizationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company,omitempty"`
	Product       string `json:"product"`
	CustomProduct string `json:"custom_product,omitempty"`
	Quantity      int    `json:"quantity"`
	Description   string `json:"description"`
	Message       string `json:"message,omitempty"`
}

// ContactRequest is the payload of the contact page form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// TextileQuoteRequest is the payload of the textile marking quote form.
type TextileQuoteRequest struct {
	TextileType string `json:"textile_type"`
	Quantity    int    `json:"quantity"`
	Placement   string `json:"placement"`
	HasLogo     bool   `json:"has_logo"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company,omitempty"`
	Message     string `json:"message,omitempty"`
}

// FieldError points a validation failure at the offending field so the
// storefront can surface it inline.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
