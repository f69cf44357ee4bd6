package services

import (
	"errors"

	"crewcall-shop/models"
	"crewcall-shop/repositories"
)

var ErrUnknownProduct = errors.New("unknown product")

// CartService owns the per-session cart and its mutation rules. All
// mutations are total over the current cart state: quantity floors,
// unknown ids and duplicate adds are absorbed, never reported as
// errors. Only the storage backend can fail.
type CartService struct {
	carts repositories.CartRepository
}

func NewCartService(carts repositories.CartRepository) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) GetCart(sessionID string) (*models.Cart, error) {
	return s.carts.Get(sessionID)
}

// AddItem appends a line to the session cart. When a line with the same
// id already exists the incoming quantity is merged into it and the
// existing price is kept, so a product id appears at most once.
func (s *CartService) AddItem(sessionID string, item models.CartLineItem) (*models.Cart, error) {
	cart, err := s.carts.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ID == item.ID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddProduct builds a line from the static catalog and adds it. The
// price is resolved from the product's tier table at add time and stays
// fixed for the life of the line.
func (s *CartService) AddProduct(sessionID string, req models.AddCartItemRequest) (*models.Cart, error) {
	product, ok := models.FindProduct(req.ProductID)
	if !ok {
		return nil, ErrUnknownProduct
	}

	tier := product.PriceFor(req.SelectedQuantity)

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return s.AddItem(sessionID, models.CartLineItem{
		ID:               product.ID,
		Name:             product.Name,
		ImageURL:         product.ImageURL,
		Price:            tier.Price,
		Quantity:         quantity,
		Customizable:     product.Customizable,
		SelectedQuantity: req.SelectedQuantity,
	})
}

// UpdateQuantity sets a line's quantity. Quantities below 1 and unknown
// ids are ignored; the cart is returned unchanged.
func (s *CartService) UpdateQuantity(sessionID, itemID string, quantity int) (*models.Cart, error) {
	cart, err := s.carts.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return cart, nil
	}

	changed := false
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			changed = true
			break
		}
	}

	if !changed {
		return cart, nil
	}

	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes the line with a matching id. Unknown ids are a
// no-op.
func (s *CartService) RemoveItem(sessionID, itemID string) (*models.Cart, error) {
	cart, err := s.carts.Get(sessionID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			if err := s.carts.Save(cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}

	return cart, nil
}

// Clear drops the session cart entirely.
func (s *CartService) Clear(sessionID string) error {
	return s.carts.Delete(sessionID)
}
