package models

import "github.com/shopspring/decimal"

func tier(quantity int, price int64) PriceOption {
	return PriceOption{Quantity: quantity, Price: decimal.NewFromInt(price)}
}

// Catalog is the static product list shown on the storefront. There is
// no product database: descriptors are reference data baked into the
// build, matching the marketing pages they appear on.
var Catalog = []Product{
	{
		ID:          "notepad-01",
		Name:        "Bloc-Note Logo Avant",
		Description: "Bloc-note professionnel avec votre logo imprimé en première page. Idéal pour les prises de notes sur le plateau.",
		ImageURL:    "/uploads/products/notepad-front-logo.png",
		PriceOptions: []PriceOption{
			tier(25, 160),
			tier(50, 226),
			tier(100, 353),
		},
		Customizable: true,
	},
	{
		ID:          "tshirt-01",
		Name:        "Tee-Shirt avec Logo",
		Description: "Tee-shirt de qualité supérieure avec votre logo à l'arrière et sur le cœur. Livraison incluse.",
		ImageURL:    "/uploads/products/tshirt-logo.png",
		PriceOptions: []PriceOption{
			tier(25, 274),
			tier(50, 500),
			tier(100, 958),
		},
		Customizable: true,
	},
	{
		ID:          "stickers-01",
		Name:        "Stickers Logo",
		Description: "Stickers personnalisés avec votre logo, idéaux pour marquer votre matériel ou créer des produits dérivés.",
		ImageURL:    "/uploads/products/stickers-logo.png",
		PriceOptions: []PriceOption{
			tier(25, 230),
			tier(50, 290),
			tier(100, 410),
		},
		Customizable: true,
	},
	{
		ID:          "bottle-01",
		Name:        "Gourde Logo Bas",
		Description: "Gourde écologique et durable avec votre logo imprimé en bas de la gourde. Maintient vos boissons fraîches ou chaudes.",
		ImageURL:    "/uploads/products/bottle-logo.png",
		PriceOptions: []PriceOption{
			tier(25, 451),
			tier(50, 840),
			tier(100, 1645),
		},
		Customizable: true,
	},
}

// TextileCatalog lists the garments available for textile marking
// quotes. FromPrice is indicative only; quotes are established by hand.
var TextileCatalog = []TextileOption{
	{Value: "tshirt", Label: "Tee-shirt", ImageURL: "/uploads/textiles/tshirt.png", FromPrice: decimal.NewFromInt(8)},
	{Value: "polo", Label: "Polo", ImageURL: "/uploads/textiles/polo.png", FromPrice: decimal.NewFromInt(12)},
	{Value: "sweatshirt", Label: "Sweatshirt", ImageURL: "/uploads/textiles/sweatshirt.png", FromPrice: decimal.NewFromInt(18)},
	{Value: "jacket", Label: "Veste", ImageURL: "/uploads/textiles/jacket.png", FromPrice: decimal.NewFromInt(25)},
	{Value: "apron", Label: "Tablier", ImageURL: "/uploads/textiles/apron.png", FromPrice: decimal.NewFromInt(15)},
	{Value: "safetyVest", Label: "Gilet de sécurité", ImageURL: "/uploads/textiles/safety-vest.png", FromPrice: decimal.NewFromInt(10)},
	{Value: "cap", Label: "Casquette", ImageURL: "/uploads/textiles/cap.png", FromPrice: decimal.NewFromInt(7)},
}

// FindProduct looks a product up by id in the static catalog.
func FindProduct(id string) (*Product, bool) {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i], true
		}
	}
	return nil, false
}

// FindTextile looks a textile option up by its value key.
func FindTextile(value string) (*TextileOption, bool) {
	for i := range TextileCatalog {
		if TextileCatalog[i].Value == value {
			return &TextileCatalog[i], true
		}
	}
	return nil, false
}
