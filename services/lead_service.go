package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"crewcall-shop/models"

	"github.com/google/uuid"
)

var ErrMailDelivery = errors.New("failed to deliver the request, please retry")

// Mailer forwards lead requests to the shop inbox. models.EmailService
// is the SMTP implementation.
type Mailer interface {
	SendLead(subject, body string) error
}

// personalization product keys to display labels; "other" uses the
// free-text custom product instead.
var productLabels = map[string]string{
	"notepad":  "Bloc-Note Logo Avant",
	"tshirt":   "Tee-Shirt avec Logo",
	"bottle":   "Gourde Logo Bas",
	"cup":      "Gobelet EcoCup Logo Avant",
	"vest":     "Gilet Jaune Avec Logo",
	"stickers": "Stickers Logo",
}

// LeadService validates the three lead-generation forms and relays them
// by email. With no mailer configured it runs in simulation mode: the
// content is logged and the request reported as received.
type LeadService struct {
	mailer Mailer
	carts  *CartService
}

func NewLeadService(mailer Mailer, carts *CartService) *LeadService {
	return &LeadService{mailer: mailer, carts: carts}
}

func requireField(errs []models.FieldError, value, field, message string) []models.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, models.FieldError{Field: field, Message: message})
	}
	return errs
}

// ValidatePersonalization checks the personalization request before any
// delivery is attempted.
func (s *LeadService) ValidatePersonalization(req models.PersonalizationRequest) []models.FieldError {
	var errs []models.FieldError

	errs = requireField(errs, req.Name, "name", "name is required")
	errs = requireField(errs, req.Phone, "phone", "phone is required")
	errs = requireField(errs, req.Description, "description", "description is required")

	if !plausibleEmail(req.Email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if req.Product == "" {
		errs = append(errs, models.FieldError{Field: "product", Message: "product is required"})
	}
	if req.Product == "other" && strings.TrimSpace(req.CustomProduct) == "" {
		errs = append(errs, models.FieldError{Field: "custom_product", Message: "describe the custom product"})
	}
	if req.Quantity < 1 {
		errs = append(errs, models.FieldError{Field: "quantity", Message: "quantity must be at least 1"})
	}

	return errs
}

// SubmitPersonalization relays a validated personalization request.
func (s *LeadService) SubmitPersonalization(req models.PersonalizationRequest) error {
	product := req.Product
	if req.Product == "other" {
		product = req.CustomProduct
	} else if label, ok := productLabels[req.Product]; ok {
		product = label
	}

	var b strings.Builder
	b.WriteString("Nouvelle demande de personnalisation\n\n")
	b.WriteString("=== INFORMATIONS CLIENT ===\n")
	fmt.Fprintf(&b, "Nom: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Téléphone: %s\n", req.Phone)
	if req.Company != "" {
		fmt.Fprintf(&b, "Société: %s\n", req.Company)
	}
	b.WriteString("\n=== DÉTAILS DU PRODUIT ===\n")
	fmt.Fprintf(&b, "Produit: %s\n", product)
	fmt.Fprintf(&b, "Quantité: %d\n", req.Quantity)
	fmt.Fprintf(&b, "Description: %s\n", req.Description)
	if req.Message != "" {
		fmt.Fprintf(&b, "\n=== MESSAGE COMPLÉMENTAIRE ===\n%s\n", req.Message)
	}
	b.WriteString("\n---\nCette demande a été envoyée depuis le site CrewCall Syndicate.\n")

	subject := fmt.Sprintf("Nouvelle demande de personnalisation - %s", req.Name)
	return s.deliver(subject, b.String())
}

// ValidateContact checks the contact form payload.
func (s *LeadService) ValidateContact(req models.ContactRequest) []models.FieldError {
	var errs []models.FieldError

	errs = requireField(errs, req.Name, "name", "name is required")
	errs = requireField(errs, req.Message, "message", "message is required")

	if !plausibleEmail(req.Email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "a valid email is required"})
	}

	return errs
}

// SubmitContact relays a validated contact message.
func (s *LeadService) SubmitContact(req models.ContactRequest) error {
	var b strings.Builder
	b.WriteString("Nouveau message de contact\n\n")
	fmt.Fprintf(&b, "Nom: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Company != "" {
		fmt.Fprintf(&b, "Société: %s\n", req.Company)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", req.Message)
	b.WriteString("\n---\nCette demande a été envoyée depuis le site CrewCall Syndicate.\n")

	subject := fmt.Sprintf("Nouveau message de contact - %s", req.Name)
	return s.deliver(subject, b.String())
}

// ValidateTextileQuote checks the textile marking quote payload.
func (s *LeadService) ValidateTextileQuote(req models.TextileQuoteRequest) []models.FieldError {
	var errs []models.FieldError

	if _, ok := models.FindTextile(req.TextileType); !ok {
		errs = append(errs, models.FieldError{Field: "textile_type", Message: "unknown textile type"})
	}
	if req.Quantity < 1 {
		errs = append(errs, models.FieldError{Field: "quantity", Message: "quantity must be at least 1"})
	}
	if !oneOf(req.Placement, "front", "back", "both") {
		errs = append(errs, models.FieldError{Field: "placement", Message: "must be front, back or both"})
	}
	if len(strings.TrimSpace(req.Name)) < 3 {
		errs = append(errs, models.FieldError{Field: "name", Message: "name must be at least 3 characters"})
	}
	if !plausibleEmail(req.Email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(strings.TrimSpace(req.Phone)) < 10 {
		errs = append(errs, models.FieldError{Field: "phone", Message: "a valid phone number is required"})
	}

	return errs
}

// SubmitTextileQuote relays a validated quote request. When the caller
// has a session, a zero-priced quote line is also added to their cart
// so the pending quote shows up next to regular items.
func (s *LeadService) SubmitTextileQuote(req models.TextileQuoteRequest, sessionID string) error {
	textile, ok := models.FindTextile(req.TextileType)
	if !ok {
		return fmt.Errorf("unknown textile type %q", req.TextileType)
	}

	var b strings.Builder
	b.WriteString("Nouvelle demande de devis marquage textile\n\n")
	b.WriteString("=== INFORMATIONS CLIENT ===\n")
	fmt.Fprintf(&b, "Nom: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Téléphone: %s\n", req.Phone)
	if req.Company != "" {
		fmt.Fprintf(&b, "Société: %s\n", req.Company)
	}
	b.WriteString("\n=== DÉTAILS DU MARQUAGE ===\n")
	fmt.Fprintf(&b, "Textile: %s\n", textile.Label)
	fmt.Fprintf(&b, "Quantité: %d\n", req.Quantity)
	fmt.Fprintf(&b, "Emplacement: %s\n", req.Placement)
	fmt.Fprintf(&b, "Logo fourni: %t\n", req.HasLogo)
	if req.Message != "" {
		fmt.Fprintf(&b, "\n=== MESSAGE COMPLÉMENTAIRE ===\n%s\n", req.Message)
	}
	b.WriteString("\n---\nCette demande a été envoyée depuis le site CrewCall Syndicate.\n")

	subject := fmt.Sprintf("Nouvelle demande de devis textile - %s", req.Name)
	if err := s.deliver(subject, b.String()); err != nil {
		return err
	}

	if sessionID != "" && s.carts != nil {
		// Quote lines are priced at zero until the quote comes back.
		_, err := s.carts.AddItem(sessionID, models.CartLineItem{
			ID:               "textile-" + uuid.NewString(),
			Name:             fmt.Sprintf("Marquage %s (x%d)", textile.Label, req.Quantity),
			ImageURL:         textile.ImageURL,
			Quantity:         1,
			Customizable:     true,
			SelectedQuantity: req.Quantity,
		})
		if err != nil {
			log.Println("Failed to add quote line to cart:", err)
		}
	}

	return nil
}

func (s *LeadService) deliver(subject, body string) error {
	if s.mailer == nil {
		log.Printf("Email simulation - Subject: %s\n%s", subject, body)
		return nil
	}

	if err := s.mailer.SendLead(subject, body); err != nil {
		log.Println("Lead email delivery failed:", err)
		return ErrMailDelivery
	}
	return nil
}
