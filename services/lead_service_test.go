package services

import (
	"errors"
	"testing"

	"crewcall-shop/models"
	"crewcall-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	subjects []string
	bodies   []string
	fail     bool
}

func (m *recordingMailer) SendLead(subject, body string) error {
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

func validPersonalization() models.PersonalizationRequest {
	return models.PersonalizationRequest{
		Name:        "Julien Dupont",
		Email:       "julien@prod.fr",
		Phone:       "0612345678",
		Product:     "notepad",
		Quantity:    50,
		Description: "Logo sur la première page",
	}
}

func TestValidatePersonalizationCollectsFieldErrors(t *testing.T) {
	svc := NewLeadService(&recordingMailer{}, nil)

	errs := svc.ValidatePersonalization(models.PersonalizationRequest{Email: "nope"})

	fields := map[string]bool{}
	for _, fieldErr := range errs {
		fields[fieldErr.Field] = true
	}
	for _, expected := range []string{"name", "email", "phone", "product", "quantity", "description"} {
		assert.True(t, fields[expected], "expected error on %s", expected)
	}
}

func TestValidatePersonalizationCustomProduct(t *testing.T) {
	svc := NewLeadService(&recordingMailer{}, nil)

	req := validPersonalization()
	req.Product = "other"
	errs := svc.ValidatePersonalization(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "custom_product", errs[0].Field)

	req.CustomProduct = "Casquette brodée"
	assert.Empty(t, svc.ValidatePersonalization(req))
}

func TestSubmitPersonalizationSendsEmail(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewLeadService(mailer, nil)

	require.NoError(t, svc.SubmitPersonalization(validPersonalization()))

	require.Len(t, mailer.subjects, 1)
	assert.Contains(t, mailer.subjects[0], "Julien Dupont")
	assert.Contains(t, mailer.bodies[0], "Bloc-Note Logo Avant")
	assert.Contains(t, mailer.bodies[0], "Quantité: 50")
}

func TestSubmitPersonalizationSimulationMode(t *testing.T) {
	svc := NewLeadService(nil, nil)

	assert.NoError(t, svc.SubmitPersonalization(validPersonalization()))
}

func TestSubmitPersonalizationDeliveryFailure(t *testing.T) {
	svc := NewLeadService(&recordingMailer{fail: true}, nil)

	err := svc.SubmitPersonalization(validPersonalization())
	assert.ErrorIs(t, err, ErrMailDelivery)
}

func TestValidateContact(t *testing.T) {
	svc := NewLeadService(&recordingMailer{}, nil)

	assert.Empty(t, svc.ValidateContact(models.ContactRequest{
		Name:    "Ana",
		Email:   "ana@b.fr",
		Message: "Bonjour",
	}))

	errs := svc.ValidateContact(models.ContactRequest{Email: "x"})
	assert.Len(t, errs, 3)
}

func TestValidateTextileQuote(t *testing.T) {
	svc := NewLeadService(&recordingMailer{}, nil)

	assert.Empty(t, svc.ValidateTextileQuote(models.TextileQuoteRequest{
		TextileType: "tshirt",
		Quantity:    30,
		Placement:   "both",
		Name:        "Julien Dupont",
		Email:       "julien@prod.fr",
		Phone:       "0612345678",
	}))

	errs := svc.ValidateTextileQuote(models.TextileQuoteRequest{
		TextileType: "tuxedo",
		Placement:   "sleeve",
		Name:        "JD",
		Email:       "x",
		Phone:       "06",
	})
	assert.Len(t, errs, 6)
}

func TestSubmitTextileQuoteAddsZeroPricedCartLine(t *testing.T) {
	mailer := &recordingMailer{}
	carts := NewCartService(repositories.NewMemoryCartRepository())
	svc := NewLeadService(mailer, carts)

	req := models.TextileQuoteRequest{
		TextileType: "polo",
		Quantity:    30,
		Placement:   "front",
		HasLogo:     true,
		Name:        "Julien Dupont",
		Email:       "julien@prod.fr",
		Phone:       "0612345678",
	}
	require.NoError(t, svc.SubmitTextileQuote(req, "sess-1"))

	require.Len(t, mailer.bodies, 1)
	assert.Contains(t, mailer.bodies[0], "Polo")

	cart, err := carts.GetCart("sess-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	quote := cart.Items[0]
	assert.True(t, quote.Price.IsZero())
	assert.Equal(t, 1, quote.Quantity)
	assert.Equal(t, 30, quote.SelectedQuantity)
	assert.Contains(t, quote.Name, "Polo")

	// Quote lines never inflate the total.
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestSubmitTextileQuoteWithoutSessionSkipsCart(t *testing.T) {
	mailer := &recordingMailer{}
	carts := NewCartService(repositories.NewMemoryCartRepository())
	svc := NewLeadService(mailer, carts)

	req := models.TextileQuoteRequest{
		TextileType: "cap",
		Quantity:    10,
		Placement:   "front",
		Name:        "Julien Dupont",
		Email:       "julien@prod.fr",
		Phone:       "0612345678",
	}
	require.NoError(t, svc.SubmitTextileQuote(req, ""))
	require.Len(t, mailer.bodies, 1)
}
