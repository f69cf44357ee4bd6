package services

import (
	"errors"
	"strings"

	"crewcall-shop/models"
	"crewcall-shop/repositories"
)

var (
	ErrForbidden    = errors.New("access denied")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email format")
)

// ClientStore is the persistence surface of the client registry. The
// pgx repository implements it in production; tests swap in a fake.
type ClientStore interface {
	Create(client *models.Client) error
	FindByID(id string) (*models.Client, error)
	FindByEmail(email string) (*models.Client, error)
	FindAll() ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id string) error
}

// AccessPolicy decides whether a session may read or mutate the client
// registry. The storefront's rule is simple: registered clients only.
// Other deployments can supply their own check.
type AccessPolicy interface {
	CanManageClients(session models.Session) bool
}

// RegisteredClientPolicy grants registry access to authenticated,
// non-guest sessions.
type RegisteredClientPolicy struct{}

func (RegisteredClientPolicy) CanManageClients(session models.Session) bool {
	return session.State == models.SessionAuthenticated && !session.IsGuest
}

// ClientService is the admin-panel CRUD over the clients table, gated
// by the access policy.
type ClientService struct {
	clients ClientStore
	policy  AccessPolicy
}

func NewClientService(clients ClientStore, policy AccessPolicy) *ClientService {
	return &ClientService{clients: clients, policy: policy}
}

// plausibleEmail is the storefront's email check: it only requires an
// "@" with something on both sides. Deliverability is not our problem.
func plausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (s *ClientService) List(session models.Session) ([]models.Client, error) {
	if !s.policy.CanManageClients(session) {
		return nil, ErrForbidden
	}
	return s.clients.FindAll()
}

func (s *ClientService) Get(session models.Session, id string) (*models.Client, error) {
	if !s.policy.CanManageClients(session) {
		return nil, ErrForbidden
	}
	return s.clients.FindByID(id)
}

func (s *ClientService) Create(session models.Session, req models.CreateClientRequest) (*models.Client, error) {
	if !s.policy.CanManageClients(session) {
		return nil, ErrForbidden
	}

	if req.Email != "" {
		if !plausibleEmail(req.Email) {
			return nil, ErrInvalidEmail
		}
		existing, err := s.clients.FindByEmail(req.Email)
		if err != nil && !errors.Is(err, repositories.ErrClientNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
	}

	client := &models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
	}

	if err := s.clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(session models.Session, id string, req models.UpdateClientRequest) (*models.Client, error) {
	if !s.policy.CanManageClients(session) {
		return nil, ErrForbidden
	}

	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("name is required")
		}
		client.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email != "" && !plausibleEmail(*req.Email) {
			return nil, ErrInvalidEmail
		}
		if *req.Email != "" && *req.Email != client.Email {
			existing, err := s.clients.FindByEmail(*req.Email)
			if err != nil && !errors.Is(err, repositories.ErrClientNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrEmailTaken
			}
		}
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := s.clients.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(session models.Session, id string) error {
	if !s.policy.CanManageClients(session) {
		return ErrForbidden
	}
	return s.clients.Delete(id)
}

// Keep the concrete repository honest about the interface.
var _ ClientStore = (*repositories.ClientRepository)(nil)
