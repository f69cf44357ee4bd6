package services

import (
	"errors"

	"crewcall-shop/models"
	"crewcall-shop/repositories"
	"crewcall-shop/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenIssuer signs and verifies session tokens. The JWT helpers in
// utils implement it; tests use a stub.
type TokenIssuer interface {
	Issue(clientID, email string, isGuest bool) (string, *utils.SessionClaims, error)
}

// SessionRevoker invalidates session ids on logout. With Redis absent
// revocation is a no-op and logout simply means dropping the token.
type SessionRevoker interface {
	Revoke(sessionID string) error
	IsRevoked(sessionID string) bool
}

// JWTIssuer issues tokens signed with the configured secret.
type JWTIssuer struct{}

func (JWTIssuer) Issue(clientID, email string, isGuest bool) (string, *utils.SessionClaims, error) {
	return utils.GenerateSessionToken(clientID, email, isGuest)
}

// AuthService mediates the visitor's identity transitions: anonymous,
// guest or authenticated against a client record.
type AuthService struct {
	clients ClientStore
	tokens  TokenIssuer
	revoker SessionRevoker
}

func NewAuthService(clients ClientStore, tokens TokenIssuer, revoker SessionRevoker) *AuthService {
	return &AuthService{clients: clients, tokens: tokens, revoker: revoker}
}

// Register creates a client record with credentials and signs the new
// client in. The email plausibility check runs before any lookup, and a
// duplicate email fails with ErrEmailTaken so the storefront can prompt
// "already have an account?".
func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
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

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		PasswordHash: hash,
	}

	if err := s.clients.Create(client); err != nil {
		return nil, err
	}

	token, _, err := s.tokens.Issue(client.ID, client.Email, false)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, Client: *client}, nil
}

// Login validates credentials against the client record. Failures are
// uniform: an unknown email, a record without credentials and a wrong
// password all report ErrInvalidCredentials. A store outage is not a
// credential failure and passes through so the caller can say "try
// again" instead of "wrong password".
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if !plausibleEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	client, err := s.clients.FindByEmail(req.Email)
	if errors.Is(err, repositories.ErrClientNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrInvalidCredentials
	}

	if client.PasswordHash == "" || !utils.VerifyPassword(client.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(client.ID, client.Email, false)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, Client: *client}, nil
}

// LoginAsGuest issues a guest session. It always succeeds, whatever the
// visitor's prior state.
func (s *AuthService) LoginAsGuest() (string, error) {
	token, _, err := s.tokens.Issue("", "", true)
	return token, err
}

// Logout revokes the session id so the token stops resolving.
func (s *AuthService) Logout(claims *utils.SessionClaims) error {
	if claims == nil {
		return nil
	}
	return s.revoker.Revoke(claims.SessionID)
}

// ResolveSession rehydrates the visitor state from token claims. Guest
// claims resolve to a guest session; client claims trigger a registry
// lookup, and a failed lookup degrades to anonymous rather than erroring
// so the storefront just clears its marker.
func (s *AuthService) ResolveSession(claims *utils.SessionClaims) models.Session {
	if claims == nil || s.revoker.IsRevoked(claims.SessionID) {
		return models.Anonymous()
	}

	if claims.IsGuest {
		return models.Session{
			State:     models.SessionGuest,
			SessionID: claims.SessionID,
			IsGuest:   true,
		}
	}

	if claims.ClientID == "" {
		return models.Anonymous()
	}

	client, err := s.clients.FindByID(claims.ClientID)
	if err != nil || client == nil {
		return models.Anonymous()
	}

	return models.Session{
		State:     models.SessionAuthenticated,
		SessionID: claims.SessionID,
		Client:    client,
	}
}
