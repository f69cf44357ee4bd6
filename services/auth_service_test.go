package services

import (
	"errors"
	"fmt"
	"testing"

	"crewcall-shop/models"
	"crewcall-shop/repositories"
	"crewcall-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClientStore is an in-memory ClientStore recording lookups, so
// tests can assert that validation short-circuits before any access.
type fakeClientStore struct {
	clients map[string]*models.Client
	nextID  int
	lookups int
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[string]*models.Client{}}
}

func (f *fakeClientStore) Create(client *models.Client) error {
	f.nextID++
	client.ID = fmt.Sprintf("client-%d", f.nextID)
	copied := *client
	f.clients[client.ID] = &copied
	return nil
}

func (f *fakeClientStore) FindByID(id string) (*models.Client, error) {
	f.lookups++
	client, ok := f.clients[id]
	if !ok {
		return nil, repositories.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (f *fakeClientStore) FindByEmail(email string) (*models.Client, error) {
	f.lookups++
	for _, client := range f.clients {
		if client.Email == email {
			copied := *client
			return &copied, nil
		}
	}
	return nil, repositories.ErrClientNotFound
}

func (f *fakeClientStore) FindAll() ([]models.Client, error) {
	all := []models.Client{}
	for _, client := range f.clients {
		all = append(all, *client)
	}
	return all, nil
}

func (f *fakeClientStore) Update(client *models.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return repositories.ErrClientNotFound
	}
	copied := *client
	f.clients[client.ID] = &copied
	return nil
}

func (f *fakeClientStore) Delete(id string) error {
	if _, ok := f.clients[id]; !ok {
		return repositories.ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

// outageClientStore fails every email lookup, standing in for a store
// that lost its database connection.
type outageClientStore struct {
	*fakeClientStore
	emailErr error
}

func (o *outageClientStore) FindByEmail(email string) (*models.Client, error) {
	return nil, o.emailErr
}

type stubIssuer struct{ count int }

func (s *stubIssuer) Issue(clientID, email string, isGuest bool) (string, *utils.SessionClaims, error) {
	s.count++
	return fmt.Sprintf("token-%d", s.count), &utils.SessionClaims{
		SessionID: fmt.Sprintf("sess-%d", s.count),
		ClientID:  clientID,
		Email:     email,
		IsGuest:   isGuest,
	}, nil
}

type fakeRevoker struct{ revoked map[string]bool }

func newFakeRevoker() *fakeRevoker { return &fakeRevoker{revoked: map[string]bool{}} }

func (f *fakeRevoker) Revoke(sessionID string) error {
	f.revoked[sessionID] = true
	return nil
}

func (f *fakeRevoker) IsRevoked(sessionID string) bool { return f.revoked[sessionID] }

func newAuthFixture() (*AuthService, *fakeClientStore, *fakeRevoker) {
	store := newFakeClientStore()
	revoker := newFakeRevoker()
	return NewAuthService(store, &stubIssuer{}, revoker), store, revoker
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()

	registered, err := svc.Register(models.RegisterRequest{
		Email:    "prod@crewcall.fr",
		Password: "secret123",
		Name:     "Julien Dupont",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Julien Dupont", registered.Client.Name)

	loggedIn, err := svc.Login(models.LoginRequest{Email: "prod@crewcall.fr", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.Client.ID, loggedIn.Client.ID)
}

func TestLoginImplausibleEmailShortCircuits(t *testing.T) {
	svc, store, _ := newAuthFixture()

	_, err := svc.Login(models.LoginRequest{Email: "not-an-email", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Zero(t, store.lookups, "no lookup should happen for an implausible email")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(models.RegisterRequest{Email: "a@b.fr", Password: "secret123", Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "a@b.fr", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginClientWithoutCredentials(t *testing.T) {
	svc, store, _ := newAuthFixture()

	// Admin-created record: no password hash.
	require.NoError(t, store.Create(&models.Client{Name: "Prod Co", Email: "prod@co.fr"}))

	_, err := svc.Login(models.LoginRequest{Email: "prod@co.fr", Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmailIsDistinctError(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(models.RegisterRequest{Email: "a@b.fr", Password: "secret123", Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{Email: "a@b.fr", Password: "other456", Name: "Bob"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStoreOutageIsNotCredentialFailure(t *testing.T) {
	outage := errors.New("connection refused")
	store := &outageClientStore{fakeClientStore: newFakeClientStore(), emailErr: outage}
	svc := NewAuthService(store, &stubIssuer{}, newFakeRevoker())

	_, err := svc.Login(models.LoginRequest{Email: "a@b.fr", Password: "secret123"})
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterStoreOutagePassesThrough(t *testing.T) {
	outage := errors.New("connection refused")
	store := &outageClientStore{fakeClientStore: newFakeClientStore(), emailErr: outage}
	svc := NewAuthService(store, &stubIssuer{}, newFakeRevoker())

	_, err := svc.Register(models.RegisterRequest{Email: "a@b.fr", Password: "secret123", Name: "Ana"})
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLoginAsGuestAlwaysSucceeds(t *testing.T) {
	svc, _, _ := newAuthFixture()

	// From anonymous.
	token, err := svc.LoginAsGuest()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// After an authenticated session was logged out.
	registered, err := svc.Register(models.RegisterRequest{Email: "a@b.fr", Password: "secret123", Name: "Ana"})
	require.NoError(t, err)
	require.NotNil(t, registered)

	token, err = svc.LoginAsGuest()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestResolveSessionStates(t *testing.T) {
	svc, store, revoker := newAuthFixture()

	// Nil claims resolve to anonymous.
	assert.Equal(t, models.SessionAnonymous, svc.ResolveSession(nil).State)

	// Guest claims resolve to guest.
	guest := svc.ResolveSession(&utils.SessionClaims{SessionID: "g1", IsGuest: true})
	assert.Equal(t, models.SessionGuest, guest.State)
	assert.True(t, guest.IsGuest)
	assert.Nil(t, guest.Client)

	// Client claims resolve through the registry.
	client := &models.Client{Name: "Ana", Email: "a@b.fr"}
	require.NoError(t, store.Create(client))
	resolved := svc.ResolveSession(&utils.SessionClaims{SessionID: "s1", ClientID: client.ID})
	assert.Equal(t, models.SessionAuthenticated, resolved.State)
	require.NotNil(t, resolved.Client)
	assert.Equal(t, client.ID, resolved.Client.ID)

	// A client record that disappeared degrades to anonymous.
	require.NoError(t, store.Delete(client.ID))
	assert.Equal(t, models.SessionAnonymous, svc.ResolveSession(&utils.SessionClaims{SessionID: "s1", ClientID: client.ID}).State)

	// Revoked sessions resolve to anonymous.
	require.NoError(t, revoker.Revoke("g1"))
	assert.Equal(t, models.SessionAnonymous, svc.ResolveSession(&utils.SessionClaims{SessionID: "g1", IsGuest: true}).State)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, revoker := newAuthFixture()

	require.NoError(t, svc.Logout(&utils.SessionClaims{SessionID: "s9"}))
	assert.True(t, revoker.IsRevoked("s9"))

	// Logging out an anonymous visitor is a no-op.
	require.NoError(t, svc.Logout(nil))
}
