package repositories

import (
	"context"
	"errors"
	"time"

	"crewcall-shop/config"
	"crewcall-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Create(client *models.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, company, address, password_hash, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
	`
	now := time.Now()
	client.ID = uuid.NewString()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := config.DB.Exec(
		context.Background(),
		query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.Company,
		client.Address,
		client.PasswordHash,
		client.CreatedAt,
		client.UpdatedAt,
	)

	return err
}

func (r *ClientRepository) FindByID(id string) (*models.Client, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, ''),
		       COALESCE(address, ''), COALESCE(password_hash, ''), created_at, updated_at
		FROM clients WHERE id = $1
	`
	return r.scanOne(query, id)
}

func (r *ClientRepository) FindByEmail(email string) (*models.Client, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, ''),
		       COALESCE(address, ''), COALESCE(password_hash, ''), created_at, updated_at
		FROM clients WHERE email = $1
	`
	return r.scanOne(query, email)
}

func (r *ClientRepository) scanOne(query string, arg interface{}) (*models.Client, error) {
	client := &models.Client{}
	err := config.DB.QueryRow(context.Background(), query, arg).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Company,
		&client.Address,
		&client.PasswordHash,
		&client.CreatedAt,
		&client.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}

	return client, nil
}

// FindAll returns every client ordered by name, as the admin panel
// lists them.
func (r *ClientRepository) FindAll() ([]models.Client, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, ''),
		       COALESCE(address, ''), COALESCE(password_hash, ''), created_at, updated_at
		FROM clients ORDER BY name
	`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var client models.Client
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Company,
			&client.Address,
			&client.PasswordHash,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) Update(client *models.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = NULLIF($2, ''), phone = $3, company = $4, address = $5, updated_at = $6
		WHERE id = $7
	`

	client.UpdatedAt = time.Now()
	result, err := config.DB.Exec(
		context.Background(),
		query,
		client.Name,
		client.Email,
		client.Phone,
		client.Company,
		client.Address,
		client.UpdatedAt,
		client.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) Delete(id string) error {
	result, err := config.DB.Exec(context.Background(), "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}
