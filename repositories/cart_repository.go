package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"crewcall-shop/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository stores one cart per session. A missing cart is not an
// error: Get returns an empty cart so every cart operation stays total.
type CartRepository interface {
	Get(sessionID string) (*models.Cart, error)
	Save(cart *models.Cart) error
	Delete(sessionID string) error
}

// MemoryCartRepository keeps carts in process memory. This is the
// default store; carts live for as long as the process does.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: map[string]models.Cart{}}
}

func (r *MemoryCartRepository) Get(sessionID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return &models.Cart{SessionID: sessionID, Items: []models.CartLineItem{}}, nil
	}

	copied := cart
	copied.Items = append([]models.CartLineItem{}, cart.Items...)
	return &copied, nil
}

func (r *MemoryCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cart
	stored.Items = append([]models.CartLineItem{}, cart.Items...)
	stored.UpdatedAt = time.Now()
	r.carts[cart.SessionID] = stored
	return nil
}

func (r *MemoryCartRepository) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

// RedisCartRepository stores carts as JSON so they survive process
// restarts. Entries expire with the session token lifetime.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *RedisCartRepository) Get(sessionID string) (*models.Cart, error) {
	payload, err := r.client.Get(context.Background(), cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return &models.Cart{SessionID: sessionID, Items: []models.CartLineItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{}
	if err := json.Unmarshal(payload, cart); err != nil {
		// Corrupted entry: start the session over with an empty cart.
		return &models.Cart{SessionID: sessionID, Items: []models.CartLineItem{}}, nil
	}

	if cart.Items == nil {
		cart.Items = []models.CartLineItem{}
	}
	return cart, nil
}

func (r *RedisCartRepository) Save(cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), cartKey(cart.SessionID), payload, r.ttl).Err()
}

func (r *RedisCartRepository) Delete(sessionID string) error {
	return r.client.Del(context.Background(), cartKey(sessionID)).Err()
}
