package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionRevoker denylists logged-out session ids until their
// token would have expired anyway.
type RedisSessionRevoker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRevoker(client *redis.Client, ttl time.Duration) *RedisSessionRevoker {
	return &RedisSessionRevoker{client: client, ttl: ttl}
}

func revokedKey(sessionID string) string {
	return "revoked:" + sessionID
}

func (r *RedisSessionRevoker) Revoke(sessionID string) error {
	return r.client.Set(context.Background(), revokedKey(sessionID), "1", r.ttl).Err()
}

func (r *RedisSessionRevoker) IsRevoked(sessionID string) bool {
	n, err := r.client.Exists(context.Background(), revokedKey(sessionID)).Result()
	return err == nil && n > 0
}

// NoopSessionRevoker is used when Redis is not configured: logout then
// simply means the storefront drops its token.
type NoopSessionRevoker struct{}

func (NoopSessionRevoker) Revoke(sessionID string) error { return nil }

func (NoopSessionRevoker) IsRevoked(sessionID string) bool { return false }
