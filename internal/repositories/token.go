package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rideloop/ride-wallet/internal/logger"
)

// TokenCacheRepository tracks revoked session tokens in Redis. Entries
// expire together with the token itself, so the denylist never grows
// past the JWT lifetime.
type TokenCacheRepository struct {
	client *redis.Client
}

func NewTokenCacheRepository(client *redis.Client) *TokenCacheRepository {
	return &TokenCacheRepository{client: client}
}

func tokenKey(token string) string {
	return fmt.Sprintf("revoked_token:%s", token)
}

// Revoke marks a token as logged out until it would have expired anyway.
func (r *TokenCacheRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to deny.
		return nil
	}

	err := r.client.Set(ctx, tokenKey(token), "1", ttl).Err()

	logger.Log.Infow(
		"key", tokenKey(token),
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token has been logged out.
func (r *TokenCacheRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		logger.Log.Errorw("failed to check token revocation", "error", err)
		return false, err
	}
	return true, nil
}
