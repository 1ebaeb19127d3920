package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is a minimal TTL cache used for reference
// registry lists. A cache miss is reported as (found=false), not an error.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
