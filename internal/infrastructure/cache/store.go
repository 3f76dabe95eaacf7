package cache

import (
	"context"
	"time"
)

// Store is a best-effort key-value cache used to keep loaded index snapshots
// warm between searches. Implementations must never make cache trouble fatal
// to the caller.
type Store interface {
	// Get retrieves a value by key; false when absent or expired.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores a key-value pair with expiration.
	Set(ctx context.Context, key, value string, ttl time.Duration)
	// Delete removes a key.
	Delete(ctx context.Context, key string)
}

// IndexKey is the cache key for a project's loaded index snapshot.
func IndexKey(projectName string) string {
	return "index:" + projectName
}
