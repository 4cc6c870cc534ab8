// Package cache provides the TTL key/value stores injected into the rate
// provider and shipping resolver.
package cache

import (
	"context"
	"strings"
	"time"
)

// Store caches JSON-encodable values under string keys.
type Store interface {
	// Get decodes the cached value into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// GenerateKey joins key parts as entity:kind:value.
func GenerateKey(parts ...string) string {
	return strings.Join(parts, ":")
}
