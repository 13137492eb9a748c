// Package kv provides the key-value store behind sessions, the system
// config blob and QR metadata. Entries carry an optional TTL enforced by
// the store itself.
package kv

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get returns the value for key, or ErrNotFound if the key does not
	// exist or its TTL has elapsed.
	Get(ctx context.Context, key string) (string, error)
	// Set writes key=value. A ttl of zero means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
