// Package storage provides the durable key-value layer backing the
// entity store. Each collection is persisted as one opaque serialized
// blob under a fixed key; writes are last-write-wins.
package storage

import "context"

// Collection keys. The role key is written by the login surface only;
// the core never reads it for authorization decisions.
const (
	KeyTools    = "adminTools"
	KeyUsers    = "adminUsers"
	KeySettings = "siteSettings"
	KeyRole     = "adminUserRole"
)

// KV is the durable key-value store interface.
type KV interface {
	// Get returns the blob stored under key. The second return value is
	// false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores blob under key, replacing any previous value.
	Set(ctx context.Context, key string, blob []byte) error
	// Close releases the underlying resources.
	Close() error
}
