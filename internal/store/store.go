// Package store implements the validated entity store over the Tools
// and Users collections and the Settings record. Every operation takes
// the acting role explicitly and consults the authorization model
// before touching a collection; every mutation persists a new snapshot
// to the key-value layer before it becomes visible in memory.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bright-coral-crab/tooldeck/internal/metrics"
	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
)

// Store owns the collections for the lifetime of the process. The
// mutex makes each operation atomic with respect to the others, so a
// read-modify-persist cycle always completes before the next begins.
type Store struct {
	mu sync.Mutex
	kv storage.KV

	tools    []models.Tool
	users    []models.User
	settings models.Settings
	loaded   bool
}

// New creates a Store over the given key-value layer. Call Load before
// using it.
func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Load hydrates the collections from the durable store. Absent keys are
// seeded with the default data and the seed is persisted immediately,
// so subsequent loads read the stored copy.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tools, seeded, err := loadCollection(ctx, s.kv, storage.KeyTools, seedTools)
	if err != nil {
		return err
	}
	s.tools = tools
	if seeded {
		if err := s.persistTools(ctx, s.tools); err != nil {
			return err
		}
	}

	users, seeded, err := loadCollection(ctx, s.kv, storage.KeyUsers, seedUsers)
	if err != nil {
		return err
	}
	s.users = users
	if seeded {
		if err := s.persistUsers(ctx, s.users); err != nil {
			return err
		}
	}

	blob, ok, err := s.kv.Get(ctx, storage.KeySettings)
	if err != nil {
		return &PersistenceError{Key: storage.KeySettings, Err: err}
	}
	if !ok {
		s.settings = defaultSettings()
		if err := s.persistSettings(ctx, s.settings); err != nil {
			return err
		}
	} else if err := json.Unmarshal(blob, &s.settings); err != nil {
		return &PersistenceError{Key: storage.KeySettings, Err: fmt.Errorf("decode snapshot: %w", err)}
	}

	metrics.StoreCollectionSize.WithLabelValues("tools").Set(float64(len(s.tools)))
	metrics.StoreCollectionSize.WithLabelValues("users").Set(float64(len(s.users)))

	s.loaded = true
	return nil
}

// Loaded reports whether Load completed. Used by readiness probes.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// loadCollection reads and decodes one collection snapshot, falling
// back to the seed when the key is absent.
func loadCollection[T any](ctx context.Context, kv storage.KV, key string, seed func() []T) ([]T, bool, error) {
	blob, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, false, &PersistenceError{Key: key, Err: err}
	}
	if !ok {
		return seed(), true, nil
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, false, &PersistenceError{Key: key, Err: fmt.Errorf("decode snapshot: %w", err)}
	}
	return items, false, nil
}

// persistSnapshot writes one collection snapshot. On failure the caller
// must leave its in-memory state untouched.
func (s *Store) persistSnapshot(ctx context.Context, key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Key: key, Err: fmt.Errorf("encode snapshot: %w", err)}
	}

	start := time.Now()
	if err := s.kv.Set(ctx, key, blob); err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	metrics.StorePersistDuration.WithLabelValues(key).Observe(time.Since(start).Seconds())
	return nil
}

func (s *Store) persistTools(ctx context.Context, tools []models.Tool) error {
	if err := s.persistSnapshot(ctx, storage.KeyTools, tools); err != nil {
		return err
	}
	metrics.StoreCollectionSize.WithLabelValues("tools").Set(float64(len(tools)))
	return nil
}

func (s *Store) persistUsers(ctx context.Context, users []models.User) error {
	if err := s.persistSnapshot(ctx, storage.KeyUsers, users); err != nil {
		return err
	}
	metrics.StoreCollectionSize.WithLabelValues("users").Set(float64(len(users)))
	return nil
}

func (s *Store) persistSettings(ctx context.Context, settings models.Settings) error {
	return s.persistSnapshot(ctx, storage.KeySettings, settings)
}

// recordOp tracks the outcome of a store operation.
func recordOp(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case isPermission(err):
		result = "denied"
	case isValidation(err):
		result = "invalid"
	case isNotFound(err):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.StoreOpsTotal.WithLabelValues(op, result).Inc()
}

func isPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func isNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
