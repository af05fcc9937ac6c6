package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// AuthKey is the key the login response is persisted under.
const AuthKey = "auth"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("record not found")

// KeyValueStore persists opaque values by key.
type KeyValueStore interface {
	GetValue(ctx context.Context, key string) ([]byte, error)
	PutValue(ctx context.Context, key string, value []byte) error
	DeleteValue(ctx context.Context, key string) error
}

// Store is the composite store the console opens at startup.
type Store interface {
	KeyValueStore
	Close() error
}

// AuthRecord is the subset of the persisted login response the console reads.
type AuthRecord struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// LoadAuthRecord reads the persisted auth record. The bool is false when no
// record is stored or the stored blob is not a JSON object.
func LoadAuthRecord(ctx context.Context, store KeyValueStore) (AuthRecord, bool, error) {
	if store == nil {
		return AuthRecord{}, false, nil
	}
	raw, err := store.GetValue(ctx, AuthKey)
	if errors.Is(err, ErrNotFound) {
		return AuthRecord{}, false, nil
	}
	if err != nil {
		return AuthRecord{}, false, fmt.Errorf("load auth record: %w", err)
	}
	var record AuthRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return AuthRecord{}, false, nil
	}
	return record, true, nil
}

// TokenSource yields the bearer token from the persisted auth record on every
// call.
type TokenSource struct {
	Store KeyValueStore
}

// Token returns the persisted access token, or "" when none is stored.
func (s TokenSource) Token(ctx context.Context) (string, error) {
	record, ok, err := LoadAuthRecord(ctx, s.Store)
	if err != nil || !ok {
		return "", err
	}
	return strings.TrimSpace(record.AccessToken), nil
}

// MemoryStore is an in-process KeyValueStore.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// GetValue implements KeyValueStore.
func (m *MemoryStore) GetValue(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// PutValue implements KeyValueStore.
func (m *MemoryStore) PutValue(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("key is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// DeleteValue implements KeyValueStore. Deleting a missing key is not an error.
func (m *MemoryStore) DeleteValue(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
