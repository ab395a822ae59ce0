// Package token keeps the session token in memory and mirrors it to a
// durable store under a fixed key, so it survives restarts. The token is the
// only client state that is persisted; profiles are always refetched.
package token

import "sync"

// StorageKey is the fixed namespace for the persisted token.
const StorageKey = "auth-storage-drukwater"

// Store is the durable key/value backing for the token.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Holder owns the current token. It implements the API client's token
// provider contract.
type Holder struct {
	mu    sync.RWMutex
	value string
	store Store
}

// NewHolder restores any persisted token from the store. A read failure is
// treated as "no token"; the caller just logs in again.
func NewHolder(store Store) *Holder {
	h := &Holder{store: store}
	if store != nil {
		if v, err := store.Get(StorageKey); err == nil {
			h.value = v
		}
	}
	return h
}

// Token returns the current token, or "" when anonymous.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// Set stores the token in memory and persists it.
func (h *Holder) Set(value string) error {
	h.mu.Lock()
	h.value = value
	h.mu.Unlock()
	if h.store == nil {
		return nil
	}
	return h.store.Set(StorageKey, value)
}

// Clear drops the token from memory and the durable store.
func (h *Holder) Clear() error {
	h.mu.Lock()
	h.value = ""
	h.mu.Unlock()
	if h.store == nil {
		return nil
	}
	return h.store.Delete(StorageKey)
}
