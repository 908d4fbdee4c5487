package cache

import (
	"sync"
	"time"
)

// mirrorEntry holds a cached wishlist id set with its expiry.
type mirrorEntry struct {
	ids       []string
	expiresAt time.Time
}

// WishlistMirror is a thread-safe, TTL-bounded mirror of wishlisted product
// ids per user. It is derived state only: every successful wishlist
// mutation must invalidate the owning user's entry, and the upstream API
// remains the source of truth. Implements domain.WishlistMirror.
type WishlistMirror struct {
	mu      sync.RWMutex
	entries map[string]*mirrorEntry
	ttl     time.Duration
}

// NewWishlistMirror creates a new mirror with the specified TTL.
func NewWishlistMirror(ttl time.Duration) *WishlistMirror {
	m := &WishlistMirror{
		entries: make(map[string]*mirrorEntry),
		ttl:     ttl,
	}
	go m.cleanupLoop()
	return m
}

// Get retrieves the mirrored id set for a user, if still fresh.
func (m *WishlistMirror) Get(userID string) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, found := m.entries[userID]
	if !found || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	ids := make([]string, len(entry.ids))
	copy(ids, entry.ids)
	return ids, true
}

// Set replaces the mirrored id set for a user.
func (m *WishlistMirror) Set(userID string, ids []string) {
	copied := make([]string, len(ids))
	copy(copied, ids)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[userID] = &mirrorEntry{
		ids:       copied,
		expiresAt: time.Now().Add(m.ttl),
	}
}

// Invalidate drops the mirrored entry for a user.
func (m *WishlistMirror) Invalidate(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
}

// cleanup removes expired entries.
func (m *WishlistMirror) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
}

// cleanupLoop runs periodic cleanup of expired entries.
func (m *WishlistMirror) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanup()
	}
}
