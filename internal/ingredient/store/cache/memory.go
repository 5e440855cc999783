// Package cache caches search results keyed by (scope, normalized query).
// Invalidation is whole-cache: any ingredient mutation can change any tier's
// outcome, so per-key eviction would be guesswork.
package cache

import (
	"context"
	"sync"
	"time"

	"larder/internal/ingredient/models"
)

type memoryEntry struct {
	ingredients []*models.Ingredient
	expiresAt   time.Time
}

// Memory is a TTL cache for single-process deployments.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{entries: make(map[string]memoryEntry), ttl: ttl}
}

func (m *Memory) Get(_ context.Context, key string) ([]*models.Ingredient, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.ingredients, true
}

func (m *Memory) Set(_ context.Context, key string, ingredients []*models.Ingredient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{ingredients: ingredients, expiresAt: time.Now().Add(m.ttl)}
}

func (m *Memory) Invalidate(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
}
