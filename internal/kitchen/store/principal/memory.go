// Package principal provides an in-memory principal directory for dev mode
// and tests. Production deployments plug in the external identity
// subsystem's directory instead.
package principal

import (
	"context"
	"strings"
	"sync"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type InMemoryDirectory struct {
	mu      sync.RWMutex
	byID    map[id.PrincipalID]models.Principal
	byEmail map[string]id.PrincipalID
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{
		byID:    make(map[id.PrincipalID]models.Principal),
		byEmail: make(map[string]id.PrincipalID),
	}
}

// Seed registers a principal. Emails are matched case-insensitively.
func (d *InMemoryDirectory) Seed(p models.Principal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byID[p.ID] = p
	d.byEmail[strings.ToLower(p.Email)] = p.ID
}

func (d *InMemoryDirectory) FindByEmail(_ context.Context, email string) (*models.Principal, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if principalID, ok := d.byEmail[strings.ToLower(email)]; ok {
		p := d.byID[principalID]
		return &p, nil
	}
	return nil, sentinel.ErrNotFound
}

func (d *InMemoryDirectory) FindByID(_ context.Context, principalID id.PrincipalID) (*models.Principal, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if p, ok := d.byID[principalID]; ok {
		return &p, nil
	}
	return nil, sentinel.ErrNotFound
}
