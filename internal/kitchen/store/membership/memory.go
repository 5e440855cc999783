// Package membership provides membership persistence. Both implementations
// enforce the (kitchen, principal) uniqueness invariant atomically: the store
// is the authoritative duplicate signal, never a caller-side pre-check.
package membership

import (
	"context"
	"sync"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type pairKey struct {
	kitchen   id.KitchenID
	principal id.PrincipalID
}

// InMemoryStore keeps memberships in maps guarded by one mutex, so the
// uniqueness check and insert happen under a single critical section.
type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[id.MembershipID]models.Membership
	byPair map[pairKey]id.MembershipID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[id.MembershipID]models.Membership),
		byPair: make(map[pairKey]id.MembershipID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, membership *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{membership.KitchenID, membership.PrincipalID}
	if _, ok := s.byPair[key]; ok {
		return sentinel.ErrConflict
	}
	if _, ok := s.byID[membership.ID]; ok {
		return sentinel.ErrConflict
	}
	s.byID[membership.ID] = *membership
	s.byPair[key] = membership.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, membershipID id.MembershipID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.byID[membershipID]; ok {
		return &m, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByKitchenAndPrincipal(_ context.Context, kitchenID id.KitchenID, principalID id.PrincipalID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if membershipID, ok := s.byPair[pairKey{kitchenID, principalID}]; ok {
		m := s.byID[membershipID]
		return &m, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Membership
	for _, m := range s.byID {
		if m.KitchenID == kitchenID {
			membership := m
			result = append(result, &membership)
		}
	}
	return result, nil
}

func (s *InMemoryStore) ListByPrincipal(_ context.Context, principalID id.PrincipalID) ([]*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Membership
	for _, m := range s.byID {
		if m.PrincipalID == principalID {
			membership := m
			result = append(result, &membership)
		}
	}
	return result, nil
}

func (s *InMemoryStore) Update(_ context.Context, membership *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[membership.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.byID[membership.ID] = *membership
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, membershipID id.MembershipID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[membershipID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byID, membershipID)
	delete(s.byPair, pairKey{m.KitchenID, m.PrincipalID})
	return nil
}

// DeleteByKitchen removes all memberships of a kitchen, mirroring the
// cascade the Postgres schema performs on kitchen deletion.
func (s *InMemoryStore) DeleteByKitchen(_ context.Context, kitchenID id.KitchenID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for membershipID, m := range s.byID {
		if m.KitchenID == kitchenID {
			delete(s.byID, membershipID)
			delete(s.byPair, pairKey{m.KitchenID, m.PrincipalID})
		}
	}
	return nil
}
