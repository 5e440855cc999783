package models

import (
	"time"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// InviteState is the explicit membership state. Absence of a membership row
// already encodes "never invited", so only the two live states exist here --
// no nullable tri-state boolean.
type InviteState string

const (
	// InviteStatePending marks an invitation that has not been responded to.
	// Pending members count as members for read access.
	InviteStatePending InviteState = "pending"
	// InviteStateAccepted marks a confirmed member.
	InviteStateAccepted InviteState = "accepted"
)

// Membership joins exactly one principal to exactly one kitchen.
//
// Invariants:
//   - at most one membership per (kitchen, principal) pair, enforced at the
//     storage layer so concurrent duplicate invites fail atomically
//   - Owner implies State=accepted; owners are created only at kitchen
//     creation, never via invite
type Membership struct {
	ID          id.MembershipID `json:"id"`
	KitchenID   id.KitchenID    `json:"kitchen_id"`
	PrincipalID id.PrincipalID  `json:"principal_id"`
	Owner       bool            `json:"owner"`
	State       InviteState     `json:"state"`
	JoinedAt    time.Time       `json:"joined_at"`
}

// NewOwnerMembership creates the founding membership of a kitchen.
func NewOwnerMembership(membershipID id.MembershipID, kitchenID id.KitchenID, principalID id.PrincipalID, now time.Time) *Membership {
	return &Membership{
		ID:          membershipID,
		KitchenID:   kitchenID,
		PrincipalID: principalID,
		Owner:       true,
		State:       InviteStateAccepted,
		JoinedAt:    now,
	}
}

// NewInvitation creates a pending, non-owner membership.
func NewInvitation(membershipID id.MembershipID, kitchenID id.KitchenID, principalID id.PrincipalID, now time.Time) *Membership {
	return &Membership{
		ID:          membershipID,
		KitchenID:   kitchenID,
		PrincipalID: principalID,
		Owner:       false,
		State:       InviteStatePending,
		JoinedAt:    now,
	}
}

func (m *Membership) IsPending() bool  { return m.State == InviteStatePending }
func (m *Membership) IsAccepted() bool { return m.State == InviteStateAccepted }

// CanAccept checks the pending precondition. Accept is not idempotent: an
// already-accepted membership cannot be accepted again.
func (m *Membership) CanAccept() error {
	if m.State != InviteStatePending {
		return dErrors.New(dErrors.CodeInvariantViolation, "membership is not pending")
	}
	return nil
}

// ApplyAccept transitions the membership to accepted. Call CanAccept first.
func (m *Membership) ApplyAccept(now time.Time) {
	m.State = InviteStateAccepted
	m.JoinedAt = now
}
