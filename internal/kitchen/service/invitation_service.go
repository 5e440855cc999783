package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	audit "larder/pkg/platform/audit"
	"larder/pkg/platform/sentinel"
	"larder/pkg/requestcontext"
)

// The invitation workflow moves a (kitchen, principal) pair through
// None -> Pending -> Accepted, or back to None on deny/removal. Checks run
// in a fixed order -- arguments, existence, permission, duplicate -- so error
// precedence is deterministic.

// Invite creates a pending membership for the principal behind inviteeEmail.
// Any member may invite. Re-inviting a principal who is already pending or
// accepted fails with a conflict: the storage-level uniqueness constraint is
// the authoritative duplicate signal, so two racing invites cannot both
// succeed.
func (s *Service) Invite(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, inviteeEmail string) (*models.Membership, error) {
	inviteeEmail = strings.TrimSpace(inviteeEmail)
	if inviteeEmail == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invitee email is required")
	}
	if _, err := s.findKitchen(ctx, kitchenID); err != nil {
		return nil, err
	}
	if err := s.evaluator.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}

	invitee, err := s.directory.FindByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no principal with that email")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve invitee")
	}

	invitation := models.NewInvitation(id.MembershipID(uuid.New()), kitchenID, invitee.ID, requestcontext.Now(ctx))
	if err := s.memberships.Create(ctx, invitation); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "principal is already a member or has a pending invite")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create invitation")
	}

	s.emitAudit(ctx, audit.EventMemberInvited, kitchenID, actor, invitee.ID, "")
	s.incrementInvitesSent()
	return invitation, nil
}

// Accept transitions the caller's pending invitation to accepted. Not
// idempotent: without a pending row -- including when already accepted --
// the invite does not exist as far as the caller is concerned.
func (s *Service) Accept(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) error {
	membership, err := s.findInvite(ctx, actor, kitchenID)
	if err != nil {
		return err
	}
	if err := membership.CanAccept(); err != nil {
		return errInviteNotFound()
	}
	membership.ApplyAccept(requestcontext.Now(ctx))
	if err := s.memberships.Update(ctx, membership); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to accept invitation")
	}
	s.emitAudit(ctx, audit.EventInviteAccepted, kitchenID, actor, id.PrincipalID{}, "")
	s.incrementInvitesAccepted()
	return nil
}

// Deny declines the caller's pending invitation, deleting the membership
// row. Same not-found semantics as Accept.
func (s *Service) Deny(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) error {
	membership, err := s.findInvite(ctx, actor, kitchenID)
	if err != nil {
		return err
	}
	if !membership.IsPending() {
		return errInviteNotFound()
	}
	if err := s.memberships.Delete(ctx, membership.ID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to deny invitation")
	}
	s.emitAudit(ctx, audit.EventInviteDenied, kitchenID, actor, id.PrincipalID{}, "")
	return nil
}

// Remove deletes a membership and returns its prior value. Only the owner of
// the target's kitchen may remove members, and owners may not remove
// themselves: every kitchen keeps at least one owner membership while it
// exists. Callers wanting out as owner must delete the kitchen instead.
func (s *Service) Remove(ctx context.Context, actor id.PrincipalID, membershipID id.MembershipID) (*models.Membership, error) {
	if membershipID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "membership id is required")
	}
	membership, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "membership not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
	}

	if err := s.evaluator.RequireOwner(ctx, actor, membership.KitchenID); err != nil {
		return nil, err
	}
	if membership.PrincipalID == actor {
		return nil, dErrors.New(dErrors.CodeConflict, "owner cannot remove their own membership; transfer ownership or delete the kitchen")
	}

	if err := s.memberships.Delete(ctx, membership.ID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove member")
	}
	s.emitAudit(ctx, audit.EventMemberRemoved, membership.KitchenID, actor, membership.PrincipalID, "")
	s.incrementMembersRemoved()
	return membership, nil
}

// ListInvites returns the caller's pending invitations across kitchens.
func (s *Service) ListInvites(ctx context.Context, actor id.PrincipalID) ([]*models.Membership, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	memberships, err := s.memberships.ListByPrincipal(ctx, actor)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list invitations")
	}
	pending := make([]*models.Membership, 0, len(memberships))
	for _, m := range memberships {
		if m.IsPending() {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

func (s *Service) findInvite(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) (*models.Membership, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	membership, err := s.memberships.FindByKitchenAndPrincipal(ctx, kitchenID, actor)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errInviteNotFound()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load invitation")
	}
	return membership, nil
}

func errInviteNotFound() error {
	return dErrors.New(dErrors.CodeNotFound, "invite not found")
}
