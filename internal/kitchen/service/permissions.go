package service

import (
	"context"
	"errors"
	"time"

	kitchenmetrics "larder/internal/kitchen/metrics"
	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/sentinel"
)

// Evaluator answers membership and ownership questions for a principal
// against a kitchen. Authorization here is capability-by-membership, not a
// general ACL: two rules ("you're in this kitchen" and "you created this")
// compose to cover every operation.
//
// Pure queries; the evaluator never mutates state. Require* helpers return
// CodeUnauthorized with no more detail than "insufficient rights" -- a
// denied principal learns that a resource exists, never its content.
type Evaluator struct {
	memberships MembershipStore
	metrics     *kitchenmetrics.Metrics
}

func NewEvaluator(memberships MembershipStore) *Evaluator {
	return &Evaluator{memberships: memberships}
}

// HasMembership reports whether a membership row exists for the pair,
// regardless of invite state. Gates read access to a kitchen and everything
// nested in it.
func (e *Evaluator) HasMembership(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) (bool, error) {
	defer e.observe(time.Now())
	_, err := e.memberships.FindByKitchenAndPrincipal(ctx, kitchenID, principalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check membership")
	}
	return true, nil
}

// IsOwner reports whether the principal holds an owner membership. Gates
// destructive and administrative actions: deleting a kitchen, removing
// another member.
func (e *Evaluator) IsOwner(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) (bool, error) {
	defer e.observe(time.Now())
	m, err := e.memberships.FindByKitchenAndPrincipal(ctx, kitchenID, principalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check ownership")
	}
	return m.Owner, nil
}

// AddedResource reports whether the principal created the resource. Used for
// resource classes where authorization is "only the creator may edit" rather
// than "any kitchen member may edit" (recipes and their nested rows,
// ingredients).
func (e *Evaluator) AddedResource(principalID, creatorID id.PrincipalID) bool {
	return !principalID.IsZero() && principalID == creatorID
}

// RequireMembership fails with a permission error unless the principal is a
// member of the kitchen.
func (e *Evaluator) RequireMembership(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) error {
	ok, err := e.HasMembership(ctx, principalID, kitchenID)
	if err != nil {
		return err
	}
	if !ok {
		return errInsufficientRights()
	}
	return nil
}

// RequireOwner fails with a permission error unless the principal owns the
// kitchen.
func (e *Evaluator) RequireOwner(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) error {
	ok, err := e.IsOwner(ctx, principalID, kitchenID)
	if err != nil {
		return err
	}
	if !ok {
		return errInsufficientRights()
	}
	return nil
}

// RequireCreator fails with a permission error unless the principal created
// the resource.
func (e *Evaluator) RequireCreator(principalID, creatorID id.PrincipalID) error {
	if !e.AddedResource(principalID, creatorID) {
		return errInsufficientRights()
	}
	return nil
}

// MembershipOf fetches the membership row for the pair, translating absence
// into a domain not-found.
func (e *Evaluator) MembershipOf(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) (*models.Membership, error) {
	m, err := e.memberships.FindByKitchenAndPrincipal(ctx, kitchenID, principalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "membership not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
	}
	return m, nil
}

func (e *Evaluator) observe(start time.Time) {
	if e.metrics != nil {
		e.metrics.ObservePermissionCheck(start)
	}
}

func errInsufficientRights() error {
	return dErrors.New(dErrors.CodeUnauthorized, "insufficient rights")
}
