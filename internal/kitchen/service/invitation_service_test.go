package service

import (
	"github.com/google/uuid"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

func (s *ServiceSuite) TestInvite() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")

	s.Run("member invites by email", func() {
		invitation, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().NoError(err)
		s.Equal(s.guest.ID, invitation.PrincipalID)
		s.True(invitation.IsPending())
		s.False(invitation.Owner)
	})

	s.Run("re-inviting a pending principal conflicts", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("inviting an accepted member conflicts too", func() {
		s.Require().NoError(s.service.Accept(s.ctx(), s.guest.ID, kitchen.ID))
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("unknown email is not found", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, "nobody@example.com")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("no principal with that email", dErrors.MessageOf(err))
	})

	s.Run("blank email is invalid before any lookup", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, "   ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("non-member cannot invite", func() {
		outsider := models.Principal{ID: id.PrincipalID(uuid.New()), Email: "carol@example.com"}
		s.directory.Seed(outsider)
		_, err := s.service.Invite(s.ctx(), outsider.ID, kitchen.ID, s.guest.Email)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("nonexistent kitchen is not found before permission", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, id.KitchenID(uuid.New()), s.guest.Email)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestAccept() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")

	s.Run("accept flips pending to accepted", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().NoError(err)
		s.Require().NoError(s.service.Accept(s.ctx(), s.guest.ID, kitchen.ID))

		membership, err := s.memberships.FindByKitchenAndPrincipal(s.ctx(), kitchen.ID, s.guest.ID)
		s.Require().NoError(err)
		s.True(membership.IsAccepted())
		s.Equal(s.now, membership.JoinedAt)
	})

	s.Run("accepting twice is not idempotent", func() {
		err := s.service.Accept(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("invite not found", dErrors.MessageOf(err))
	})

	s.Run("accepting without an invite is not found", func() {
		other := s.mustCreateKitchen("Holiday Baking")
		err := s.service.Accept(s.ctx(), s.guest.ID, other.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDeny() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")

	s.Run("deny removes the pending row so a fresh invite works", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().NoError(err)
		s.Require().NoError(s.service.Deny(s.ctx(), s.guest.ID, kitchen.ID))

		_, err = s.memberships.FindByKitchenAndPrincipal(s.ctx(), kitchen.ID, s.guest.ID)
		s.Require().Error(err)

		_, err = s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().NoError(err)
	})

	s.Run("denying an accepted membership is not found", func() {
		s.Require().NoError(s.service.Accept(s.ctx(), s.guest.ID, kitchen.ID))
		err := s.service.Deny(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestRemove() {
	s.Run("owner removes a member", func() {
		kitchen := s.mustCreateKitchen("Weeknight Dinners")
		membership := s.mustBeMember(kitchen)

		removed, err := s.service.Remove(s.ctx(), s.owner.ID, membership.ID)
		s.Require().NoError(err)
		s.Equal(s.guest.ID, removed.PrincipalID)

		_, err = s.service.GetKitchen(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("owner revokes a pending invite by removing it", func() {
		kitchen := s.mustCreateKitchen("Holiday Baking")
		invitation, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().NoError(err)

		_, err = s.service.Remove(s.ctx(), s.owner.ID, invitation.ID)
		s.Require().NoError(err)
	})

	s.Run("non-owner member cannot remove", func() {
		kitchen := s.mustCreateKitchen("Meal Prep")
		s.mustBeMember(kitchen)
		ownerMembership, err := s.memberships.FindByKitchenAndPrincipal(s.ctx(), kitchen.ID, s.owner.ID)
		s.Require().NoError(err)

		_, err = s.service.Remove(s.ctx(), s.guest.ID, ownerMembership.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("owner cannot remove their own membership", func() {
		kitchen := s.mustCreateKitchen("Soups")
		ownerMembership, err := s.memberships.FindByKitchenAndPrincipal(s.ctx(), kitchen.ID, s.owner.ID)
		s.Require().NoError(err)

		_, err = s.service.Remove(s.ctx(), s.owner.ID, ownerMembership.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("unknown membership is not found", func() {
		_, err := s.service.Remove(s.ctx(), s.owner.ID, id.MembershipID(uuid.New()))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestListInvites() {
	first := s.mustCreateKitchen("Weeknight Dinners")
	second := s.mustCreateKitchen("Holiday Baking")

	_, err := s.service.Invite(s.ctx(), s.owner.ID, first.ID, s.guest.Email)
	s.Require().NoError(err)
	_, err = s.service.Invite(s.ctx(), s.owner.ID, second.ID, s.guest.Email)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Accept(s.ctx(), s.guest.ID, first.ID))

	s.Run("only pending invitations are listed", func() {
		invites, err := s.service.ListInvites(s.ctx(), s.guest.ID)
		s.Require().NoError(err)
		s.Require().Len(invites, 1)
		s.Equal(second.ID, invites[0].KitchenID)
	})

	s.Run("owner has no pending invites", func() {
		invites, err := s.service.ListInvites(s.ctx(), s.owner.ID)
		s.Require().NoError(err)
		s.Empty(invites)
	})
}
