package service

import (
	"github.com/google/uuid"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

func (s *ServiceSuite) TestCreateKitchen() {
	s.Run("creates kitchen with founding owner membership", func() {
		kitchen, err := s.service.CreateKitchen(s.ctx(), s.owner.ID, "Weeknight Dinners", "quick meals")
		s.Require().NoError(err)
		s.Equal("Weeknight Dinners", kitchen.Name)
		s.Equal(s.owner.ID, kitchen.CreatedBy)
		s.Equal(s.now, kitchen.CreatedAt)
		s.NotEqual(uuid.Nil, kitchen.ShareToken)

		membership, err := s.memberships.FindByKitchenAndPrincipal(s.ctx(), kitchen.ID, s.owner.ID)
		s.Require().NoError(err)
		s.True(membership.Owner)
		s.True(membership.IsAccepted())
	})

	s.Run("blank name fails validation", func() {
		_, err := s.service.CreateKitchen(s.ctx(), s.owner.ID, "   ", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("zero actor is rejected", func() {
		_, err := s.service.CreateKitchen(s.ctx(), id.PrincipalID{}, "Brunch Club", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestGetKitchen() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")

	s.Run("member reads kitchen", func() {
		got, err := s.service.GetKitchen(s.ctx(), s.owner.ID, kitchen.ID)
		s.Require().NoError(err)
		s.Equal(kitchen.ID, got.ID)
	})

	s.Run("non-member gets insufficient rights", func() {
		_, err := s.service.GetKitchen(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("pending invitee can already read", func() {
		_, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
		s.Require().NoError(err)
		got, err := s.service.GetKitchen(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().NoError(err)
		s.Equal(kitchen.ID, got.ID)
	})

	s.Run("nonexistent kitchen is not found, even before permission", func() {
		_, err := s.service.GetKitchen(s.ctx(), s.guest.ID, id.KitchenID(uuid.New()))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestListKitchens() {
	first := s.mustCreateKitchen("Weeknight Dinners")
	second := s.mustCreateKitchen("Holiday Baking")
	s.mustBeMember(first)

	s.Run("owner sees both kitchens", func() {
		kitchens, err := s.service.ListKitchens(s.ctx(), s.owner.ID)
		s.Require().NoError(err)
		s.Len(kitchens, 2)
	})

	s.Run("guest sees only the joined kitchen", func() {
		kitchens, err := s.service.ListKitchens(s.ctx(), s.guest.ID)
		s.Require().NoError(err)
		s.Require().Len(kitchens, 1)
		s.Equal(first.ID, kitchens[0].ID)
	})

	_ = second
}

func (s *ServiceSuite) TestUpdateKitchen() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")
	s.mustBeMember(kitchen)

	s.Run("patch updates only provided fields", func() {
		name := "Weekend Feasts"
		updated, err := s.service.UpdateKitchen(s.ctx(), s.guest.ID, kitchen.ID, KitchenPatch{Name: &name})
		s.Require().NoError(err)
		s.Equal("Weekend Feasts", updated.Name)
		s.Equal(kitchen.Description, updated.Description)
	})

	s.Run("patching name to blank fails validation", func() {
		blank := ""
		_, err := s.service.UpdateKitchen(s.ctx(), s.owner.ID, kitchen.ID, KitchenPatch{Name: &blank})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("empty patch is a no-op", func() {
		updated, err := s.service.UpdateKitchen(s.ctx(), s.owner.ID, kitchen.ID, KitchenPatch{})
		s.Require().NoError(err)
		s.Equal("Weekend Feasts", updated.Name)
	})
}

func (s *ServiceSuite) TestDeleteKitchen() {
	s.Run("non-owner member cannot delete", func() {
		kitchen := s.mustCreateKitchen("Weeknight Dinners")
		s.mustBeMember(kitchen)
		err := s.service.DeleteKitchen(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("owner deletes kitchen", func() {
		kitchen := s.mustCreateKitchen("Holiday Baking")
		s.Require().NoError(s.service.DeleteKitchen(s.ctx(), s.owner.ID, kitchen.ID))
		_, err := s.service.GetKitchen(s.ctx(), s.owner.ID, kitchen.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("memberships do not survive the kitchen", func() {
		kitchen := s.mustCreateKitchen("Supper Club")
		s.mustBeMember(kitchen)
		s.Require().NoError(s.service.DeleteKitchen(s.ctx(), s.owner.ID, kitchen.ID))

		for _, principal := range []models.Principal{s.owner, s.guest} {
			has, err := s.service.Permissions().HasMembership(s.ctx(), principal.ID, kitchen.ID)
			s.Require().NoError(err)
			s.False(has)
		}

		kitchens, err := s.service.ListKitchens(s.ctx(), s.guest.ID)
		s.Require().NoError(err)
		s.Empty(kitchens)
	})
}

func (s *ServiceSuite) TestResolveByShareToken() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")

	s.Run("token resolves without membership", func() {
		got, err := s.service.ResolveByShareToken(s.ctx(), kitchen.ShareToken)
		s.Require().NoError(err)
		s.Equal(kitchen.ID, got.ID)
	})

	s.Run("unknown token is not found", func() {
		_, err := s.service.ResolveByShareToken(s.ctx(), uuid.New())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("nil token is invalid input", func() {
		_, err := s.service.ResolveByShareToken(s.ctx(), uuid.Nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestListMembers() {
	kitchen := s.mustCreateKitchen("Weeknight Dinners")
	s.mustBeMember(kitchen)

	s.Run("member lists all memberships", func() {
		members, err := s.service.ListMembers(s.ctx(), s.guest.ID, kitchen.ID)
		s.Require().NoError(err)
		s.Len(members, 2)
	})

	s.Run("outsider cannot list members", func() {
		outsider := models.Principal{ID: id.PrincipalID(uuid.New()), Email: "carol@example.com"}
		s.directory.Seed(outsider)
		_, err := s.service.ListMembers(s.ctx(), outsider.ID, kitchen.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
