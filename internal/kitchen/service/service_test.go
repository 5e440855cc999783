package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"larder/internal/kitchen/models"
	kitchenstore "larder/internal/kitchen/store/kitchen"
	membershipstore "larder/internal/kitchen/store/membership"
	principalstore "larder/internal/kitchen/store/principal"
	id "larder/pkg/domain"
	"larder/pkg/requestcontext"
)

// ServiceSuite exercises the service against the in-memory stores, the same
// implementations dev mode runs on, so conflict and not-found semantics come
// from real store behavior rather than mock scripting.
type ServiceSuite struct {
	suite.Suite

	kitchens    *kitchenstore.InMemoryStore
	memberships *membershipstore.InMemoryStore
	directory   *principalstore.InMemoryDirectory
	service     *Service

	now   time.Time
	owner models.Principal
	guest models.Principal
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.kitchens = kitchenstore.NewInMemoryStore()
	s.memberships = membershipstore.NewInMemoryStore()
	s.directory = principalstore.NewInMemoryDirectory()
	s.service = New(s.kitchens, s.memberships, s.directory)

	s.now = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	s.owner = models.Principal{ID: id.PrincipalID(uuid.New()), DisplayName: "Alice", Email: "alice@example.com"}
	s.guest = models.Principal{ID: id.PrincipalID(uuid.New()), DisplayName: "Bob", Email: "bob@example.com"}
	s.directory.Seed(s.owner)
	s.directory.Seed(s.guest)
}

func (s *ServiceSuite) ctx() context.Context {
	return requestcontext.WithTime(context.Background(), s.now)
}

// mustCreateKitchen creates a kitchen owned by s.owner for tests that need one.
func (s *ServiceSuite) mustCreateKitchen(name string) *models.Kitchen {
	kitchen, err := s.service.CreateKitchen(s.ctx(), s.owner.ID, name, "")
	s.Require().NoError(err)
	return kitchen
}

// mustBeMember invites and accepts s.guest into the kitchen.
func (s *ServiceSuite) mustBeMember(kitchen *models.Kitchen) *models.Membership {
	invitation, err := s.service.Invite(s.ctx(), s.owner.ID, kitchen.ID, s.guest.Email)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Accept(s.ctx(), s.guest.ID, kitchen.ID))
	membership, err := s.memberships.FindByID(s.ctx(), invitation.ID)
	s.Require().NoError(err)
	return membership
}
