package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ingredientmodels "larder/internal/ingredient/models"
	ingredientstore "larder/internal/ingredient/store/ingredient"
	kitchenmodels "larder/internal/kitchen/models"
	kitchenservice "larder/internal/kitchen/service"
	membershipstore "larder/internal/kitchen/store/membership"
	"larder/internal/shopping/models"
	liststore "larder/internal/shopping/store/list"
	itemstore "larder/internal/shopping/store/listitem"
	id "larder/pkg/domain"
)

type fixture struct {
	service     *Service
	lists       *liststore.InMemoryStore
	items       *itemstore.InMemoryStore
	ingredients *ingredientstore.InMemoryStore

	kitchenID id.KitchenID
	owner     id.PrincipalID
	member    id.PrincipalID
	outsider  id.PrincipalID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	memberships := membershipstore.NewInMemoryStore()
	f := &fixture{
		lists:       liststore.NewInMemoryStore(),
		items:       itemstore.NewInMemoryStore(),
		ingredients: ingredientstore.NewInMemoryStore(),
		kitchenID:   id.KitchenID(uuid.New()),
		owner:       id.PrincipalID(uuid.New()),
		member:      id.PrincipalID(uuid.New()),
		outsider:    id.PrincipalID(uuid.New()),
	}

	now := time.Now()
	ownerRow := kitchenmodels.NewOwnerMembership(id.MembershipID(uuid.New()), f.kitchenID, f.owner, now)
	require.NoError(t, memberships.Create(context.Background(), ownerRow))
	memberRow := kitchenmodels.NewInvitation(id.MembershipID(uuid.New()), f.kitchenID, f.member, now)
	memberRow.ApplyAccept(now)
	require.NoError(t, memberships.Create(context.Background(), memberRow))

	f.service = New(f.lists, f.items, f.ingredients, kitchenservice.NewEvaluator(memberships))
	return f
}

func (f *fixture) mustCreateList(t *testing.T, name string) *models.ShoppingList {
	t.Helper()
	list, err := f.service.CreateList(context.Background(), f.owner, f.kitchenID, name)
	require.NoError(t, err)
	return list
}

func (f *fixture) seedIngredient(t *testing.T, name string, public bool, kitchenID *id.KitchenID) *ingredientmodels.Ingredient {
	t.Helper()
	creator := f.owner
	ingredient := &ingredientmodels.Ingredient{
		ID:        id.IngredientID(uuid.New()),
		Name:      name,
		Public:    public,
		KitchenID: kitchenID,
		CreatedBy: &creator,
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.ingredients.Create(context.Background(), ingredient))
	return ingredient
}
