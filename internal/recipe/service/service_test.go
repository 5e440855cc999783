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
	"larder/internal/recipe/models"
	recipestore "larder/internal/recipe/store/recipe"
	itemstore "larder/internal/recipe/store/recipeingredient"
	stepstore "larder/internal/recipe/store/step"
	id "larder/pkg/domain"
)

// fixture wires the service against in-memory stores. creator and member both
// belong to the kitchen; only creator owns the recipes seeded through it.
type fixture struct {
	service     *Service
	recipes     *recipestore.InMemoryStore
	items       *itemstore.InMemoryStore
	steps       *stepstore.InMemoryStore
	ingredients *ingredientstore.InMemoryStore

	kitchenID id.KitchenID
	creator   id.PrincipalID
	member    id.PrincipalID
	outsider  id.PrincipalID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	memberships := membershipstore.NewInMemoryStore()
	f := &fixture{
		recipes:     recipestore.NewInMemoryStore(),
		items:       itemstore.NewInMemoryStore(),
		steps:       stepstore.NewInMemoryStore(),
		ingredients: ingredientstore.NewInMemoryStore(),
		kitchenID:   id.KitchenID(uuid.New()),
		creator:     id.PrincipalID(uuid.New()),
		member:      id.PrincipalID(uuid.New()),
		outsider:    id.PrincipalID(uuid.New()),
	}

	now := time.Now()
	owner := kitchenmodels.NewOwnerMembership(id.MembershipID(uuid.New()), f.kitchenID, f.creator, now)
	require.NoError(t, memberships.Create(context.Background(), owner))
	invited := kitchenmodels.NewInvitation(id.MembershipID(uuid.New()), f.kitchenID, f.member, now)
	invited.ApplyAccept(now)
	require.NoError(t, memberships.Create(context.Background(), invited))

	f.service = New(f.recipes, f.items, f.steps, f.ingredients, kitchenservice.NewEvaluator(memberships))
	return f
}

func (f *fixture) mustCreateRecipe(t *testing.T, name string) *models.Recipe {
	t.Helper()
	recipe, err := f.service.CreateRecipe(context.Background(), f.creator, f.kitchenID, name, "", 4)
	require.NoError(t, err)
	return recipe
}

// seedIngredient inserts directly into the ingredient store so tests control
// visibility without going through the ingredient service.
func (f *fixture) seedIngredient(t *testing.T, name string, public bool, kitchenID *id.KitchenID) *ingredientmodels.Ingredient {
	t.Helper()
	creator := f.creator
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
