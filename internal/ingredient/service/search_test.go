package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/ingredient/models"
	categorystore "larder/internal/ingredient/store/category"
	"larder/internal/ingredient/store/cache"
	ingredientstore "larder/internal/ingredient/store/ingredient"
	kitchenmodels "larder/internal/kitchen/models"
	kitchenservice "larder/internal/kitchen/service"
	membershipstore "larder/internal/kitchen/store/membership"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

type fixture struct {
	service     *Service
	ingredients *ingredientstore.InMemoryStore
	categories  *categorystore.InMemoryStore
	cache       *cache.Memory

	kitchenID id.KitchenID
	member    id.PrincipalID
	outsider  id.PrincipalID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	memberships := membershipstore.NewInMemoryStore()
	f := &fixture{
		ingredients: ingredientstore.NewInMemoryStore(),
		categories:  categorystore.NewInMemoryStore(),
		cache:       cache.NewMemory(time.Minute),
		kitchenID:   id.KitchenID(uuid.New()),
		member:      id.PrincipalID(uuid.New()),
		outsider:    id.PrincipalID(uuid.New()),
	}
	membership := kitchenmodels.NewOwnerMembership(id.MembershipID(uuid.New()), f.kitchenID, f.member, time.Now())
	require.NoError(t, memberships.Create(context.Background(), membership))

	f.service = New(f.ingredients, f.categories, kitchenservice.NewEvaluator(memberships), WithCache(f.cache))
	return f
}

// seed inserts an ingredient directly, bypassing the service and its cache
// invalidation.
func (f *fixture) seed(t *testing.T, name string, public bool, kitchenID *id.KitchenID, categoryID *id.CategoryID) *models.Ingredient {
	t.Helper()
	creator := f.member
	ingredient := &models.Ingredient{
		ID:         id.IngredientID(uuid.New()),
		Name:       name,
		Public:     public,
		KitchenID:  kitchenID,
		CategoryID: categoryID,
		CreatedBy:  &creator,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, f.ingredients.Create(context.Background(), ingredient))
	return ingredient
}

func names(ingredients []*models.Ingredient) []string {
	result := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, ingredient.Name)
	}
	return result
}

func TestSearchByName_ExactTierWins(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Butter", true, nil, nil)
	f.seed(t, "Peanut Butter", true, nil, nil)
	f.seed(t, "Butter Beans", true, nil, nil)

	results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "butter")
	require.NoError(t, err)
	assert.Equal(t, []string{"Butter"}, names(results))
}

func TestSearchByName_ExactTierReturnsAllEqualNames(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Butter", true, nil, nil)
	f.seed(t, "butter", true, nil, nil)

	results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "BUTTER")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchByName_AllTokensTier(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Crunchy Peanut Butter", true, nil, nil)
	f.seed(t, "Peanut Sauce", true, nil, nil)
	f.seed(t, "Butter Knife", true, nil, nil)

	// No exact "peanut butter" exists; only the name containing both tokens
	// qualifies. Single-token hits stay excluded.
	results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "peanut butter")
	require.NoError(t, err)
	assert.Equal(t, []string{"Crunchy Peanut Butter"}, names(results))
}

func TestSearchByName_AnyTokenTier(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Peanut Sauce", true, nil, nil)
	f.seed(t, "Butter Knife", true, nil, nil)
	f.seed(t, "Olive Oil", true, nil, nil)

	// Nothing contains both tokens, so the search relaxes to any-token.
	results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "peanut butter")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Butter Knife", "Peanut Sauce"}, names(results))
}

func TestSearchByName_NoTierMatches(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Olive Oil", true, nil, nil)

	results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "saffron")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchByName_Scoping(t *testing.T) {
	f := newFixture(t)
	otherKitchen := id.KitchenID(uuid.New())
	f.seed(t, "House Blend", false, &f.kitchenID, nil)
	f.seed(t, "House Blend", false, &otherKitchen, nil)
	f.seed(t, "House Blend", true, nil, nil)

	t.Run("kitchen scope sees public plus own private", func(t *testing.T) {
		results, err := f.service.SearchByName(context.Background(), f.member, models.KitchenScope(f.kitchenID), "house blend")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("public scope sees only public", func(t *testing.T) {
		results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "house blend")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("non-member cannot search a kitchen scope", func(t *testing.T) {
		_, err := f.service.SearchByName(context.Background(), f.outsider, models.KitchenScope(f.kitchenID), "house blend")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestSearchByName_BlankQuery(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "   ")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestSearchByName_CacheInvalidation(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Butter", true, nil, nil)

	results, err := f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "butter")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// A direct store write is invisible while the cache holds the old answer.
	f.seed(t, "butter", true, nil, nil)
	results, err = f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "butter")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// Any service-level mutation flushes the cache.
	_, err = f.service.CreateIngredient(context.Background(), f.member, "Ghee", true, nil, nil)
	require.NoError(t, err)
	results, err = f.service.SearchByName(context.Background(), f.member, models.PublicScope(), "butter")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchByNameAndCategory(t *testing.T) {
	f := newFixture(t)

	dairy, err := f.service.CreateCategory(context.Background(), f.member, "Dairy", nil)
	require.NoError(t, err)
	pantry, err := f.service.CreateCategory(context.Background(), f.member, "Pantry", nil)
	require.NoError(t, err)

	f.seed(t, "Butter", true, nil, &dairy.ID)
	f.seed(t, "Peanut Butter", true, nil, &pantry.ID)

	t.Run("filters the winning tier by category", func(t *testing.T) {
		results, err := f.service.SearchByNameAndCategory(context.Background(), f.member, models.PublicScope(), "butter", dairy.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Butter"}, names(results))
	})

	t.Run("category mismatch does not fall through to a broader tier", func(t *testing.T) {
		// "Butter" wins the exact tier but is not in Pantry; "Peanut Butter"
		// is, yet stays invisible because its tier never ran.
		results, err := f.service.SearchByNameAndCategory(context.Background(), f.member, models.PublicScope(), "butter", pantry.ID)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		_, err := f.service.SearchByNameAndCategory(context.Background(), f.member, models.PublicScope(), "butter", id.CategoryID(uuid.New()))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
