//go:build integration

package ingredient_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"larder/internal/ingredient/models"
	"larder/internal/ingredient/store/ingredient"
	kitchenmodels "larder/internal/kitchen/models"
	kitchenstore "larder/internal/kitchen/store/kitchen"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
	"larder/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	kitchens *kitchenstore.PostgresStore
	store    *ingredient.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.kitchens = kitchenstore.NewPostgres(s.postgres.Pool)
	s.store = ingredient.NewPostgres(s.postgres.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "ingredients", "categories", "kitchens")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) seedKitchen() id.KitchenID {
	kitchen, err := kitchenmodels.NewKitchen(id.KitchenID(uuid.New()), "Test Kitchen", "", id.PrincipalID(uuid.New()), time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.kitchens.Create(context.Background(), kitchen))
	return kitchen.ID
}

func (s *PostgresStoreSuite) seedIngredient(name string, public bool, kitchenID *id.KitchenID) *models.Ingredient {
	row, err := models.NewIngredient(id.IngredientID(uuid.New()), name, public, kitchenID, nil, id.PrincipalID(uuid.New()), time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(context.Background(), row))
	return row
}

func (s *PostgresStoreSuite) TestCrudRoundTrip() {
	ctx := context.Background()
	kitchenID := s.seedKitchen()
	row := s.seedIngredient("Saffron", false, &kitchenID)

	found, err := s.store.FindByID(ctx, row.ID)
	s.Require().NoError(err)
	s.Equal("Saffron", found.Name)
	s.Require().NotNil(found.KitchenID)
	s.Equal(kitchenID, *found.KitchenID)

	found.Name = "Spanish Saffron"
	s.Require().NoError(s.store.Update(ctx, found))
	found, err = s.store.FindByID(ctx, row.ID)
	s.Require().NoError(err)
	s.Equal("Spanish Saffron", found.Name)

	s.Require().NoError(s.store.Delete(ctx, row.ID))
	_, err = s.store.FindByID(ctx, row.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestExactNameIsCaseInsensitive() {
	ctx := context.Background()
	s.seedIngredient("Olive Oil", true, nil)
	s.seedIngredient("Extra Virgin Olive Oil", true, nil)

	results, err := s.store.FindByExactName(ctx, models.PublicScope(), "OLIVE oil")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("Olive Oil", results[0].Name)
}

func (s *PostgresStoreSuite) TestTokenTiers() {
	ctx := context.Background()
	s.seedIngredient("Olive Oil", true, nil)
	s.seedIngredient("Extra Virgin Olive Oil", true, nil)
	s.seedIngredient("Sesame Oil", true, nil)

	all, err := s.store.FindByAllTokens(ctx, models.PublicScope(), []string{"olive", "oil"})
	s.Require().NoError(err)
	s.Len(all, 2, "AND semantics: both tokens must appear")

	either, err := s.store.FindByAnyToken(ctx, models.PublicScope(), []string{"olive", "sesame"})
	s.Require().NoError(err)
	s.Len(either, 3, "OR semantics: either token suffices")
}

func (s *PostgresStoreSuite) TestScopeFiltering() {
	ctx := context.Background()
	kitchenID := s.seedKitchen()
	otherKitchenID := s.seedKitchen()
	s.seedIngredient("Olive Oil", true, nil)
	s.seedIngredient("Chili Oil", false, &kitchenID)
	s.seedIngredient("Truffle Oil", false, &otherKitchenID)

	public, err := s.store.FindByAnyToken(ctx, models.PublicScope(), []string{"oil"})
	s.Require().NoError(err)
	s.Len(public, 1, "public scope excludes every private row")

	scoped, err := s.store.FindByAnyToken(ctx, models.KitchenScope(kitchenID), []string{"oil"})
	s.Require().NoError(err)
	s.Len(scoped, 2, "kitchen scope adds the kitchen's private rows only")
}

// TestLikeWildcardsAreLiteral verifies user tokens cannot act as LIKE
// patterns.
func (s *PostgresStoreSuite) TestLikeWildcardsAreLiteral() {
	ctx := context.Background()
	s.seedIngredient("Olive Oil", true, nil)
	s.seedIngredient("100% Cocoa", true, nil)

	results, err := s.store.FindByAnyToken(ctx, models.PublicScope(), []string{"%"})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("100% Cocoa", results[0].Name)
}

func (s *PostgresStoreSuite) TestListByKitchenOrdersByName() {
	ctx := context.Background()
	kitchenID := s.seedKitchen()
	s.seedIngredient("Za'atar", false, &kitchenID)
	s.seedIngredient("Allspice", false, &kitchenID)

	rows, err := s.store.ListByKitchen(ctx, kitchenID)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Allspice", rows[0].Name)
	s.Equal("Za'atar", rows[1].Name)
}
