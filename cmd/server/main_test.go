package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ingredientmodels "larder/internal/ingredient/models"
	"larder/internal/ingredient/store/cache"
	kitchenmodels "larder/internal/kitchen/models"
	principalstore "larder/internal/kitchen/store/principal"
	pantrymodels "larder/internal/pantry/models"
	"larder/internal/platform/config"
	recipemodels "larder/internal/recipe/models"
	shoppingmodels "larder/internal/shopping/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/audit/publisher"
	auditmemory "larder/pkg/platform/audit/store/memory"
	"larder/pkg/testutil"
)

const testSigningKey = "smoke-test-signing-key"

type serverFixture struct {
	router chi.Router
	audit  *auditmemory.InMemoryStore

	owner kitchenmodels.Principal
	guest kitchenmodels.Principal
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	directory := principalstore.NewInMemoryDirectory()
	st := memoryStores()
	st.principals = directory

	f := &serverFixture{
		audit: auditmemory.NewInMemoryStore(),
		owner: kitchenmodels.Principal{ID: id.PrincipalID(uuid.New()), DisplayName: "Alice", Email: "alice@example.com"},
		guest: kitchenmodels.Principal{ID: id.PrincipalID(uuid.New()), DisplayName: "Bob", Email: "bob@example.com"},
	}
	directory.Seed(f.owner)
	directory.Seed(f.guest)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditPublisher := publisher.NewPublisher(f.audit)
	t.Cleanup(auditPublisher.Close)

	cfg := config.Server{JWTSigningKey: testSigningKey}
	f.router = buildRouter(cfg, log, st, cache.NewMemory(time.Minute), auditPublisher)
	return f
}

func (f *serverFixture) bearer(t *testing.T, principal kitchenmodels.Principal) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": principal.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return "Bearer " + signed
}

func (f *serverFixture) do(t *testing.T, method, path string, body any, principal *kitchenmodels.Principal) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = testutil.NewJSONRequest(t, method, path, body)
	} else {
		req = testutil.NewRequest(t, method, path)
	}
	if principal != nil {
		req.Header.Set("Authorization", f.bearer(t, *principal))
	}
	return testutil.DoRequest(f.router, req)
}

// TestServerFlow drives the full stack, JWT middleware included, through one
// household's lifecycle: kitchen, invite, recipe, shopping list, pantry.
func TestServerFlow(t *testing.T) {
	f := newServerFixture(t)

	t.Run("health and metrics are public", func(t *testing.T) {
		testutil.AssertStatus(t, f.do(t, http.MethodGet, "/healthz", nil, nil), http.StatusOK)
		testutil.AssertStatus(t, f.do(t, http.MethodGet, "/metrics", nil, nil), http.StatusOK)
	})

	t.Run("api routes reject missing bearer", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/kitchens", map[string]string{"name": "Test"}, nil)
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("api routes reject forged bearer", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/kitchens")
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": f.owner.ID.String()})
		signed, err := forged.SignedString([]byte("wrong-key"))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+signed)
		testutil.AssertStatus(t, testutil.DoRequest(f.router, req), http.StatusUnauthorized)
	})

	var kitchen *kitchenmodels.Kitchen
	testutil.Given(t, "the owner creates a kitchen", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/kitchens",
			map[string]string{"name": "Weeknight Dinners"}, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		kitchen = testutil.UnmarshalResponse[kitchenmodels.Kitchen](t, rr)
		assert.Equal(t, f.owner.ID, kitchen.CreatedBy)
	})

	t.Run("share token resolves without auth", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/shared/"+kitchen.ShareToken.String(), nil, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[kitchenmodels.Kitchen](t, rr)
		assert.Equal(t, kitchen.ID, got.ID)
	})

	testutil.When(t, "the owner invites the guest and the guest accepts", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/kitchens/"+kitchen.ID.String()+"/invites",
			map[string]string{"email": f.guest.Email}, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusCreated)

		rr = f.do(t, http.MethodPost, "/kitchens/"+kitchen.ID.String()+"/invites/accept", nil, &f.guest)
		testutil.AssertStatus(t, rr, http.StatusNoContent)
	})

	var ingredient *ingredientmodels.Ingredient
	t.Run("guest adds a private ingredient", func(t *testing.T) {
		kitchenID := kitchen.ID.String()
		rr := f.do(t, http.MethodPost, "/ingredients",
			map[string]any{"name": "Saffron", "kitchen_id": kitchenID}, &f.guest)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		ingredient = testutil.UnmarshalResponse[ingredientmodels.Ingredient](t, rr)
	})

	var created *recipemodels.Recipe
	t.Run("guest creates a recipe and owner cannot delete it", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/kitchens/"+kitchen.ID.String()+"/recipes",
			map[string]any{"name": "Paella", "servings": 4}, &f.guest)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		created = testutil.UnmarshalResponse[recipemodels.Recipe](t, rr)

		rr = f.do(t, http.MethodPost, "/recipes/"+created.ID.String()+"/ingredients",
			map[string]any{"ingredient_id": ingredient.ID.String(), "quantity": 1.5, "unit": "g"}, &f.guest)
		testutil.AssertStatus(t, rr, http.StatusCreated)

		rr = f.do(t, http.MethodDelete, "/recipes/"+created.ID.String(), nil, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)

		rr = f.do(t, http.MethodGet, "/recipes/"+created.ID.String(), nil, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("owner runs a shopping list", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/kitchens/"+kitchen.ID.String()+"/lists",
			map[string]string{"name": "Saturday Market"}, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		list := testutil.UnmarshalResponse[shoppingmodels.ShoppingList](t, rr)

		rr = f.do(t, http.MethodPost, "/lists/"+list.ID.String()+"/items",
			map[string]any{"ingredient_id": ingredient.ID.String(), "quantity": 2.0}, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		item := testutil.UnmarshalResponse[shoppingmodels.ListItem](t, rr)

		rr = f.do(t, http.MethodPost, "/list-items/"+item.ID.String()+"/check", nil, &f.guest)
		testutil.AssertStatus(t, rr, http.StatusOK)
		checked := testutil.UnmarshalResponse[shoppingmodels.ListItem](t, rr)
		assert.True(t, checked.Checked)
		require.NotNil(t, checked.CheckedBy)
		assert.Equal(t, f.guest.ID, *checked.CheckedBy)
	})

	t.Run("guest stocks the pantry", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/kitchens/"+kitchen.ID.String()+"/pantry",
			map[string]any{"ingredient_id": ingredient.ID.String(), "quantity": 1.0, "unit": "jar"}, &f.guest)
		testutil.AssertStatus(t, rr, http.StatusCreated)

		rr = f.do(t, http.MethodGet, "/kitchens/"+kitchen.ID.String()+"/pantry", nil, &f.owner)
		testutil.AssertStatus(t, rr, http.StatusOK)
		items := testutil.UnmarshalResponse[[]*pantrymodels.PantryItem](t, rr)
		assert.Len(t, *items, 1)
	})

	testutil.Then(t, "the audit trail recorded the lifecycle", func(t *testing.T) {
		events, err := f.audit.ListByKitchen(testutil.Ctx(f.owner.ID), kitchen.ID)
		require.NoError(t, err)
		actions := make([]string, 0, len(events))
		for _, event := range events {
			actions = append(actions, event.Action)
		}
		assert.Contains(t, actions, "kitchen_created")
		assert.Contains(t, actions, "member_invited")
		assert.Contains(t, actions, "invite_accepted")
		assert.Contains(t, actions, "recipe_created")
		assert.Contains(t, actions, "list_created")
	})
}
