package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

func TestCreateRecipe(t *testing.T) {
	f := newFixture(t)

	t.Run("any member creates", func(t *testing.T) {
		recipe, err := f.service.CreateRecipe(context.Background(), f.member, f.kitchenID, "Shakshuka", "weekend brunch", 2)
		require.NoError(t, err)
		assert.Equal(t, "Shakshuka", recipe.Name)
		assert.Equal(t, f.member, recipe.CreatedBy)
		assert.Equal(t, 2, recipe.Servings)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := f.service.CreateRecipe(context.Background(), f.outsider, f.kitchenID, "Intruder Stew", "", 1)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		_, err := f.service.CreateRecipe(context.Background(), f.creator, f.kitchenID, "  ", "", 1)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("negative servings fails validation", func(t *testing.T) {
		_, err := f.service.CreateRecipe(context.Background(), f.creator, f.kitchenID, "Antipasto", "", -1)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("missing kitchen id is invalid input", func(t *testing.T) {
		_, err := f.service.CreateRecipe(context.Background(), f.creator, id.KitchenID{}, "Nowhere Soup", "", 1)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestGetRecipe(t *testing.T) {
	f := newFixture(t)
	recipe := f.mustCreateRecipe(t, "Shakshuka")

	t.Run("any member reads", func(t *testing.T) {
		got, err := f.service.GetRecipe(context.Background(), f.member, recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, recipe.ID, got.ID)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := f.service.GetRecipe(context.Background(), f.outsider, recipe.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.service.GetRecipe(context.Background(), f.member, id.RecipeID(uuid.New()))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestListRecipes(t *testing.T) {
	f := newFixture(t)
	f.mustCreateRecipe(t, "Shakshuka")
	f.mustCreateRecipe(t, "Borscht")

	recipes, err := f.service.ListRecipes(context.Background(), f.member, f.kitchenID)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	_, err = f.service.ListRecipes(context.Background(), f.outsider, f.kitchenID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestUpdateRecipe(t *testing.T) {
	f := newFixture(t)
	recipe := f.mustCreateRecipe(t, "Shakshuka")

	t.Run("creator patches selected fields", func(t *testing.T) {
		servings := 6
		updated, err := f.service.UpdateRecipe(context.Background(), f.creator, recipe.ID, RecipePatch{Servings: &servings})
		require.NoError(t, err)
		assert.Equal(t, 6, updated.Servings)
		assert.Equal(t, "Shakshuka", updated.Name)
	})

	t.Run("fellow member is denied", func(t *testing.T) {
		name := "Hijacked"
		_, err := f.service.UpdateRecipe(context.Background(), f.member, recipe.ID, RecipePatch{Name: &name})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("blank name fails post-merge validation", func(t *testing.T) {
		name := "   "
		_, err := f.service.UpdateRecipe(context.Background(), f.creator, recipe.ID, RecipePatch{Name: &name})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestDeleteRecipe(t *testing.T) {
	f := newFixture(t)
	recipe := f.mustCreateRecipe(t, "Shakshuka")

	t.Run("fellow member cannot delete", func(t *testing.T) {
		err := f.service.DeleteRecipe(context.Background(), f.member, recipe.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("creator deletes", func(t *testing.T) {
		require.NoError(t, f.service.DeleteRecipe(context.Background(), f.creator, recipe.ID))
		_, err := f.service.GetRecipe(context.Background(), f.creator, recipe.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
