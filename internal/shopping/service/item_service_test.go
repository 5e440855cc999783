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

func TestAddItem(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")
	milk := f.seedIngredient(t, "Milk", true, nil)
	bread := f.seedIngredient(t, "Bread", true, nil)

	t.Run("first item lands at sort order 1", func(t *testing.T) {
		item, err := f.service.AddItem(context.Background(), f.owner, list.ID, milk.ID, 2, "l", "", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, item.SortOrder)
		assert.False(t, item.Checked)
	})

	t.Run("fellow member appends after the maximum", func(t *testing.T) {
		item, err := f.service.AddItem(context.Background(), f.member, list.ID, bread.ID, 1, "", "sourdough", 0)
		require.NoError(t, err)
		assert.Equal(t, 2, item.SortOrder)
	})

	t.Run("duplicate ingredient conflicts", func(t *testing.T) {
		_, err := f.service.AddItem(context.Background(), f.member, list.ID, milk.ID, 99, "l", "", 0)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

		items, err := f.service.ListItems(context.Background(), f.owner, list.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 2.0, items[0].Quantity)
	})

	t.Run("non-member cannot add", func(t *testing.T) {
		eggs := f.seedIngredient(t, "Eggs", true, nil)
		_, err := f.service.AddItem(context.Background(), f.outsider, list.ID, eggs.ID, 12, "", "", 0)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("another kitchen's private ingredient reads as not found", func(t *testing.T) {
		foreignKitchen := id.KitchenID(uuid.New())
		foreign := f.seedIngredient(t, "Secret Sauce", false, &foreignKitchen)
		_, err := f.service.AddItem(context.Background(), f.owner, list.ID, foreign.ID, 1, "", "", 0)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("negative quantity fails validation", func(t *testing.T) {
		butter := f.seedIngredient(t, "Butter", true, nil)
		_, err := f.service.AddItem(context.Background(), f.owner, list.ID, butter.ID, -1, "g", "", 0)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestCheckItem(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")
	milk := f.seedIngredient(t, "Milk", true, nil)
	item, err := f.service.AddItem(context.Background(), f.owner, list.ID, milk.ID, 2, "l", "", 0)
	require.NoError(t, err)

	t.Run("member checks an item off", func(t *testing.T) {
		checked, err := f.service.CheckItem(context.Background(), f.member, item.ID)
		require.NoError(t, err)
		assert.True(t, checked.Checked)
		require.NotNil(t, checked.CheckedBy)
		assert.Equal(t, f.member, *checked.CheckedBy)
	})

	t.Run("re-check records the latest principal", func(t *testing.T) {
		checked, err := f.service.CheckItem(context.Background(), f.owner, item.ID)
		require.NoError(t, err)
		require.NotNil(t, checked.CheckedBy)
		assert.Equal(t, f.owner, *checked.CheckedBy)
	})

	t.Run("uncheck clears the mark", func(t *testing.T) {
		unchecked, err := f.service.UncheckItem(context.Background(), f.member, item.ID)
		require.NoError(t, err)
		assert.False(t, unchecked.Checked)
		assert.Nil(t, unchecked.CheckedBy)
	})

	t.Run("non-member cannot check", func(t *testing.T) {
		_, err := f.service.CheckItem(context.Background(), f.outsider, item.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestUpdateItem(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")
	milk := f.seedIngredient(t, "Milk", true, nil)
	item, err := f.service.AddItem(context.Background(), f.owner, list.ID, milk.ID, 2, "l", "", 0)
	require.NoError(t, err)

	t.Run("fellow member patches quantity", func(t *testing.T) {
		quantity := 3.0
		updated, err := f.service.UpdateItem(context.Background(), f.member, item.ID, ListItemPatch{Quantity: &quantity})
		require.NoError(t, err)
		assert.Equal(t, 3.0, updated.Quantity)
		assert.Equal(t, "l", updated.Unit)
	})

	t.Run("negative quantity fails post-merge validation", func(t *testing.T) {
		quantity := -1.0
		_, err := f.service.UpdateItem(context.Background(), f.owner, item.ID, ListItemPatch{Quantity: &quantity})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		note := "nope"
		_, err := f.service.UpdateItem(context.Background(), f.owner, id.ListItemID(uuid.New()), ListItemPatch{Note: &note})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestRemoveItem(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")
	milk := f.seedIngredient(t, "Milk", true, nil)
	bread := f.seedIngredient(t, "Bread", true, nil)

	first, err := f.service.AddItem(context.Background(), f.owner, list.ID, milk.ID, 2, "l", "", 0)
	require.NoError(t, err)
	_, err = f.service.AddItem(context.Background(), f.owner, list.ID, bread.ID, 1, "", "", 0)
	require.NoError(t, err)

	t.Run("member removes and receives the prior row", func(t *testing.T) {
		removed, err := f.service.RemoveItem(context.Background(), f.member, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, removed.ID)
	})

	t.Run("gaps persist after removal", func(t *testing.T) {
		eggs := f.seedIngredient(t, "Eggs", true, nil)
		item, err := f.service.AddItem(context.Background(), f.owner, list.ID, eggs.ID, 12, "", "", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, item.SortOrder)
	})
}
