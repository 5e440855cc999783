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

func TestCreateList(t *testing.T) {
	f := newFixture(t)

	t.Run("any member creates", func(t *testing.T) {
		list, err := f.service.CreateList(context.Background(), f.member, f.kitchenID, "Weekly Groceries")
		require.NoError(t, err)
		assert.Equal(t, "Weekly Groceries", list.Name)
		assert.Equal(t, f.member, list.CreatedBy)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := f.service.CreateList(context.Background(), f.outsider, f.kitchenID, "Intruder List")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		_, err := f.service.CreateList(context.Background(), f.owner, f.kitchenID, "  ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestGetList(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")

	t.Run("any member reads", func(t *testing.T) {
		got, err := f.service.GetList(context.Background(), f.member, list.ID)
		require.NoError(t, err)
		assert.Equal(t, list.ID, got.ID)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := f.service.GetList(context.Background(), f.outsider, list.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.service.GetList(context.Background(), f.owner, id.ListID(uuid.New()))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestUpdateList(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")

	t.Run("fellow member renames", func(t *testing.T) {
		name := "Weekend Shop"
		updated, err := f.service.UpdateList(context.Background(), f.member, list.ID, ListPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Weekend Shop", updated.Name)
	})

	t.Run("blank name fails post-merge validation", func(t *testing.T) {
		name := "  "
		_, err := f.service.UpdateList(context.Background(), f.owner, list.ID, ListPatch{Name: &name})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestDeleteList(t *testing.T) {
	f := newFixture(t)
	list := f.mustCreateList(t, "Weekly Groceries")

	t.Run("non-member cannot delete", func(t *testing.T) {
		err := f.service.DeleteList(context.Background(), f.outsider, list.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("any member deletes", func(t *testing.T) {
		require.NoError(t, f.service.DeleteList(context.Background(), f.member, list.ID))
		_, err := f.service.GetList(context.Background(), f.owner, list.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestListLists(t *testing.T) {
	f := newFixture(t)
	f.mustCreateList(t, "Weekly Groceries")
	f.mustCreateList(t, "Party Supplies")

	lists, err := f.service.ListLists(context.Background(), f.member, f.kitchenID)
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	_, err = f.service.ListLists(context.Background(), f.outsider, f.kitchenID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
