package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"larder/internal/kitchen/models"
	"larder/internal/kitchen/service/mocks"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/sentinel"
)

func TestEvaluator_RequireMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMembershipStore(ctrl)
	evaluator := NewEvaluator(store)

	principalID := id.PrincipalID(uuid.New())
	kitchenID := id.KitchenID(uuid.New())

	t.Run("any membership row passes, pending included", func(t *testing.T) {
		store.EXPECT().FindByKitchenAndPrincipal(gomock.Any(), kitchenID, principalID).
			Return(&models.Membership{State: models.InviteStatePending}, nil)
		require.NoError(t, evaluator.RequireMembership(context.Background(), principalID, kitchenID))
	})

	t.Run("missing row denies with insufficient rights", func(t *testing.T) {
		store.EXPECT().FindByKitchenAndPrincipal(gomock.Any(), kitchenID, principalID).
			Return(nil, sentinel.ErrNotFound)
		err := evaluator.RequireMembership(context.Background(), principalID, kitchenID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		assert.Equal(t, "insufficient rights", dErrors.MessageOf(err))
	})

	t.Run("store failure surfaces as internal", func(t *testing.T) {
		store.EXPECT().FindByKitchenAndPrincipal(gomock.Any(), kitchenID, principalID).
			Return(nil, errors.New("connection reset"))
		err := evaluator.RequireMembership(context.Background(), principalID, kitchenID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func TestEvaluator_RequireOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMembershipStore(ctrl)
	evaluator := NewEvaluator(store)

	principalID := id.PrincipalID(uuid.New())
	kitchenID := id.KitchenID(uuid.New())

	t.Run("owner membership passes", func(t *testing.T) {
		store.EXPECT().FindByKitchenAndPrincipal(gomock.Any(), kitchenID, principalID).
			Return(&models.Membership{Owner: true, State: models.InviteStateAccepted}, nil)
		require.NoError(t, evaluator.RequireOwner(context.Background(), principalID, kitchenID))
	})

	t.Run("plain member is denied", func(t *testing.T) {
		store.EXPECT().FindByKitchenAndPrincipal(gomock.Any(), kitchenID, principalID).
			Return(&models.Membership{Owner: false, State: models.InviteStateAccepted}, nil)
		err := evaluator.RequireOwner(context.Background(), principalID, kitchenID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("non-member is denied", func(t *testing.T) {
		store.EXPECT().FindByKitchenAndPrincipal(gomock.Any(), kitchenID, principalID).
			Return(nil, sentinel.ErrNotFound)
		err := evaluator.RequireOwner(context.Background(), principalID, kitchenID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestEvaluator_RequireCreator(t *testing.T) {
	evaluator := NewEvaluator(nil)
	creator := id.PrincipalID(uuid.New())

	assert.NoError(t, evaluator.RequireCreator(creator, creator))

	err := evaluator.RequireCreator(id.PrincipalID(uuid.New()), creator)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	// A zero principal never matches, even against a zero creator.
	err = evaluator.RequireCreator(id.PrincipalID{}, id.PrincipalID{})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
