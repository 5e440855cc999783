//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"larder/internal/ingredient/models"
	"larder/internal/ingredient/store/cache"
	id "larder/pkg/domain"
	"larder/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.cache = cache.NewRedis(s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func makeResults(names ...string) []*models.Ingredient {
	rows := make([]*models.Ingredient, 0, len(names))
	for _, name := range names {
		rows = append(rows, &models.Ingredient{
			ID:        id.IngredientID(uuid.New()),
			Name:      name,
			Public:    true,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		})
	}
	return rows
}

func (s *RedisCacheSuite) TestSetGetRoundTrip() {
	ctx := context.Background()
	want := makeResults("Olive Oil", "Sesame Oil")

	s.cache.Set(ctx, "public|oil", want)

	got, ok := s.cache.Get(ctx, "public|oil")
	s.Require().True(ok)
	s.Require().Len(got, 2)
	s.Equal(want[0].ID, got[0].ID)
	s.Equal(want[1].Name, got[1].Name)
}

func (s *RedisCacheSuite) TestMissOnUnknownKey() {
	_, ok := s.cache.Get(context.Background(), "public|vinegar")
	s.False(ok)
}

func (s *RedisCacheSuite) TestEmptyResultIsCacheable() {
	ctx := context.Background()
	s.cache.Set(ctx, "public|vinegar", []*models.Ingredient{})

	got, ok := s.cache.Get(ctx, "public|vinegar")
	s.True(ok)
	s.Empty(got)
}

// TestInvalidateBumpsGeneration verifies invalidation moves every key to a new
// generation instead of deleting the old one.
func (s *RedisCacheSuite) TestInvalidateBumpsGeneration() {
	ctx := context.Background()
	s.cache.Set(ctx, "public|oil", makeResults("Olive Oil"))

	s.cache.Invalidate(ctx)

	_, ok := s.cache.Get(ctx, "public|oil")
	s.False(ok, "pre-invalidation entries must not be served")

	fresh := makeResults("Olive Oil", "Chili Oil")
	s.cache.Set(ctx, "public|oil", fresh)
	got, ok := s.cache.Get(ctx, "public|oil")
	s.Require().True(ok)
	s.Len(got, 2)
}
