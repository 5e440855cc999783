package service

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"larder/internal/ingredient/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// Tier names double as metric labels and span attributes.
const (
	tierExact     = "exact"
	tierAllTokens = "all_tokens"
	tierAnyToken  = "any_token"
	tierNone      = "none"
)

// SearchByName resolves a free-text query through progressive relaxation:
// exact name match, then all-tokens containment, then any-token containment.
// The search returns at the first non-empty tier and never merges tiers, so
// an exact match is not drowned in broad token hits.
func (s *Service) SearchByName(ctx context.Context, actor id.PrincipalID, scope models.Scope, query string) ([]*models.Ingredient, error) {
	if err := s.authorizeScope(ctx, actor, scope); err != nil {
		return nil, err
	}
	normalized, tokens, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	key := scope.Key() + "|" + normalized
	return s.cachedSearch(ctx, key, func(ctx context.Context) ([]*models.Ingredient, error) {
		results, _, err := s.resolveTiers(ctx, scope, normalized, tokens)
		return results, err
	})
}

// SearchByNameAndCategory runs the same tiered resolution, then filters the
// winning tier's results by category. The filter applies after tier
// selection: a category mismatch in the winning tier does not fall through to
// a broader one.
func (s *Service) SearchByNameAndCategory(ctx context.Context, actor id.PrincipalID, scope models.Scope, query string, categoryID id.CategoryID) ([]*models.Ingredient, error) {
	if err := s.authorizeScope(ctx, actor, scope); err != nil {
		return nil, err
	}
	normalized, tokens, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}
	if _, err := s.findCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	key := scope.Key() + "|" + normalized + "|cat|" + categoryID.String()
	return s.cachedSearch(ctx, key, func(ctx context.Context) ([]*models.Ingredient, error) {
		results, _, err := s.resolveTiers(ctx, scope, normalized, tokens)
		if err != nil {
			return nil, err
		}
		filtered := make([]*models.Ingredient, 0, len(results))
		for _, ingredient := range results {
			if ingredient.CategoryID != nil && *ingredient.CategoryID == categoryID {
				filtered = append(filtered, ingredient)
			}
		}
		return filtered, nil
	})
}

func (s *Service) authorizeScope(ctx context.Context, actor id.PrincipalID, scope models.Scope) error {
	if actor.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	if scope.IsKitchen() {
		return s.authorizer.RequireMembership(ctx, actor, *scope.KitchenID)
	}
	return nil
}

// normalizeQuery lowercases and collapses whitespace so equivalent queries
// share a cache key, and splits the tokens the relaxation tiers work on.
func normalizeQuery(query string) (string, []string, error) {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return "", nil, dErrors.New(dErrors.CodeInvalidInput, "search query is required")
	}
	return strings.Join(tokens, " "), tokens, nil
}

// cachedSearch answers from the cache when possible and collapses concurrent
// identical queries into one store round trip.
func (s *Service) cachedSearch(ctx context.Context, key string, resolve func(context.Context) ([]*models.Ingredient, error)) ([]*models.Ingredient, error) {
	if s.cache != nil {
		if results, ok := s.cache.Get(ctx, key); ok {
			if s.metrics != nil {
				s.metrics.SearchCacheHits.Inc()
			}
			return results, nil
		}
		if s.metrics != nil {
			s.metrics.SearchCacheMisses.Inc()
		}
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		results, err := resolve(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(ctx, key, results)
		}
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*models.Ingredient), nil
}

func (s *Service) resolveTiers(ctx context.Context, scope models.Scope, normalized string, tokens []string) ([]*models.Ingredient, string, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "ingredient.search", trace.WithAttributes(
		attribute.String("search.scope", scope.Key()),
		attribute.Int("search.token_count", len(tokens)),
	))
	defer span.End()

	tiers := []struct {
		name string
		run  func(context.Context) ([]*models.Ingredient, error)
	}{
		{tierExact, func(ctx context.Context) ([]*models.Ingredient, error) {
			return s.ingredients.FindByExactName(ctx, scope, normalized)
		}},
		{tierAllTokens, func(ctx context.Context) ([]*models.Ingredient, error) {
			return s.ingredients.FindByAllTokens(ctx, scope, tokens)
		}},
		{tierAnyToken, func(ctx context.Context) ([]*models.Ingredient, error) {
			return s.ingredients.FindByAnyToken(ctx, scope, tokens)
		}},
	}

	for _, tier := range tiers {
		results, err := s.runTier(ctx, tier.name, tier.run)
		if err != nil {
			span.RecordError(err)
			return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "ingredient search failed")
		}
		if len(results) > 0 {
			span.SetAttributes(attribute.String("search.tier", tier.name))
			s.observeSearch(tier.name, start)
			return results, tier.name, nil
		}
	}

	span.SetAttributes(attribute.String("search.tier", tierNone))
	s.observeSearch(tierNone, start)
	return nil, tierNone, nil
}

func (s *Service) runTier(ctx context.Context, name string, run func(context.Context) ([]*models.Ingredient, error)) ([]*models.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "ingredient.search."+name)
	defer span.End()
	results, err := run(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("search.matches", len(results)))
	return results, nil
}

func (s *Service) observeSearch(tier string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveSearch(tier, start)
	}
}
