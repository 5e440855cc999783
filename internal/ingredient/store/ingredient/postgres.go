package ingredient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/ingredient/models"
	"larder/internal/platform/postgres"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// PostgresStore persists ingredients. The search queries lean on the
// lower(name) index for the exact tier; token tiers use ILIKE containment.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const ingredientColumns = `id, name, is_public, kitchen_id, category_id, created_by, created_at`

func (s *PostgresStore) Create(ctx context.Context, ingredient *models.Ingredient) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO ingredients (`+ingredientColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.UUID(ingredient.ID), ingredient.Name, ingredient.Public,
		optionalKitchen(ingredient.KitchenID), optionalCategory(ingredient.CategoryID),
		optionalPrincipal(ingredient.CreatedBy), ingredient.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, ingredientID id.IngredientID) (*models.Ingredient, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`,
		uuid.UUID(ingredientID))
	return scanIngredient(row)
}

func (s *PostgresStore) Update(ctx context.Context, ingredient *models.Ingredient) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE ingredients SET name = $2, is_public = $3, category_id = $4 WHERE id = $1`,
		uuid.UUID(ingredient.ID), ingredient.Name, ingredient.Public,
		optionalCategory(ingredient.CategoryID))
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, ingredientID id.IngredientID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, uuid.UUID(ingredientID))
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Ingredient, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients WHERE kitchen_id = $1 ORDER BY name, id`,
		uuid.UUID(kitchenID))
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

func (s *PostgresStore) FindByExactName(ctx context.Context, scope models.Scope, name string) ([]*models.Ingredient, error) {
	query, args := scopedQuery(scope, `lower(name) = lower($%d)`, name)
	return s.search(ctx, query, args)
}

func (s *PostgresStore) FindByAllTokens(ctx context.Context, scope models.Scope, tokens []string) ([]*models.Ingredient, error) {
	return s.tokenSearch(ctx, scope, tokens, " AND ")
}

func (s *PostgresStore) FindByAnyToken(ctx context.Context, scope models.Scope, tokens []string) ([]*models.Ingredient, error) {
	return s.tokenSearch(ctx, scope, tokens, " OR ")
}

func (s *PostgresStore) tokenSearch(ctx context.Context, scope models.Scope, tokens []string, joiner string) ([]*models.Ingredient, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	conditions := make([]string, 0, len(tokens))
	args := make([]any, 0, len(tokens)+1)
	for _, token := range tokens {
		args = append(args, "%"+escapeLike(token)+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	where := "(" + strings.Join(conditions, joiner) + ")"
	if scope.IsKitchen() {
		args = append(args, uuid.UUID(*scope.KitchenID))
		where += fmt.Sprintf(" AND (is_public OR kitchen_id = $%d)", len(args))
	} else {
		where += " AND is_public"
	}
	return s.search(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients WHERE `+where+` ORDER BY name, id`, args)
}

// scopedQuery builds a single-condition search with the scope filter
// appended. The condition carries one $%d placeholder for its argument.
func scopedQuery(scope models.Scope, condition string, arg any) (string, []any) {
	args := []any{arg}
	where := fmt.Sprintf(condition, 1)
	if scope.IsKitchen() {
		args = append(args, uuid.UUID(*scope.KitchenID))
		where += fmt.Sprintf(" AND (is_public OR kitchen_id = $%d)", len(args))
	} else {
		where += " AND is_public"
	}
	return `SELECT ` + ingredientColumns + ` FROM ingredients WHERE ` + where + ` ORDER BY name, id`, args
}

func (s *PostgresStore) search(ctx context.Context, query string, args []any) ([]*models.Ingredient, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

// escapeLike neutralizes LIKE wildcards in user-supplied tokens.
func escapeLike(token string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(token)
}

func scanIngredient(row pgx.Row) (*models.Ingredient, error) {
	var (
		ingredient   models.Ingredient
		ingredientID uuid.UUID
		kitchenID    *uuid.UUID
		categoryID   *uuid.UUID
		createdBy    *uuid.UUID
	)
	err := row.Scan(&ingredientID, &ingredient.Name, &ingredient.Public,
		&kitchenID, &categoryID, &createdBy, &ingredient.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan ingredient: %w", err)
	}
	ingredient.ID = id.IngredientID(ingredientID)
	if kitchenID != nil {
		kid := id.KitchenID(*kitchenID)
		ingredient.KitchenID = &kid
	}
	if categoryID != nil {
		cid := id.CategoryID(*categoryID)
		ingredient.CategoryID = &cid
	}
	if createdBy != nil {
		pid := id.PrincipalID(*createdBy)
		ingredient.CreatedBy = &pid
	}
	return &ingredient, nil
}

func scanIngredients(rows pgx.Rows) ([]*models.Ingredient, error) {
	var result []*models.Ingredient
	for rows.Next() {
		ingredient, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ingredient)
	}
	return result, rows.Err()
}

func optionalKitchen(kitchenID *id.KitchenID) *uuid.UUID {
	if kitchenID == nil {
		return nil
	}
	raw := uuid.UUID(*kitchenID)
	return &raw
}

func optionalCategory(categoryID *id.CategoryID) *uuid.UUID {
	if categoryID == nil {
		return nil
	}
	raw := uuid.UUID(*categoryID)
	return &raw
}

func optionalPrincipal(principalID *id.PrincipalID) *uuid.UUID {
	if principalID == nil {
		return nil
	}
	raw := uuid.UUID(*principalID)
	return &raw
}
