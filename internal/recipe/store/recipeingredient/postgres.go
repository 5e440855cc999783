package recipeingredient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/platform/postgres"
	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// PostgresStore persists recipe ingredients. The recipe_ingredients_scope_key
// unique constraint is the duplicate signal for concurrent adds.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const itemColumns = `id, recipe_id, ingredient_id, quantity, unit, note, sort_order`

func (s *PostgresStore) Create(ctx context.Context, item *models.RecipeIngredient) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO recipe_ingredients (`+itemColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.UUID(item.ID), uuid.UUID(item.RecipeID), uuid.UUID(item.IngredientID),
		item.Quantity, item.Unit, item.Note, item.SortOrder)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert recipe ingredient: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, itemID id.RecipeIngredientID) (*models.RecipeIngredient, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM recipe_ingredients WHERE id = $1`, uuid.UUID(itemID))
	return scanItem(row)
}

func (s *PostgresStore) ListByRecipe(ctx context.Context, recipeID id.RecipeID) ([]*models.RecipeIngredient, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY sort_order`,
		uuid.UUID(recipeID))
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()

	var result []*models.RecipeIngredient
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *PostgresStore) MaxSortOrder(ctx context.Context, recipeID id.RecipeID) (int, error) {
	var max int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) FROM recipe_ingredients WHERE recipe_id = $1`,
		uuid.UUID(recipeID)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max sort order: %w", err)
	}
	return max, nil
}

func (s *PostgresStore) Update(ctx context.Context, item *models.RecipeIngredient) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE recipe_ingredients SET quantity = $2, unit = $3, note = $4, sort_order = $5 WHERE id = $1`,
		uuid.UUID(item.ID), item.Quantity, item.Unit, item.Note, item.SortOrder)
	if err != nil {
		return fmt.Errorf("update recipe ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, itemID id.RecipeIngredientID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM recipe_ingredients WHERE id = $1`, uuid.UUID(itemID))
	if err != nil {
		return fmt.Errorf("delete recipe ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*models.RecipeIngredient, error) {
	var (
		item         models.RecipeIngredient
		itemID       uuid.UUID
		recipeID     uuid.UUID
		ingredientID uuid.UUID
	)
	err := row.Scan(&itemID, &recipeID, &ingredientID, &item.Quantity, &item.Unit, &item.Note, &item.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan recipe ingredient: %w", err)
	}
	item.ID = id.RecipeIngredientID(itemID)
	item.RecipeID = id.RecipeID(recipeID)
	item.IngredientID = id.IngredientID(ingredientID)
	return &item, nil
}
