package recipe

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

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const recipeColumns = `id, kitchen_id, name, description, servings, created_by, created_at`

func (s *PostgresStore) Create(ctx context.Context, recipe *models.Recipe) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO recipes (`+recipeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.UUID(recipe.ID), uuid.UUID(recipe.KitchenID), recipe.Name, recipe.Description,
		recipe.Servings, uuid.UUID(recipe.CreatedBy), recipe.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, recipeID id.RecipeID) (*models.Recipe, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, uuid.UUID(recipeID))
	return scanRecipe(row)
}

func (s *PostgresStore) ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Recipe, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE kitchen_id = $1 ORDER BY name, id`,
		uuid.UUID(kitchenID))
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var result []*models.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, recipe)
	}
	return result, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, recipe *models.Recipe) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE recipes SET name = $2, description = $3, servings = $4 WHERE id = $1`,
		uuid.UUID(recipe.ID), recipe.Name, recipe.Description, recipe.Servings)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, recipeID id.RecipeID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, uuid.UUID(recipeID))
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanRecipe(row pgx.Row) (*models.Recipe, error) {
	var (
		recipe    models.Recipe
		recipeID  uuid.UUID
		kitchenID uuid.UUID
		createdBy uuid.UUID
	)
	err := row.Scan(&recipeID, &kitchenID, &recipe.Name, &recipe.Description,
		&recipe.Servings, &createdBy, &recipe.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan recipe: %w", err)
	}
	recipe.ID = id.RecipeID(recipeID)
	recipe.KitchenID = id.KitchenID(kitchenID)
	recipe.CreatedBy = id.PrincipalID(createdBy)
	return &recipe, nil
}
