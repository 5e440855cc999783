package step

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

func (s *PostgresStore) Create(ctx context.Context, step *models.RecipeStep) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO recipe_steps (id, recipe_id, body, sort_order) VALUES ($1, $2, $3, $4)`,
		uuid.UUID(step.ID), uuid.UUID(step.RecipeID), step.Body, step.SortOrder)
	if err != nil {
		return fmt.Errorf("insert recipe step: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, stepID id.RecipeStepID) (*models.RecipeStep, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, recipe_id, body, sort_order FROM recipe_steps WHERE id = $1`,
		uuid.UUID(stepID))
	return scanStep(row)
}

func (s *PostgresStore) ListByRecipe(ctx context.Context, recipeID id.RecipeID) ([]*models.RecipeStep, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, recipe_id, body, sort_order FROM recipe_steps WHERE recipe_id = $1 ORDER BY sort_order`,
		uuid.UUID(recipeID))
	if err != nil {
		return nil, fmt.Errorf("list recipe steps: %w", err)
	}
	defer rows.Close()

	var result []*models.RecipeStep
	for rows.Next() {
		step, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, step)
	}
	return result, rows.Err()
}

func (s *PostgresStore) MaxSortOrder(ctx context.Context, recipeID id.RecipeID) (int, error) {
	var max int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) FROM recipe_steps WHERE recipe_id = $1`,
		uuid.UUID(recipeID)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max sort order: %w", err)
	}
	return max, nil
}

func (s *PostgresStore) Update(ctx context.Context, step *models.RecipeStep) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE recipe_steps SET body = $2, sort_order = $3 WHERE id = $1`,
		uuid.UUID(step.ID), step.Body, step.SortOrder)
	if err != nil {
		return fmt.Errorf("update recipe step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, stepID id.RecipeStepID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM recipe_steps WHERE id = $1`, uuid.UUID(stepID))
	if err != nil {
		return fmt.Errorf("delete recipe step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanStep(row pgx.Row) (*models.RecipeStep, error) {
	var (
		step     models.RecipeStep
		stepID   uuid.UUID
		recipeID uuid.UUID
	)
	if err := row.Scan(&stepID, &recipeID, &step.Body, &step.SortOrder); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan recipe step: %w", err)
	}
	step.ID = id.RecipeStepID(stepID)
	step.RecipeID = id.RecipeID(recipeID)
	return &step, nil
}
