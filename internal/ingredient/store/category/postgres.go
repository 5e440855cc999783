package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/ingredient/models"
	"larder/internal/platform/postgres"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, category *models.Category) error {
	var kitchenID *uuid.UUID
	if category.KitchenID != nil {
		raw := uuid.UUID(*category.KitchenID)
		kitchenID = &raw
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO categories (id, name, kitchen_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.UUID(category.ID), category.Name, kitchenID, category.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, kitchen_id, created_at FROM categories WHERE id = $1`,
		uuid.UUID(categoryID))
	return scanCategory(row)
}

func (s *PostgresStore) ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, kitchen_id, created_at FROM categories
		 WHERE kitchen_id IS NULL OR kitchen_id = $1 ORDER BY name`,
		uuid.UUID(kitchenID))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var (
		category   models.Category
		categoryID uuid.UUID
		kitchenID  *uuid.UUID
	)
	if err := row.Scan(&categoryID, &category.Name, &kitchenID, &category.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	category.ID = id.CategoryID(categoryID)
	if kitchenID != nil {
		kid := id.KitchenID(*kitchenID)
		category.KitchenID = &kid
	}
	return &category, nil
}
