package kitchen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/kitchen/models"
	"larder/internal/platform/postgres"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// PostgresStore persists kitchens in PostgreSQL. Deleting a kitchen cascades
// to memberships and nested collections via foreign keys.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, kitchen *models.Kitchen) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO kitchens (id, name, description, share_token, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(kitchen.ID), kitchen.Name, kitchen.Description, kitchen.ShareToken,
		uuid.UUID(kitchen.CreatedBy), kitchen.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert kitchen: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, kitchenID id.KitchenID) (*models.Kitchen, error) {
	return s.findOne(ctx,
		`SELECT id, name, description, share_token, created_by, created_at
		 FROM kitchens WHERE id = $1`, uuid.UUID(kitchenID))
}

func (s *PostgresStore) FindByShareToken(ctx context.Context, token uuid.UUID) (*models.Kitchen, error) {
	return s.findOne(ctx,
		`SELECT id, name, description, share_token, created_by, created_at
		 FROM kitchens WHERE share_token = $1`, token)
}

func (s *PostgresStore) Update(ctx context.Context, kitchen *models.Kitchen) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE kitchens SET name = $2, description = $3 WHERE id = $1`,
		uuid.UUID(kitchen.ID), kitchen.Name, kitchen.Description)
	if err != nil {
		return fmt.Errorf("update kitchen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, kitchenID id.KitchenID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM kitchens WHERE id = $1`, uuid.UUID(kitchenID))
	if err != nil {
		return fmt.Errorf("delete kitchen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*models.Kitchen, error) {
	var (
		kitchen    models.Kitchen
		kitchenID  uuid.UUID
		createdBy  uuid.UUID
		shareToken uuid.UUID
	)
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&kitchenID, &kitchen.Name, &kitchen.Description, &shareToken, &createdBy, &kitchen.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find kitchen: %w", err)
	}
	kitchen.ID = id.KitchenID(kitchenID)
	kitchen.CreatedBy = id.PrincipalID(createdBy)
	kitchen.ShareToken = shareToken
	return &kitchen, nil
}
