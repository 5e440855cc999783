package pantryitem

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/pantry/models"
	"larder/internal/platform/postgres"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// PostgresStore persists pantry items. The pantry_items_scope_key unique
// constraint is the duplicate signal for concurrent adds.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const itemColumns = `id, kitchen_id, ingredient_id, quantity, unit, expires_at`

func (s *PostgresStore) Create(ctx context.Context, item *models.PantryItem) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO pantry_items (`+itemColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(item.ID), uuid.UUID(item.KitchenID), uuid.UUID(item.IngredientID),
		item.Quantity, item.Unit, item.ExpiresAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert pantry item: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, itemID id.PantryItemID) (*models.PantryItem, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM pantry_items WHERE id = $1`, uuid.UUID(itemID))
	return scanItem(row)
}

func (s *PostgresStore) ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.PantryItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM pantry_items WHERE kitchen_id = $1`,
		uuid.UUID(kitchenID))
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	defer rows.Close()

	var result []*models.PantryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, item *models.PantryItem) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE pantry_items SET quantity = $2, unit = $3, expires_at = $4 WHERE id = $1`,
		uuid.UUID(item.ID), item.Quantity, item.Unit, item.ExpiresAt)
	if err != nil {
		return fmt.Errorf("update pantry item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, itemID id.PantryItemID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM pantry_items WHERE id = $1`, uuid.UUID(itemID))
	if err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*models.PantryItem, error) {
	var (
		item         models.PantryItem
		itemID       uuid.UUID
		kitchenID    uuid.UUID
		ingredientID uuid.UUID
	)
	err := row.Scan(&itemID, &kitchenID, &ingredientID, &item.Quantity, &item.Unit, &item.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan pantry item: %w", err)
	}
	item.ID = id.PantryItemID(itemID)
	item.KitchenID = id.KitchenID(kitchenID)
	item.IngredientID = id.IngredientID(ingredientID)
	return &item, nil
}
