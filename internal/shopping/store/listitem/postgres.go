package listitem

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/platform/postgres"
	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// PostgresStore persists list items. The list_items_scope_key unique
// constraint is the duplicate signal for concurrent adds.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const itemColumns = `id, list_id, ingredient_id, quantity, unit, note, checked, checked_by, sort_order`

func (s *PostgresStore) Create(ctx context.Context, item *models.ListItem) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO list_items (`+itemColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.UUID(item.ID), uuid.UUID(item.ListID), uuid.UUID(item.IngredientID),
		item.Quantity, item.Unit, item.Note, item.Checked, optionalPrincipal(item.CheckedBy), item.SortOrder)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert list item: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, itemID id.ListItemID) (*models.ListItem, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM list_items WHERE id = $1`, uuid.UUID(itemID))
	return scanItem(row)
}

func (s *PostgresStore) ListByList(ctx context.Context, listID id.ListID) ([]*models.ListItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM list_items WHERE list_id = $1 ORDER BY sort_order`,
		uuid.UUID(listID))
	if err != nil {
		return nil, fmt.Errorf("list list items: %w", err)
	}
	defer rows.Close()

	var result []*models.ListItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *PostgresStore) MaxSortOrder(ctx context.Context, listID id.ListID) (int, error) {
	var max int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) FROM list_items WHERE list_id = $1`,
		uuid.UUID(listID)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max sort order: %w", err)
	}
	return max, nil
}

func (s *PostgresStore) Update(ctx context.Context, item *models.ListItem) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE list_items SET quantity = $2, unit = $3, note = $4, checked = $5, checked_by = $6, sort_order = $7 WHERE id = $1`,
		uuid.UUID(item.ID), item.Quantity, item.Unit, item.Note, item.Checked, optionalPrincipal(item.CheckedBy), item.SortOrder)
	if err != nil {
		return fmt.Errorf("update list item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, itemID id.ListItemID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM list_items WHERE id = $1`, uuid.UUID(itemID))
	if err != nil {
		return fmt.Errorf("delete list item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func optionalPrincipal(principalID *id.PrincipalID) *uuid.UUID {
	if principalID == nil {
		return nil
	}
	raw := uuid.UUID(*principalID)
	return &raw
}

func scanItem(row pgx.Row) (*models.ListItem, error) {
	var (
		item         models.ListItem
		itemID       uuid.UUID
		listID       uuid.UUID
		ingredientID uuid.UUID
		checkedBy    *uuid.UUID
	)
	err := row.Scan(&itemID, &listID, &ingredientID, &item.Quantity, &item.Unit, &item.Note,
		&item.Checked, &checkedBy, &item.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan list item: %w", err)
	}
	item.ID = id.ListItemID(itemID)
	item.ListID = id.ListID(listID)
	item.IngredientID = id.IngredientID(ingredientID)
	if checkedBy != nil {
		principalID := id.PrincipalID(*checkedBy)
		item.CheckedBy = &principalID
	}
	return &item, nil
}
