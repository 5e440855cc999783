package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const listColumns = `id, kitchen_id, name, created_by, created_at`

func (s *PostgresStore) Create(ctx context.Context, list *models.ShoppingList) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO shopping_lists (`+listColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(list.ID), uuid.UUID(list.KitchenID), list.Name, uuid.UUID(list.CreatedBy), list.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert shopping list: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, listID id.ListID) (*models.ShoppingList, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+listColumns+` FROM shopping_lists WHERE id = $1`, uuid.UUID(listID))
	return scanList(row)
}

func (s *PostgresStore) ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.ShoppingList, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+listColumns+` FROM shopping_lists WHERE kitchen_id = $1 ORDER BY name`,
		uuid.UUID(kitchenID))
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	defer rows.Close()

	var result []*models.ShoppingList
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, list)
	}
	return result, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, list *models.ShoppingList) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE shopping_lists SET name = $2 WHERE id = $1`,
		uuid.UUID(list.ID), list.Name)
	if err != nil {
		return fmt.Errorf("update shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, listID id.ListID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1`, uuid.UUID(listID))
	if err != nil {
		return fmt.Errorf("delete shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanList(row pgx.Row) (*models.ShoppingList, error) {
	var (
		list      models.ShoppingList
		listID    uuid.UUID
		kitchenID uuid.UUID
		createdBy uuid.UUID
	)
	err := row.Scan(&listID, &kitchenID, &list.Name, &createdBy, &list.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan shopping list: %w", err)
	}
	list.ID = id.ListID(listID)
	list.KitchenID = id.KitchenID(kitchenID)
	list.CreatedBy = id.PrincipalID(createdBy)
	return &list, nil
}
