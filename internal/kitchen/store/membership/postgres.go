package membership

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

// PostgresStore persists memberships in PostgreSQL. The
// memberships_kitchen_principal_key unique constraint is the duplicate
// signal for concurrent invites.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const membershipColumns = `id, kitchen_id, principal_id, is_owner, state, joined_at`

func (s *PostgresStore) Create(ctx context.Context, membership *models.Membership) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO memberships (`+membershipColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(membership.ID), uuid.UUID(membership.KitchenID), uuid.UUID(membership.PrincipalID),
		membership.Owner, string(membership.State), membership.JoinedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, membershipID id.MembershipID) (*models.Membership, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`,
		uuid.UUID(membershipID))
	return scanMembership(row)
}

func (s *PostgresStore) FindByKitchenAndPrincipal(ctx context.Context, kitchenID id.KitchenID, principalID id.PrincipalID) (*models.Membership, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE kitchen_id = $1 AND principal_id = $2`,
		uuid.UUID(kitchenID), uuid.UUID(principalID))
	return scanMembership(row)
}

func (s *PostgresStore) ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Membership, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE kitchen_id = $1 ORDER BY joined_at`,
		uuid.UUID(kitchenID))
	if err != nil {
		return nil, fmt.Errorf("list memberships by kitchen: %w", err)
	}
	defer rows.Close()
	return scanMemberships(rows)
}

func (s *PostgresStore) ListByPrincipal(ctx context.Context, principalID id.PrincipalID) ([]*models.Membership, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE principal_id = $1 ORDER BY joined_at`,
		uuid.UUID(principalID))
	if err != nil {
		return nil, fmt.Errorf("list memberships by principal: %w", err)
	}
	defer rows.Close()
	return scanMemberships(rows)
}

func (s *PostgresStore) Update(ctx context.Context, membership *models.Membership) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE memberships SET is_owner = $2, state = $3, joined_at = $4 WHERE id = $1`,
		uuid.UUID(membership.ID), membership.Owner, string(membership.State), membership.JoinedAt)
	if err != nil {
		return fmt.Errorf("update membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, membershipID id.MembershipID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, uuid.UUID(membershipID))
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// DeleteByKitchen removes all memberships of a kitchen. Usually a no-op here
// because the schema's ON DELETE CASCADE has already run; it keeps the
// backends interchangeable behind the service interface.
func (s *PostgresStore) DeleteByKitchen(ctx context.Context, kitchenID id.KitchenID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM memberships WHERE kitchen_id = $1`, uuid.UUID(kitchenID)); err != nil {
		return fmt.Errorf("delete memberships by kitchen: %w", err)
	}
	return nil
}

func scanMembership(row pgx.Row) (*models.Membership, error) {
	var (
		m           models.Membership
		membershipID, kitchenID, principalID uuid.UUID
		state       string
	)
	err := row.Scan(&membershipID, &kitchenID, &principalID, &m.Owner, &state, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan membership: %w", err)
	}
	m.ID = id.MembershipID(membershipID)
	m.KitchenID = id.KitchenID(kitchenID)
	m.PrincipalID = id.PrincipalID(principalID)
	m.State = models.InviteState(state)
	return &m, nil
}

func scanMemberships(rows pgx.Rows) ([]*models.Membership, error) {
	var result []*models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
