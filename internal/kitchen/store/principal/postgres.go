package principal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// PostgresDirectory reads the principals mirror table maintained by the
// identity subsystem.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

func (d *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*models.Principal, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT id, display_name, email FROM principals WHERE lower(email) = lower($1)`, email)
	return scanPrincipal(row)
}

func (d *PostgresDirectory) FindByID(ctx context.Context, principalID id.PrincipalID) (*models.Principal, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT id, display_name, email FROM principals WHERE id = $1`, uuid.UUID(principalID))
	return scanPrincipal(row)
}

func scanPrincipal(row pgx.Row) (*models.Principal, error) {
	var (
		p           models.Principal
		principalID uuid.UUID
	)
	if err := row.Scan(&principalID, &p.DisplayName, &p.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan principal: %w", err)
	}
	p.ID = id.PrincipalID(principalID)
	return &p, nil
}
