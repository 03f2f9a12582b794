package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// PostgresRegistry is the real-backend substitution point for the seeded
// registry. Credentials are stored bcrypt-hashed instead of compared as
// plaintext; the session manager's control flow is identical either way.
type PostgresRegistry struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

// NewPostgresRegistry returns a Postgres-backed registry.
func NewPostgresRegistry(pool *pgxpool.Pool, bcryptCost int) *PostgresRegistry {
	return &PostgresRegistry{pool: pool, bcryptCost: bcryptCost}
}

func (r *PostgresRegistry) Find(ctx context.Context, email, password string) (*domain.Identity, error) {
	const query = `
        SELECT id, name, email, role, department, is_premium, password_hash
        FROM identities WHERE email=$1`

	var (
		identity domain.Identity
		hash     string
	)
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&identity.ID,
		&identity.Name,
		&identity.Email,
		&identity.Role,
		&identity.Department,
		&identity.IsPremium,
		&hash,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}

	if err := comparePassword(hash, password); err != nil {
		return nil, ErrIdentityNotFound
	}
	return &identity, nil
}

func (r *PostgresRegistry) Exists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM identities WHERE email=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRegistry) Add(ctx context.Context, identity *domain.Identity, password string) error {
	hash, err := hashPassword(password, r.bcryptCost)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO identities (id, name, email, role, department, is_premium, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (email) DO NOTHING`

	cmd, err := r.pool.Exec(ctx, query,
		identity.ID,
		identity.Name,
		identity.Email,
		identity.Role,
		identity.Department,
		identity.IsPremium,
		hash,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (r *PostgresRegistry) List(ctx context.Context) ([]*domain.Identity, error) {
	const query = `
        SELECT id, name, email, role, department, is_premium
        FROM identities ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var identities []*domain.Identity
	for rows.Next() {
		var identity domain.Identity
		if err := rows.Scan(
			&identity.ID,
			&identity.Name,
			&identity.Email,
			&identity.Role,
			&identity.Department,
			&identity.IsPremium,
		); err != nil {
			return nil, err
		}
		identities = append(identities, &identity)
	}
	return identities, rows.Err()
}
