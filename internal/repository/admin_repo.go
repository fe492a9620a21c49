package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// FindByEmail matches the email exactly as stored; lookups are
// case-sensitive on purpose, tokens carry the subject verbatim.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (model.Admin, error) {
	var a model.Admin
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Admin{}, model.ErrAdminNotFound
	}
	if err != nil {
		return model.Admin{}, fmt.Errorf("find admin by email: %w", err)
	}
	return a, nil
}

func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check admin exists: %w", err)
	}
	return exists, nil
}

func (r *AdminRepository) Create(ctx context.Context, a model.Admin) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admins (id, name, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Role, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
