package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

const roleColumns = `id, job_title, department, position_details, is_active, video_required, created_at, updated_at`

func scanRole(row pgx.Row) (model.JobRole, error) {
	var jr model.JobRole
	err := row.Scan(&jr.ID, &jr.JobTitle, &jr.Department, &jr.PositionDetails,
		&jr.IsActive, &jr.VideoRequired, &jr.CreatedAt, &jr.UpdatedAt)
	return jr, err
}

func (r *RoleRepository) Create(ctx context.Context, jr model.JobRole) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO job_roles (id, job_title, department, position_details, is_active, video_required, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		jr.ID, jr.JobTitle, jr.Department, jr.PositionDetails, jr.IsActive, jr.VideoRequired, jr.CreatedAt, jr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create job role: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (model.JobRole, error) {
	jr, err := scanRole(r.pool.QueryRow(ctx,
		`SELECT `+roleColumns+` FROM job_roles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.JobRole{}, model.ErrRoleNotFound
	}
	if err != nil {
		return model.JobRole{}, fmt.Errorf("find job role: %w", err)
	}
	return jr, nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]model.JobRole, error) {
	return r.query(ctx, `SELECT `+roleColumns+` FROM job_roles ORDER BY created_at DESC`)
}

func (r *RoleRepository) FindActive(ctx context.Context) ([]model.JobRole, error) {
	return r.query(ctx, `SELECT `+roleColumns+` FROM job_roles WHERE is_active ORDER BY created_at DESC`)
}

func (r *RoleRepository) query(ctx context.Context, sql string) ([]model.JobRole, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list job roles: %w", err)
	}
	defer rows.Close()

	roles := make([]model.JobRole, 0)
	for rows.Next() {
		jr, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job role: %w", err)
		}
		roles = append(roles, jr)
	}
	return roles, rows.Err()
}

func (r *RoleRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_roles WHERE job_title = $1)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check job title exists: %w", err)
	}
	return exists, nil
}

func (r *RoleRepository) Update(ctx context.Context, jr model.JobRole) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE job_roles
		 SET job_title = $2, department = $3, position_details = $4, is_active = $5, video_required = $6, updated_at = $7
		 WHERE id = $1`,
		jr.ID, jr.JobTitle, jr.Department, jr.PositionDetails, jr.IsActive, jr.VideoRequired, jr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update job role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRoleNotFound
	}
	return nil
}
