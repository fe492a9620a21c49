package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) Create(ctx context.Context, q model.Question) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO questions (id, role_id, text, duration) VALUES ($1, $2, $3, $4)`,
		q.ID, q.RoleID, q.Text, q.Duration)
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx,
		`SELECT id, role_id, text, duration FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.RoleID, &q.Text, &q.Duration)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Question{}, model.ErrQuestionNotFound
	}
	if err != nil {
		return model.Question{}, fmt.Errorf("find question: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) FindByRoleID(ctx context.Context, roleID string) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, role_id, text, duration FROM questions WHERE role_id = $1 ORDER BY id`, roleID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]model.Question, 0)
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.RoleID, &q.Text, &q.Duration); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) Update(ctx context.Context, q model.Question) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE questions SET text = $2, duration = $3 WHERE id = $1`,
		q.ID, q.Text, q.Duration)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) DeleteByRoleID(ctx context.Context, roleID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE role_id = $1`, roleID)
	if err != nil {
		return fmt.Errorf("delete questions for role: %w", err)
	}
	return nil
}
