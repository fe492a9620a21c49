package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Create(ctx context.Context, app model.Application) error {
	var asked []byte
	if len(app.AskedQuestions) > 0 {
		var err error
		asked, err = json.Marshal(app.AskedQuestions)
		if err != nil {
			return fmt.Errorf("encode asked questions: %w", err)
		}
	}

	var videoPath *string
	if app.VideoPath != "" {
		videoPath = &app.VideoPath
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO applications
		 (id, job_id, candidate_name, email, phone, comments, resume_path, video_path, asked_questions, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		app.ID, app.JobID, app.CandidateName, app.Email, app.Phone, app.Comments,
		app.ResumePath, videoPath, asked, app.Status, app.AppliedAt)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (model.Application, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx,
		`SELECT id, job_id, candidate_name, email, phone, comments, resume_path, video_path, asked_questions, status, applied_at
		 FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Application{}, model.ErrApplicationNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("find application: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]model.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, job_id, candidate_name, email, phone, comments, resume_path, video_path, asked_questions, status, applied_at
		 FROM applications ORDER BY applied_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]model.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrApplicationNotFound
	}
	return nil
}

func scanApplication(row pgx.Row) (model.Application, error) {
	var (
		app       model.Application
		videoPath *string
		asked     []byte
	)
	err := row.Scan(&app.ID, &app.JobID, &app.CandidateName, &app.Email, &app.Phone,
		&app.Comments, &app.ResumePath, &videoPath, &asked, &app.Status, &app.AppliedAt)
	if err != nil {
		return model.Application{}, err
	}

	if videoPath != nil {
		app.VideoPath = *videoPath
	}
	if len(asked) > 0 {
		if err := json.Unmarshal(asked, &app.AskedQuestions); err != nil {
			return model.Application{}, fmt.Errorf("decode asked questions: %w", err)
		}
	}
	return app, nil
}
