package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dtaoOfficial/Interview/internal/mailer"
	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/storage"
)

type applicationStore interface {
	Create(ctx context.Context, app model.Application) error
	FindByID(ctx context.Context, id string) (model.Application, error)
	FindAll(ctx context.Context) ([]model.Application, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

// Submission is one candidate's intake payload. Resume is mandatory;
// Video is nil when the role allows direct submission.
type Submission struct {
	JobID         string
	CandidateName string
	Email         string
	Phone         string
	Comments      string
	Questions     []model.Question
	Resume        io.Reader
	Video         io.Reader
}

type ApplicationService struct {
	apps    applicationStore
	uploads *storage.Uploads
	mail    mailer.Mailer
	hrEmail string
}

func NewApplicationService(apps applicationStore, uploads *storage.Uploads, mail mailer.Mailer, hrEmail string) *ApplicationService {
	return &ApplicationService{apps: apps, uploads: uploads, mail: mail, hrEmail: hrEmail}
}

// Submit stores the uploaded files, persists the application record and
// fires the notification emails. Mail failures are logged and swallowed
// so a flaky relay never loses a submission.
func (s *ApplicationService) Submit(ctx context.Context, sub Submission) (model.Application, error) {
	dir, err := s.uploads.CandidateDir(sub.JobID, sub.Email)
	if err != nil {
		return model.Application{}, err
	}

	resumePath, err := s.uploads.SaveFile(dir, fmt.Sprintf("resume_%s.pdf", uuid.NewString()), sub.Resume)
	if err != nil {
		return model.Application{}, err
	}

	videoPath := ""
	if sub.Video != nil {
		videoPath, err = s.uploads.SaveFile(dir, fmt.Sprintf("interview_%s.webm", uuid.NewString()), sub.Video)
		if err != nil {
			return model.Application{}, err
		}
	}

	app := model.Application{
		ID:             uuid.NewString(),
		JobID:          sub.JobID,
		CandidateName:  sub.CandidateName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Comments:       sub.Comments,
		ResumePath:     resumePath,
		VideoPath:      videoPath,
		AskedQuestions: sub.Questions,
		Status:         model.ApplicationStatusPending,
		AppliedAt:      time.Now().UTC(),
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return model.Application{}, err
	}

	s.notify(ctx, app)
	return app, nil
}

func (s *ApplicationService) notify(ctx context.Context, app model.Application) {
	subject, body := mailer.CandidateConfirmation(app.CandidateName, app.JobID)
	if err := s.mail.Send(ctx, app.Email, subject, body); err != nil {
		slog.Error("candidate confirmation mail failed", "email", app.Email, "error", err)
	}

	subject, body = mailer.HRAlert(app.CandidateName, app.Email, app.Phone, app.JobID, app.VideoPath != "")
	if err := s.mail.Send(ctx, s.hrEmail, subject, body); err != nil {
		slog.Error("hr alert mail failed", "email", s.hrEmail, "error", err)
	}
}

func (s *ApplicationService) List(ctx context.Context) ([]model.Application, error) {
	return s.apps.FindAll(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (model.Application, error) {
	return s.apps.FindByID(ctx, id)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status string) (model.Application, error) {
	if !model.ValidApplicationStatus(status) {
		return model.Application{}, model.ErrInvalidInput
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return model.Application{}, err
	}

	if err := s.apps.UpdateStatus(ctx, id, status); err != nil {
		return model.Application{}, err
	}

	app.Status = status
	return app, nil
}
