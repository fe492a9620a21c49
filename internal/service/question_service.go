package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type questionStore interface {
	Create(ctx context.Context, q model.Question) error
	FindByID(ctx context.Context, id string) (model.Question, error)
	FindByRoleID(ctx context.Context, roleID string) ([]model.Question, error)
	Update(ctx context.Context, q model.Question) error
	Delete(ctx context.Context, id string) error
	DeleteByRoleID(ctx context.Context, roleID string) error
}

type QuestionService struct {
	questions questionStore
}

func NewQuestionService(questions questionStore) *QuestionService {
	return &QuestionService{questions: questions}
}

func (s *QuestionService) AddQuestion(ctx context.Context, req model.QuestionRequest) (model.Question, error) {
	if strings.TrimSpace(req.RoleID) == "" || strings.TrimSpace(req.Text) == "" {
		return model.Question{}, model.ErrInvalidInput
	}

	q := model.Question{
		ID:       uuid.NewString(),
		RoleID:   req.RoleID,
		Text:     req.Text,
		Duration: req.Duration,
	}
	if err := s.questions.Create(ctx, q); err != nil {
		return model.Question{}, err
	}
	return q, nil
}

func (s *QuestionService) QuestionsByRole(ctx context.Context, roleID string) ([]model.Question, error) {
	return s.questions.FindByRoleID(ctx, roleID)
}

// UpdateQuestion changes text and duration; a question never moves to a
// different role.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, req model.QuestionRequest) (model.Question, error) {
	existing, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return model.Question{}, err
	}

	existing.Text = req.Text
	existing.Duration = req.Duration

	if err := s.questions.Update(ctx, existing); err != nil {
		return model.Question{}, err
	}
	return existing, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.questions.Delete(ctx, id)
}

func (s *QuestionService) DeleteQuestionsByRole(ctx context.Context, roleID string) error {
	return s.questions.DeleteByRoleID(ctx, roleID)
}
