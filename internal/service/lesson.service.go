package service

import (
	"context"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/repository"

	"github.com/google/uuid"
)

// LessonService tracks completion only; lesson content is served by the
// frontend and is out of scope here.
type LessonService interface {
	MarkCompleted(ctx context.Context, userID uuid.UUID, lessonID string) error
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]model.LessonProgress, error)
}

type lessonServiceHandler struct {
	LessonProgressRepository repository.LessonProgressRepository
}

func NewLessonService(lessonProgressRepository repository.LessonProgressRepository) LessonService {
	return lessonServiceHandler{LessonProgressRepository: lessonProgressRepository}
}

func (h lessonServiceHandler) MarkCompleted(ctx context.Context, userID uuid.UUID, lessonID string) error {
	return h.LessonProgressRepository.MarkCompleted(nil, userID, lessonID)
}

func (h lessonServiceHandler) ListCompleted(ctx context.Context, userID uuid.UUID) ([]model.LessonProgress, error) {
	return h.LessonProgressRepository.ListCompleted(userID)
}
