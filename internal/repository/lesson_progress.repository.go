package repository

import (
	"database/sql"
	"fmt"
	"time"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// LessonProgressRepository tracks lesson completion only; lesson content is
// delivered elsewhere.
type LessonProgressRepository interface {
	MarkCompleted(tx *sql.Tx, userID uuid.UUID, lessonID string) error
	ListCompleted(userID uuid.UUID) ([]model.LessonProgress, error)
}

type lessonProgressRepositoryHandler struct {
	Db *sql.DB
}

func NewLessonProgressRepository(db *sql.DB) LessonProgressRepository {
	return lessonProgressRepositoryHandler{Db: db}
}

func (h lessonProgressRepositoryHandler) MarkCompleted(tx *sql.Tx, userID uuid.UUID, lessonID string) error {
	entry := model.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		CompletedAt: time.Now().UTC(),
	}
	// completing the same lesson twice is a no-op
	query := table.LessonProgress.
		INSERT(table.LessonProgress.MutableColumns).
		MODEL(entry).
		ON_CONFLICT(table.LessonProgress.UserID, table.LessonProgress.LessonID).
		DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to mark lesson %s completed: %w", lessonID, err)
	}

	return nil
}

func (h lessonProgressRepositoryHandler) ListCompleted(userID uuid.UUID) ([]model.LessonProgress, error) {
	query := table.LessonProgress.
		SELECT(table.LessonProgress.AllColumns).
		WHERE(table.LessonProgress.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.LessonProgress.CompletedAt.ASC())

	result := []model.LessonProgress{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed lessons for user %s: %w", userID, err)
	}

	return result, nil
}
