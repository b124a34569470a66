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

type ScoreHistoryRepository interface {
	Add(tx *sql.Tx, entry model.ScoreHistory) (*model.ScoreHistory, error)
	List(userID uuid.UUID) ([]model.ScoreHistory, error)
}

type scoreHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewScoreHistoryRepository(db *sql.DB) ScoreHistoryRepository {
	return scoreHistoryRepositoryHandler{Db: db}
}

func (h scoreHistoryRepositoryHandler) Add(tx *sql.Tx, entry model.ScoreHistory) (*model.ScoreHistory, error) {
	entry.CreatedAt = time.Now().UTC()
	query := table.ScoreHistory.
		INSERT(table.ScoreHistory.MutableColumns).
		MODEL(entry).
		RETURNING(table.ScoreHistory.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.ScoreHistory{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert score history entry: %w", err)
	}

	return &out, nil
}

func (h scoreHistoryRepositoryHandler) List(userID uuid.UUID) ([]model.ScoreHistory, error) {
	query := table.ScoreHistory.
		SELECT(table.ScoreHistory.AllColumns).
		WHERE(table.ScoreHistory.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.ScoreHistory.CreatedAt.ASC())

	result := []model.ScoreHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list score history for user %s: %w", userID, err)
	}

	return result, nil
}
