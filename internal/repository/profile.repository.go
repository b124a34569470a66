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

type ProfileRepository interface {
	Get(userID uuid.UUID) (*model.UserProfile, error)
	ListUserIDs() ([]uuid.UUID, error)
	Update(tx *sql.Tx, userID uuid.UUID, profile model.UserProfile, columns postgres.ColumnList) (*model.UserProfile, error)
}

type profileRepositoryHandler struct {
	Db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return profileRepositoryHandler{Db: db}
}

func (h profileRepositoryHandler) Get(userID uuid.UUID) (*model.UserProfile, error) {
	query := table.UserProfile.
		SELECT(table.UserProfile.AllColumns).
		WHERE(table.UserProfile.UserID.EQ(postgres.UUID(userID)))

	result := model.UserProfile{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}

	return &result, nil
}

func (h profileRepositoryHandler) ListUserIDs() ([]uuid.UUID, error) {
	query := table.UserProfile.SELECT(table.UserProfile.UserID)

	result := []model.UserProfile{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(result))
	for _, profile := range result {
		userIDs = append(userIDs, profile.UserID)
	}

	return userIDs, nil
}

func (h profileRepositoryHandler) Update(tx *sql.Tx, userID uuid.UUID, profile model.UserProfile, columns postgres.ColumnList) (*model.UserProfile, error) {
	profile.UpdatedAt = time.Now().UTC()
	columns = append(columns, table.UserProfile.UpdatedAt)
	query := table.UserProfile.
		UPDATE(columns).
		WHERE(table.UserProfile.UserID.EQ(postgres.UUID(userID))).
		MODEL(profile).
		RETURNING(table.UserProfile.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.UserProfile{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &out, nil
}
