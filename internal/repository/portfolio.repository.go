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

type PortfolioRepository interface {
	Create(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error)
	GetByUserID(userID uuid.UUID) (*model.Portfolio, error)
	// GetForUpdate locks the user's portfolio row for the duration of the
	// transaction, serializing concurrent trades for the same user.
	GetForUpdate(tx *sql.Tx, userID uuid.UUID) (*model.Portfolio, error)
	Update(tx *sql.Tx, portfolioID uuid.UUID, p model.Portfolio, columns postgres.ColumnList) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Create(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = time.Now().UTC()
	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns).
		MODEL(p).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) GetByUserID(userID uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.UserID.EQ(postgres.UUID(userID)))

	result := model.Portfolio{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio for user %s: %w", userID, err)
	}

	return &result, nil
}

func (h portfolioRepositoryHandler) GetForUpdate(tx *sql.Tx, userID uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.UserID.EQ(postgres.UUID(userID))).
		FOR(postgres.UPDATE())

	result := model.Portfolio{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to lock portfolio for user %s: %w", userID, err)
	}

	return &result, nil
}

func (h portfolioRepositoryHandler) Update(tx *sql.Tx, portfolioID uuid.UUID, p model.Portfolio, columns postgres.ColumnList) (*model.Portfolio, error) {
	p.UpdatedAt = time.Now().UTC()
	columns = append(columns, table.Portfolio.UpdatedAt)
	query := table.Portfolio.
		UPDATE(columns).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID))).
		MODEL(p).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}

	return &out, nil
}
