package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type HoldingRepository interface {
	// Get returns (nil, nil) when the user holds no shares of the symbol.
	Get(tx *sql.Tx, userID uuid.UUID, symbol string) (*model.Holding, error)
	ListForUser(userID uuid.UUID) ([]model.Holding, error)
	ListHeldSymbols() ([]string, error)
	Add(tx *sql.Tx, holding model.Holding) (*model.Holding, error)
	Update(tx *sql.Tx, holdingID uuid.UUID, holding model.Holding, columns postgres.ColumnList) (*model.Holding, error)
	Delete(tx *sql.Tx, holdingID uuid.UUID) error
}

type holdingRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingRepository(db *sql.DB) HoldingRepository {
	return holdingRepositoryHandler{Db: db}
}

func (h holdingRepositoryHandler) Get(tx *sql.Tx, userID uuid.UUID, symbol string) (*model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(
			postgres.AND(
				table.Holding.UserID.EQ(postgres.UUID(userID)),
				table.Holding.Symbol.EQ(postgres.String(symbol)),
			),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.Holding{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding %s for user %s: %w", symbol, userID, err)
	}

	return &result, nil
}

func (h holdingRepositoryHandler) ListForUser(userID uuid.UUID) ([]model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(table.Holding.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.Holding.Symbol.ASC())

	result := []model.Holding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for user %s: %w", userID, err)
	}

	return result, nil
}

func (h holdingRepositoryHandler) ListHeldSymbols() ([]string, error) {
	query := table.Holding.
		SELECT(table.Holding.Symbol).
		DISTINCT().
		ORDER_BY(table.Holding.Symbol.ASC())

	result := []model.Holding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list held symbols: %w", err)
	}

	symbols := make([]string, 0, len(result))
	for _, holding := range result {
		symbols = append(symbols, holding.Symbol)
	}

	return symbols, nil
}

func (h holdingRepositoryHandler) Add(tx *sql.Tx, holding model.Holding) (*model.Holding, error) {
	holding.CreatedAt = time.Now().UTC()
	holding.UpdatedAt = time.Now().UTC()
	query := table.Holding.
		INSERT(table.Holding.MutableColumns).
		MODEL(holding).
		RETURNING(table.Holding.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Holding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Update(tx *sql.Tx, holdingID uuid.UUID, holding model.Holding, columns postgres.ColumnList) (*model.Holding, error) {
	holding.UpdatedAt = time.Now().UTC()
	columns = append(columns, table.Holding.UpdatedAt)
	query := table.Holding.
		UPDATE(columns).
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID))).
		MODEL(holding).
		RETURNING(table.Holding.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Holding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Delete(tx *sql.Tx, holdingID uuid.UUID) error {
	query := table.Holding.
		DELETE().
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	return nil
}
