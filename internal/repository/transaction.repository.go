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

// TransactionRepository is append-only; executed trades are never updated
// or deleted.
type TransactionRepository interface {
	Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error)
	List(userID uuid.UUID, filter TransactionListFilter) ([]model.Transaction, error)
}

type TransactionListFilter struct {
	Symbol *string
	Side   *model.TradeSide
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error) {
	t.CreatedAt = time.Now().UTC()
	query := table.Transaction.
		INSERT(table.Transaction.MutableColumns).
		MODEL(t).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) List(userID uuid.UUID, filter TransactionListFilter) ([]model.Transaction, error) {
	predicate := table.Transaction.UserID.EQ(postgres.UUID(userID))
	if filter.Symbol != nil {
		predicate = predicate.AND(table.Transaction.Symbol.EQ(postgres.String(*filter.Symbol)))
	}
	if filter.Side != nil {
		predicate = predicate.AND(table.Transaction.Side.EQ(postgres.String(filter.Side.String())))
	}

	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		WHERE(predicate).
		ORDER_BY(table.Transaction.CreatedAt.DESC())

	result := []model.Transaction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}

	return result, nil
}
