package service

import (
	"context"
	"database/sql"
	"fmt"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/db/models/postgres/public/table"
	"investease/internal/domain"
	"investease/internal/repository"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeService interface {
	ExecuteBuy(ctx context.Context, input TradeInput) (*model.Transaction, error)
	ExecuteSell(ctx context.Context, input TradeInput) (*model.Transaction, error)
}

type TradeInput struct {
	UserID   uuid.UUID
	Symbol   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

type tradeServiceHandler struct {
	Db                    *sql.DB
	PortfolioRepository   repository.PortfolioRepository
	HoldingRepository     repository.HoldingRepository
	TransactionRepository repository.TransactionRepository
}

func NewTradeService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	holdingRepository repository.HoldingRepository,
	transactionRepository repository.TransactionRepository,
) TradeService {
	return tradeServiceHandler{
		Db:                    db,
		PortfolioRepository:   portfolioRepository,
		HoldingRepository:     holdingRepository,
		TransactionRepository: transactionRepository,
	}
}

func validateOrder(input TradeInput) error {
	if input.Symbol == "" {
		return domain.ErrInvalidOrder{Reason: "symbol is required"}
	}
	if !input.Quantity.IsPositive() {
		return domain.ErrInvalidOrder{Reason: fmt.Sprintf("quantity must be positive, got %s", input.Quantity)}
	}
	if !input.Price.IsPositive() {
		return domain.ErrInvalidOrder{Reason: fmt.Sprintf("price must be positive, got %s", input.Price)}
	}
	return nil
}

func (h tradeServiceHandler) ExecuteBuy(ctx context.Context, input TradeInput) (*model.Transaction, error) {
	if err := validateOrder(input); err != nil {
		return nil, err
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin trade transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.executeBuy(tx, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit buy: %w", err)
	}

	return inserted, nil
}

// executeBuy runs inside a transaction holding the portfolio row lock, so
// state read here is authoritative until commit.
func (h tradeServiceHandler) executeBuy(tx *sql.Tx, input TradeInput) (*model.Transaction, error) {
	portfolio, err := h.PortfolioRepository.GetForUpdate(tx, input.UserID)
	if err != nil {
		return nil, err
	}

	cost := input.Quantity.Mul(input.Price)
	if cost.GreaterThan(portfolio.Cash) {
		return nil, domain.ErrInsufficientFunds{Required: cost, Available: portfolio.Cash}
	}

	holding, err := h.HoldingRepository.Get(tx, input.UserID, input.Symbol)
	if err != nil {
		return nil, err
	}

	if holding == nil {
		_, err = h.HoldingRepository.Add(tx, model.Holding{
			UserID:       input.UserID,
			Symbol:       input.Symbol,
			Quantity:     input.Quantity,
			AveragePrice: input.Price,
		})
		if err != nil {
			return nil, err
		}
	} else {
		newQuantity := holding.Quantity.Add(input.Quantity)
		// weighted average cost basis across all buys of the symbol
		newAveragePrice := holding.Quantity.Mul(holding.AveragePrice).
			Add(cost).
			Div(newQuantity)

		holding.Quantity = newQuantity
		holding.AveragePrice = newAveragePrice
		_, err = h.HoldingRepository.Update(tx, holding.HoldingID, *holding, postgres.ColumnList{
			table.Holding.Quantity,
			table.Holding.AveragePrice,
		})
		if err != nil {
			return nil, err
		}
	}

	portfolio.Cash = portfolio.Cash.Sub(cost)
	_, err = h.PortfolioRepository.Update(tx, portfolio.PortfolioID, *portfolio, postgres.ColumnList{
		table.Portfolio.Cash,
	})
	if err != nil {
		return nil, err
	}

	return h.TransactionRepository.Add(tx, model.Transaction{
		UserID:      input.UserID,
		Symbol:      input.Symbol,
		Side:        model.TradeSide_Buy,
		Quantity:    input.Quantity,
		Price:       input.Price,
		TotalAmount: cost,
		ProfitLoss:  nil,
	})
}

func (h tradeServiceHandler) ExecuteSell(ctx context.Context, input TradeInput) (*model.Transaction, error) {
	if err := validateOrder(input); err != nil {
		return nil, err
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin trade transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.executeSell(tx, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sell: %w", err)
	}

	return inserted, nil
}

func (h tradeServiceHandler) executeSell(tx *sql.Tx, input TradeInput) (*model.Transaction, error) {
	portfolio, err := h.PortfolioRepository.GetForUpdate(tx, input.UserID)
	if err != nil {
		return nil, err
	}

	holding, err := h.HoldingRepository.Get(tx, input.UserID, input.Symbol)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, domain.ErrNoPosition{Symbol: input.Symbol}
	}
	if input.Quantity.GreaterThan(holding.Quantity) {
		return nil, domain.ErrInsufficientShares{
			Symbol:    input.Symbol,
			Requested: input.Quantity,
			Owned:     holding.Quantity,
		}
	}

	// realized against average cost; the basis of remaining shares is untouched
	profitLoss := input.Price.Sub(holding.AveragePrice).Mul(input.Quantity)
	proceeds := input.Quantity.Mul(input.Price)

	remaining := holding.Quantity.Sub(input.Quantity)
	if remaining.IsZero() {
		if err := h.HoldingRepository.Delete(tx, holding.HoldingID); err != nil {
			return nil, err
		}
	} else {
		holding.Quantity = remaining
		_, err = h.HoldingRepository.Update(tx, holding.HoldingID, *holding, postgres.ColumnList{
			table.Holding.Quantity,
		})
		if err != nil {
			return nil, err
		}
	}

	portfolio.Cash = portfolio.Cash.Add(proceeds)
	_, err = h.PortfolioRepository.Update(tx, portfolio.PortfolioID, *portfolio, postgres.ColumnList{
		table.Portfolio.Cash,
	})
	if err != nil {
		return nil, err
	}

	return h.TransactionRepository.Add(tx, model.Transaction{
		UserID:      input.UserID,
		Symbol:      input.Symbol,
		Side:        model.TradeSide_Sell,
		Quantity:    input.Quantity,
		Price:       input.Price,
		TotalAmount: proceeds,
		ProfitLoss:  &profitLoss,
	})
}
