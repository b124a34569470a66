package service

import (
	"context"
	"time"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/domain"
	"investease/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StartingCash is granted to every new portfolio at signup.
var StartingCash = decimal.NewFromInt(10000)

type PortfolioService interface {
	Create(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error)
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*domain.PortfolioSnapshot, error)
}

type portfolioServiceHandler struct {
	PortfolioRepository   repository.PortfolioRepository
	HoldingRepository     repository.HoldingRepository
	MarketQuoteRepository repository.MarketQuoteRepository
}

func NewPortfolioService(
	portfolioRepository repository.PortfolioRepository,
	holdingRepository repository.HoldingRepository,
	marketQuoteRepository repository.MarketQuoteRepository,
) PortfolioService {
	return portfolioServiceHandler{
		PortfolioRepository:   portfolioRepository,
		HoldingRepository:     holdingRepository,
		MarketQuoteRepository: marketQuoteRepository,
	}
}

func (h portfolioServiceHandler) Create(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error) {
	return h.PortfolioRepository.Create(nil, model.Portfolio{
		UserID: userID,
		Cash:   StartingCash,
	})
}

func (h portfolioServiceHandler) GetSnapshot(ctx context.Context, userID uuid.UUID) (*domain.PortfolioSnapshot, error) {
	portfolio, err := h.PortfolioRepository.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	holdingModels, err := h.HoldingRepository.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(holdingModels))
	holdings := make([]domain.Holding, 0, len(holdingModels))
	for _, holding := range holdingModels {
		symbols = append(symbols, holding.Symbol)
		holdings = append(holdings, domain.Holding{
			Symbol:       holding.Symbol,
			Quantity:     holding.Quantity,
			AveragePrice: holding.AveragePrice,
		})
	}

	quoteModels, err := h.MarketQuoteRepository.GetMany(symbols)
	if err != nil {
		return nil, err
	}
	quotes := make(map[string]domain.Quote, len(quoteModels))
	for symbol, quote := range quoteModels {
		quotes[symbol] = domain.Quote{
			Symbol:        quote.Symbol,
			Price:         quote.Price,
			Change:        quote.Change,
			ChangePercent: quote.ChangePercent,
		}
	}

	snapshot := domain.BuildSnapshot(portfolio.Cash, holdings, quotes, time.Now().UTC())
	return &snapshot, nil
}
