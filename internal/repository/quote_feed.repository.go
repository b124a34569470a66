package repository

import (
	"fmt"
	"time"

	"investease/internal/db/models/postgres/public/model"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// QuoteFeedRepository wraps the external market data provider. Quotes are
// trusted input; nothing in this service writes back to the provider.
type QuoteFeedRepository interface {
	GetQuote(symbol string) (*model.MarketQuote, error)
}

type quoteFeedRepositoryHandler struct{}

func NewQuoteFeedRepository() QuoteFeedRepository {
	return quoteFeedRepositoryHandler{}
}

func (h quoteFeedRepositoryHandler) GetQuote(symbol string) (*model.MarketQuote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}

	return &model.MarketQuote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(q.RegularMarketPrice),
		Change:        decimal.NewFromFloat(q.RegularMarketChange),
		ChangePercent: decimal.NewFromFloat(q.RegularMarketChangePercent),
		UpdatedAt:     time.Now().UTC(),
	}, nil
}
