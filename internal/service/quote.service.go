package service

import (
	"context"
	"fmt"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/logger"
	"investease/internal/repository"
)

type QuoteService interface {
	// RefreshQuotes fetches fresh quotes from the external feed and
	// overwrites the quote table. With no symbols given it refreshes every
	// held symbol plus everything already quoted.
	RefreshQuotes(ctx context.Context, symbols []string) (*RefreshQuotesResult, error)
	ListQuotes(ctx context.Context, symbols []string) ([]model.MarketQuote, error)
}

type RefreshQuotesResult struct {
	Updated int
	Failed  int
}

type quoteServiceHandler struct {
	MarketQuoteRepository repository.MarketQuoteRepository
	HoldingRepository     repository.HoldingRepository
	QuoteFeedRepository   repository.QuoteFeedRepository
}

func NewQuoteService(
	marketQuoteRepository repository.MarketQuoteRepository,
	holdingRepository repository.HoldingRepository,
	quoteFeedRepository repository.QuoteFeedRepository,
) QuoteService {
	return quoteServiceHandler{
		MarketQuoteRepository: marketQuoteRepository,
		HoldingRepository:     holdingRepository,
		QuoteFeedRepository:   quoteFeedRepository,
	}
}

func (h quoteServiceHandler) RefreshQuotes(ctx context.Context, symbols []string) (*RefreshQuotesResult, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		var err error
		symbols, err = h.refreshUniverse()
		if err != nil {
			return nil, err
		}
	}

	quotes := make([]model.MarketQuote, 0, len(symbols))
	result := &RefreshQuotesResult{}
	for _, symbol := range symbols {
		quote, err := h.QuoteFeedRepository.GetQuote(symbol)
		if err != nil {
			// a single bad symbol must not block the rest of the refresh
			log.Warnf("skipping quote refresh for %s: %v", symbol, err)
			result.Failed++
			continue
		}
		quotes = append(quotes, *quote)
	}

	if err := h.MarketQuoteRepository.Upsert(quotes); err != nil {
		return nil, err
	}
	result.Updated = len(quotes)

	if result.Failed > 0 && result.Updated == 0 {
		return result, fmt.Errorf("failed to refresh all %d quotes", result.Failed)
	}

	return result, nil
}

func (h quoteServiceHandler) refreshUniverse() ([]string, error) {
	held, err := h.HoldingRepository.ListHeldSymbols()
	if err != nil {
		return nil, err
	}

	quoted, err := h.MarketQuoteRepository.ListSymbols()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	symbols := []string{}
	for _, symbol := range append(held, quoted...) {
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}

	return symbols, nil
}

func (h quoteServiceHandler) ListQuotes(ctx context.Context, symbols []string) ([]model.MarketQuote, error) {
	quoteMap, err := h.MarketQuoteRepository.GetMany(symbols)
	if err != nil {
		return nil, err
	}

	quotes := make([]model.MarketQuote, 0, len(quoteMap))
	for _, symbol := range symbols {
		if quote, ok := quoteMap[symbol]; ok {
			quotes = append(quotes, quote)
		}
	}

	return quotes, nil
}
