package repository

import (
	"database/sql"
	"fmt"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// MarketQuoteRepository reads the quote table maintained by the out-of-band
// refresh job. The trade and scoring engines never write to it.
type MarketQuoteRepository interface {
	GetMany(symbols []string) (map[string]model.MarketQuote, error)
	ListSymbols() ([]string, error)
	Upsert(quotes []model.MarketQuote) error
}

type marketQuoteRepositoryHandler struct {
	Db *sql.DB
}

func NewMarketQuoteRepository(db *sql.DB) MarketQuoteRepository {
	return marketQuoteRepositoryHandler{Db: db}
}

func (h marketQuoteRepositoryHandler) GetMany(symbols []string) (map[string]model.MarketQuote, error) {
	if len(symbols) == 0 {
		return map[string]model.MarketQuote{}, nil
	}

	expressions := make([]postgres.Expression, 0, len(symbols))
	for _, symbol := range symbols {
		expressions = append(expressions, postgres.String(symbol))
	}

	query := table.MarketQuote.
		SELECT(table.MarketQuote.AllColumns).
		WHERE(table.MarketQuote.Symbol.IN(expressions...))

	result := []model.MarketQuote{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get market quotes: %w", err)
	}

	out := make(map[string]model.MarketQuote, len(result))
	for _, quote := range result {
		out[quote.Symbol] = quote
	}

	return out, nil
}

func (h marketQuoteRepositoryHandler) ListSymbols() ([]string, error) {
	query := table.MarketQuote.
		SELECT(table.MarketQuote.Symbol).
		ORDER_BY(table.MarketQuote.Symbol.ASC())

	result := []model.MarketQuote{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list quoted symbols: %w", err)
	}

	symbols := make([]string, 0, len(result))
	for _, quote := range result {
		symbols = append(symbols, quote.Symbol)
	}

	return symbols, nil
}

func (h marketQuoteRepositoryHandler) Upsert(quotes []model.MarketQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	query := table.MarketQuote.
		INSERT(table.MarketQuote.MutableColumns).
		MODELS(quotes).
		ON_CONFLICT(table.MarketQuote.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.MarketQuote.Price.SET(table.MarketQuote.EXCLUDED.Price),
				table.MarketQuote.Change.SET(table.MarketQuote.EXCLUDED.Change),
				table.MarketQuote.ChangePercent.SET(table.MarketQuote.EXCLUDED.ChangePercent),
				table.MarketQuote.UpdatedAt.SET(table.MarketQuote.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert market quotes: %w", err)
	}

	return nil
}
