package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Holding struct {
	Symbol       string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
}

// CostBasis is the total amount paid for the position at average cost.
func (h Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.AveragePrice)
}

type Quote struct {
	Symbol        string
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

type HoldingView struct {
	Symbol       string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal

	// nil when no current quote is available for the symbol. Stale
	// positions stay in the list but are excluded from the aggregates.
	CurrentPrice    *decimal.Decimal
	CurrentValue    *decimal.Decimal
	GainLoss        *decimal.Decimal
	GainLossPercent *decimal.Decimal
	Stale           bool
}

type PortfolioSnapshot struct {
	Cash       decimal.Decimal
	Holdings   []HoldingView
	TotalValue decimal.Decimal
	DayChange  decimal.Decimal
	AsOf       time.Time
}

// BuildSnapshot joins holdings with current quotes. It is the single place
// total value is derived; callers should not re-aggregate per-holding values.
func BuildSnapshot(cash decimal.Decimal, holdings []Holding, quotes map[string]Quote, asOf time.Time) PortfolioSnapshot {
	snapshot := PortfolioSnapshot{
		Cash:       cash,
		Holdings:   make([]HoldingView, 0, len(holdings)),
		TotalValue: cash,
		DayChange:  decimal.Zero,
		AsOf:       asOf,
	}

	for _, holding := range holdings {
		view := HoldingView{
			Symbol:       holding.Symbol,
			Quantity:     holding.Quantity,
			AveragePrice: holding.AveragePrice,
		}

		quote, ok := quotes[holding.Symbol]
		if !ok {
			view.Stale = true
			snapshot.Holdings = append(snapshot.Holdings, view)
			continue
		}

		currentValue := holding.Quantity.Mul(quote.Price)
		gainLoss := currentValue.Sub(holding.CostBasis())

		view.CurrentPrice = &quote.Price
		view.CurrentValue = &currentValue
		view.GainLoss = &gainLoss
		if !holding.CostBasis().IsZero() {
			pct := gainLoss.Div(holding.CostBasis()).Mul(decimal.NewFromInt(100))
			view.GainLossPercent = &pct
		}

		snapshot.TotalValue = snapshot.TotalValue.Add(currentValue)
		snapshot.DayChange = snapshot.DayChange.Add(holding.Quantity.Mul(quote.Change))
		snapshot.Holdings = append(snapshot.Holdings, view)
	}

	sort.Slice(snapshot.Holdings, func(i, j int) bool {
		return snapshot.Holdings[i].Symbol < snapshot.Holdings[j].Symbol
	})

	return snapshot
}
