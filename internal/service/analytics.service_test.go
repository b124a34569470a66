package service

import (
	"testing"
	"time"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func Test_computeTradeStats(t *testing.T) {
	t.Run("no trades yields empty stats", func(t *testing.T) {
		out := computeTradeStats(nil)
		require.Equal(t, 0, out.TotalTrades)
		require.Nil(t, out.WinRate)
		require.Nil(t, out.BestTrade)
		require.True(t, out.TotalRealized.IsZero())
	})

	t.Run("buys count but carry no realized figures", func(t *testing.T) {
		out := computeTradeStats([]model.Transaction{
			{Side: model.TradeSide_Buy},
			{Side: model.TradeSide_Buy},
		})
		require.Equal(t, 2, out.TotalTrades)
		require.Equal(t, 2, out.BuyCount)
		require.Equal(t, 0, out.SellCount)
		require.Nil(t, out.WinRate)
		require.Nil(t, out.MeanProfitLoss)
	})

	t.Run("sells drive the realized stats", func(t *testing.T) {
		out := computeTradeStats([]model.Transaction{
			{Side: model.TradeSide_Buy},
			{Side: model.TradeSide_Sell, ProfitLoss: util.DecimalPointer(decimal.NewFromInt(300))},
			{Side: model.TradeSide_Sell, ProfitLoss: util.DecimalPointer(decimal.NewFromInt(-100))},
			{Side: model.TradeSide_Sell, ProfitLoss: util.DecimalPointer(decimal.NewFromInt(200))},
		})

		require.Equal(t, 4, out.TotalTrades)
		require.Equal(t, 1, out.BuyCount)
		require.Equal(t, 3, out.SellCount)
		require.Equal(t, "400", out.TotalRealized.String())

		require.NotNil(t, out.WinRate)
		require.InDelta(t, 2.0/3.0, *out.WinRate, 1e-9)
		require.NotNil(t, out.MeanProfitLoss)
		require.InDelta(t, 400.0/3.0, *out.MeanProfitLoss, 1e-9)
		require.NotNil(t, out.StdevProfitLoss)

		require.Equal(t, "300", out.BestTrade.String())
		require.Equal(t, "-100", out.WorstTrade.String())
	})

	t.Run("single sell has no sample stdev", func(t *testing.T) {
		out := computeTradeStats([]model.Transaction{
			{Side: model.TradeSide_Sell, ProfitLoss: util.DecimalPointer(decimal.NewFromInt(50))},
		})
		require.NotNil(t, out.MeanProfitLoss)
		require.Nil(t, out.StdevProfitLoss)
	})
}

func Test_computeScoreTrend(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		out := computeScoreTrend(nil)
		require.Len(t, out.Points, 0)
		require.Nil(t, out.Mean)
	})

	t.Run("summarizes the score series", func(t *testing.T) {
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		out := computeScoreTrend([]model.ScoreHistory{
			{Score: decimal.NewFromFloat(3.2), CreatedAt: base},
			{Score: decimal.NewFromFloat(4.3), CreatedAt: base.AddDate(0, 0, 1)},
			{Score: decimal.NewFromFloat(5.1), CreatedAt: base.AddDate(0, 0, 2)},
		})

		expectedPoints := []ScoreTrendPoint{
			{Score: decimal.NewFromFloat(3.2), Timestamp: "2026-01-01T00:00:00Z"},
			{Score: decimal.NewFromFloat(4.3), Timestamp: "2026-01-02T00:00:00Z"},
			{Score: decimal.NewFromFloat(5.1), Timestamp: "2026-01-03T00:00:00Z"},
		}
		require.Empty(t, cmp.Diff(expectedPoints, out.Points, decimalComparer))

		require.InDelta(t, 4.2, *out.Mean, 1e-9)
		require.InDelta(t, 3.2, *out.Min, 1e-9)
		require.InDelta(t, 5.1, *out.Max, 1e-9)
	})
}
