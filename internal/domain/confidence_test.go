package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ComputeScoreBreakdown(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no activity returns the base score untouched", func(t *testing.T) {
		score := ComputeScore(ScoreInput{
			AccountCreatedAt: now.AddDate(0, 0, -30),
			Now:              now,
			HeldSymbolCount:  2,
		})
		require.Equal(t, "3.2", score.String())
	})

	t.Run("modifiers stack on the default base", func(t *testing.T) {
		// 1 trade (0.4) + 1 symbol (0.5) + 2 days (0.2) = 1.1 on top of 3.2
		breakdown := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt: now.AddDate(0, 0, -2),
			Now:              now,
			TransactionCount: 1,
			HeldSymbolCount:  1,
		})
		require.Equal(t, "3.2", breakdown.Base.String())
		require.Equal(t, "0.4", breakdown.TradeActivity.String())
		require.Equal(t, "0.5", breakdown.Diversification.String())
		require.Equal(t, "0.2", breakdown.AccountAge.String())
		require.True(t, breakdown.Education.IsZero())
		require.True(t, breakdown.ProfitableTrade.IsZero())
		require.Equal(t, "4.3", breakdown.Final.String())
	})

	t.Run("stored assessment score replaces the default base", func(t *testing.T) {
		base := decimal.NewFromFloat(5.5)
		breakdown := ComputeScoreBreakdown(ScoreInput{
			BaseScore:        &base,
			AccountCreatedAt: now,
			Now:              now,
		})
		require.Equal(t, "5.5", breakdown.Final.String())
	})

	t.Run("trade activity caps at five trades", func(t *testing.T) {
		breakdown := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt: now,
			Now:              now,
			TransactionCount: 12,
		})
		require.Equal(t, "2", breakdown.TradeActivity.String())
	})

	t.Run("three symbols unlock the full diversification bonus", func(t *testing.T) {
		twoSymbols := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt: now,
			Now:              now,
			TransactionCount: 1,
			HeldSymbolCount:  2,
		})
		require.Equal(t, "1", twoSymbols.Diversification.String())

		threeSymbols := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt: now,
			Now:              now,
			TransactionCount: 1,
			HeldSymbolCount:  3,
		})
		require.Equal(t, "1.5", threeSymbols.Diversification.String())
	})

	t.Run("education caps at five lessons", func(t *testing.T) {
		breakdown := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt: now,
			Now:              now,
			CompletedLessons: 9,
		})
		require.Equal(t, "1.5", breakdown.Education.String())
	})

	t.Run("week old accounts get the flat age bonus", func(t *testing.T) {
		breakdown := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt: now.AddDate(0, 0, -200),
			Now:              now,
			TransactionCount: 1,
		})
		require.Equal(t, "0.8", breakdown.AccountAge.String())
	})

	t.Run("profitable sell adds a flat bonus", func(t *testing.T) {
		breakdown := ComputeScoreBreakdown(ScoreInput{
			AccountCreatedAt:  now,
			Now:               now,
			TransactionCount:  2,
			HasProfitableSell: true,
		})
		require.Equal(t, "1", breakdown.ProfitableTrade.String())
	})

	t.Run("score never exceeds ten", func(t *testing.T) {
		base := decimal.NewFromFloat(9.9)
		score := ComputeScore(ScoreInput{
			BaseScore:         &base,
			AccountCreatedAt:  now.AddDate(0, 0, -60),
			Now:               now,
			TransactionCount:  20,
			HeldSymbolCount:   8,
			CompletedLessons:  10,
			HasProfitableSell: true,
		})
		require.Equal(t, "10", score.String())
	})

	t.Run("result is rounded to one decimal place", func(t *testing.T) {
		base := decimal.NewFromFloat(3.14159)
		score := ComputeScore(ScoreInput{
			BaseScore:        &base,
			AccountCreatedAt: now,
			Now:              now,
		})
		require.Equal(t, "3.1", score.String())
	})
}

func Test_SeedScoreFromAssessment(t *testing.T) {
	require.Equal(t, "2.7", SeedScoreFromAssessment(1).String())
	require.Equal(t, "5.5", SeedScoreFromAssessment(5).String())
	require.Equal(t, "9", SeedScoreFromAssessment(10).String())
	// out-of-range input still lands inside the score domain
	require.Equal(t, "10", SeedScoreFromAssessment(50).String())
	require.Equal(t, "0", SeedScoreFromAssessment(-100).String())
}
