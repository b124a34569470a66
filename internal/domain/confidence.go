package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// DefaultBaseScore is used when the user skipped the onboarding assessment.
	DefaultBaseScore = decimal.NewFromFloat(3.2)

	MaxConfidenceScore = decimal.NewFromInt(10)

	tradeModifierStep    = decimal.NewFromFloat(0.4)
	tradeModifierCap     = decimal.NewFromFloat(2.0)
	diversificationStep  = decimal.NewFromFloat(0.5)
	diversificationBonus = decimal.NewFromFloat(1.5)
	educationStep        = decimal.NewFromFloat(0.3)
	educationCap         = decimal.NewFromFloat(1.5)
	profitableTradeBonus = decimal.NewFromFloat(1.0)
	accountAgeStep       = decimal.NewFromFloat(0.1)
	accountAgeBonus      = decimal.NewFromFloat(0.8)

	assessmentScale  = decimal.NewFromFloat(0.7)
	assessmentOffset = decimal.NewFromInt(2)
)

type ScoreInput struct {
	// BaseScore is the stored profile score, nil when no assessment was taken.
	BaseScore        *decimal.Decimal
	AccountCreatedAt time.Time
	Now              time.Time

	TransactionCount  int
	HeldSymbolCount   int
	CompletedLessons  int
	HasProfitableSell bool
}

// ScoreBreakdown decomposes a confidence score into its modifiers. Final is
// always the value ComputeScore would return for the same input.
type ScoreBreakdown struct {
	Base            decimal.Decimal `json:"base"`
	TradeActivity   decimal.Decimal `json:"tradeActivity"`
	Diversification decimal.Decimal `json:"diversification"`
	Education       decimal.Decimal `json:"education"`
	ProfitableTrade decimal.Decimal `json:"profitableTrade"`
	AccountAge      decimal.Decimal `json:"accountAge"`
	Final           decimal.Decimal `json:"final"`
}

// ComputeScoreBreakdown derives the confidence score from the full activity
// history. All modifiers are non-negative and the result is capped at 10,
// rounded to one decimal place.
func ComputeScoreBreakdown(in ScoreInput) ScoreBreakdown {
	base := DefaultBaseScore
	if in.BaseScore != nil {
		base = *in.BaseScore
	}

	breakdown := ScoreBreakdown{Base: base}

	// No trades and no lessons means no modifiers at all, regardless of
	// account age or holdings.
	if in.TransactionCount == 0 && in.CompletedLessons == 0 {
		breakdown.Final = roundScore(base)
		return breakdown
	}

	breakdown.TradeActivity = decimal.Min(
		decimal.NewFromInt(int64(in.TransactionCount)).Mul(tradeModifierStep),
		tradeModifierCap,
	)

	// Diversification is rewarded as a threshold achievement: linear up to
	// two symbols, then a flat bonus at three or more.
	if in.HeldSymbolCount >= 3 {
		breakdown.Diversification = diversificationBonus
	} else {
		breakdown.Diversification = diversificationStep.Mul(decimal.NewFromInt(int64(in.HeldSymbolCount)))
	}

	breakdown.Education = decimal.Min(
		decimal.NewFromInt(int64(in.CompletedLessons)).Mul(educationStep),
		educationCap,
	)

	if in.HasProfitableSell {
		breakdown.ProfitableTrade = profitableTradeBonus
	}

	accountAgeDays := int64(in.Now.Sub(in.AccountCreatedAt).Hours() / 24)
	if accountAgeDays >= 7 {
		breakdown.AccountAge = accountAgeBonus
	} else if accountAgeDays > 0 {
		breakdown.AccountAge = accountAgeStep.Mul(decimal.NewFromInt(accountAgeDays))
	}

	total := base.
		Add(breakdown.TradeActivity).
		Add(breakdown.Diversification).
		Add(breakdown.Education).
		Add(breakdown.ProfitableTrade).
		Add(breakdown.AccountAge)

	breakdown.Final = roundScore(decimal.Min(total, MaxConfidenceScore))
	return breakdown
}

// ComputeScore is the single-value form of ComputeScoreBreakdown.
func ComputeScore(in ScoreInput) decimal.Decimal {
	return ComputeScoreBreakdown(in).Final
}

// SeedScoreFromAssessment maps the onboarding self-assessment (1-10 scale)
// onto the score domain: raw*0.7 + 2, clamped to [0, 10].
func SeedScoreFromAssessment(raw int64) decimal.Decimal {
	seeded := decimal.NewFromInt(raw).Mul(assessmentScale).Add(assessmentOffset)
	if seeded.GreaterThan(MaxConfidenceScore) {
		seeded = MaxConfidenceScore
	}
	if seeded.IsNegative() {
		seeded = decimal.Zero
	}
	return roundScore(seeded)
}

func roundScore(score decimal.Decimal) decimal.Decimal {
	return score.Round(1)
}
