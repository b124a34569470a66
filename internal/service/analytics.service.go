package service

import (
	"context"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/repository"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type AnalyticsService interface {
	GetTradeStats(ctx context.Context, userID uuid.UUID) (*TradeStats, error)
	GetScoreTrend(ctx context.Context, userID uuid.UUID) (*ScoreTrend, error)
}

type TradeStats struct {
	TotalTrades int `json:"totalTrades"`
	BuyCount    int `json:"buyCount"`
	SellCount   int `json:"sellCount"`

	// realized figures cover sells only
	TotalRealized   decimal.Decimal  `json:"totalRealized"`
	WinRate         *float64         `json:"winRate"`
	MeanProfitLoss  *float64         `json:"meanProfitLoss"`
	StdevProfitLoss *float64         `json:"stdevProfitLoss"`
	BestTrade       *decimal.Decimal `json:"bestTrade"`
	WorstTrade      *decimal.Decimal `json:"worstTrade"`
}

type ScoreTrend struct {
	Points []ScoreTrendPoint `json:"points"`
	Mean   *float64          `json:"mean"`
	Min    *float64          `json:"min"`
	Max    *float64          `json:"max"`
}

type ScoreTrendPoint struct {
	Score     decimal.Decimal `json:"score"`
	Timestamp string          `json:"timestamp"`
}

type analyticsServiceHandler struct {
	TransactionRepository  repository.TransactionRepository
	ScoreHistoryRepository repository.ScoreHistoryRepository
}

func NewAnalyticsService(
	transactionRepository repository.TransactionRepository,
	scoreHistoryRepository repository.ScoreHistoryRepository,
) AnalyticsService {
	return analyticsServiceHandler{
		TransactionRepository:  transactionRepository,
		ScoreHistoryRepository: scoreHistoryRepository,
	}
}

func (h analyticsServiceHandler) GetTradeStats(ctx context.Context, userID uuid.UUID) (*TradeStats, error) {
	transactions, err := h.TransactionRepository.List(userID, repository.TransactionListFilter{})
	if err != nil {
		return nil, err
	}

	return computeTradeStats(transactions), nil
}

func computeTradeStats(transactions []model.Transaction) *TradeStats {
	out := &TradeStats{
		TotalTrades:   len(transactions),
		TotalRealized: decimal.Zero,
	}

	realized := []float64{}
	wins := 0
	for _, transaction := range transactions {
		switch transaction.Side {
		case model.TradeSide_Buy:
			out.BuyCount++
		case model.TradeSide_Sell:
			out.SellCount++
		}

		if transaction.ProfitLoss == nil {
			continue
		}

		profitLoss := *transaction.ProfitLoss
		out.TotalRealized = out.TotalRealized.Add(profitLoss)
		realized = append(realized, profitLoss.InexactFloat64())
		if profitLoss.IsPositive() {
			wins++
		}

		if out.BestTrade == nil || profitLoss.GreaterThan(*out.BestTrade) {
			best := profitLoss
			out.BestTrade = &best
		}
		if out.WorstTrade == nil || profitLoss.LessThan(*out.WorstTrade) {
			worst := profitLoss
			out.WorstTrade = &worst
		}
	}

	if len(realized) > 0 {
		winRate := float64(wins) / float64(len(realized))
		out.WinRate = &winRate

		if mean, err := stats.Mean(realized); err == nil {
			out.MeanProfitLoss = &mean
		}
	}
	if len(realized) > 1 {
		if stdev, err := stats.StandardDeviationSample(realized); err == nil {
			out.StdevProfitLoss = &stdev
		}
	}

	return out
}

func (h analyticsServiceHandler) GetScoreTrend(ctx context.Context, userID uuid.UUID) (*ScoreTrend, error) {
	history, err := h.ScoreHistoryRepository.List(userID)
	if err != nil {
		return nil, err
	}

	return computeScoreTrend(history), nil
}

func computeScoreTrend(history []model.ScoreHistory) *ScoreTrend {
	out := &ScoreTrend{Points: make([]ScoreTrendPoint, 0, len(history))}

	scores := make([]float64, 0, len(history))
	for _, entry := range history {
		out.Points = append(out.Points, ScoreTrendPoint{
			Score:     entry.Score,
			Timestamp: entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
		scores = append(scores, entry.Score.InexactFloat64())
	}

	if len(scores) == 0 {
		return out
	}

	if mean, err := stats.Mean(scores); err == nil {
		out.Mean = &mean
	}
	if min, err := stats.Min(scores); err == nil {
		out.Min = &min
	}
	if max, err := stats.Max(scores); err == nil {
		out.Max = &max
	}

	return out
}
