package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"investease/internal/db/models/postgres/public/model"
	mock_repository "investease/internal/repository/mocks"
	"investease/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_RecalculateAfterTrade(t *testing.T) {
	userID := uuid.New()
	var tx *sql.Tx

	t.Run("persists the recomputed score and appends history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileRepository := mock_repository.NewMockProfileRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		lessonProgressRepository := mock_repository.NewMockLessonProgressRepository(ctrl)
		scoreHistoryRepository := mock_repository.NewMockScoreHistoryRepository(ctrl)

		handler := &confidenceServiceHandler{
			ProfileRepository:        profileRepository,
			TransactionRepository:    transactionRepository,
			HoldingRepository:        holdingRepository,
			LessonProgressRepository: lessonProgressRepository,
			ScoreHistoryRepository:   scoreHistoryRepository,
			userLocks:                newUserLockManager(),
		}

		profileRepository.EXPECT().Get(userID).Return(&model.UserProfile{
			UserID:    userID,
			CreatedAt: time.Now().UTC().AddDate(0, 0, -2),
		}, nil)
		transactionRepository.EXPECT().List(userID, gomock.Any()).Return([]model.Transaction{
			{UserID: userID, Symbol: "AAPL", Side: model.TradeSide_Buy},
		}, nil)
		holdingRepository.EXPECT().ListForUser(userID).Return([]model.Holding{
			{UserID: userID, Symbol: "AAPL"},
		}, nil)
		lessonProgressRepository.EXPECT().ListCompleted(userID).Return(nil, nil)

		profileRepository.EXPECT().Update(tx, userID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, profile model.UserProfile, _ interface{}) (*model.UserProfile, error) {
				require.NotNil(t, profile.ConfidenceScore)
				// 3.2 base + 0.4 trade + 0.5 diversification + 0.2 age
				require.Equal(t, "4.3", profile.ConfidenceScore.String())
				return &profile, nil
			},
		)
		scoreHistoryRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, entry model.ScoreHistory) (*model.ScoreHistory, error) {
				require.Equal(t, "4.3", entry.Score.String())
				return &entry, nil
			},
		)

		breakdown, err := handler.RecalculateAfterTrade(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, "4.3", breakdown.Final.String())
	})

	t.Run("profitable sell feeds the bonus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileRepository := mock_repository.NewMockProfileRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		lessonProgressRepository := mock_repository.NewMockLessonProgressRepository(ctrl)
		scoreHistoryRepository := mock_repository.NewMockScoreHistoryRepository(ctrl)

		handler := &confidenceServiceHandler{
			ProfileRepository:        profileRepository,
			TransactionRepository:    transactionRepository,
			HoldingRepository:        holdingRepository,
			LessonProgressRepository: lessonProgressRepository,
			ScoreHistoryRepository:   scoreHistoryRepository,
			userLocks:                newUserLockManager(),
		}

		now := time.Now().UTC()
		profileRepository.EXPECT().Get(userID).Return(&model.UserProfile{
			UserID:    userID,
			CreatedAt: now,
		}, nil)
		transactionRepository.EXPECT().List(userID, gomock.Any()).Return([]model.Transaction{
			{UserID: userID, Symbol: "AAPL", Side: model.TradeSide_Buy},
			{UserID: userID, Symbol: "AAPL", Side: model.TradeSide_Sell, ProfitLoss: util.DecimalPointer(decimal.NewFromInt(300))},
		}, nil)
		holdingRepository.EXPECT().ListForUser(userID).Return(nil, nil)
		lessonProgressRepository.EXPECT().ListCompleted(userID).Return(nil, nil)
		profileRepository.EXPECT().Update(tx, userID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, profile model.UserProfile, _ interface{}) (*model.UserProfile, error) {
				return &profile, nil
			},
		)
		scoreHistoryRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, entry model.ScoreHistory) (*model.ScoreHistory, error) {
				return &entry, nil
			},
		)

		breakdown, err := handler.RecalculateAfterTrade(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, "1", breakdown.ProfitableTrade.String())
		// 3.2 base + 0.8 trade + 1.0 profitable sell
		require.Equal(t, "5", breakdown.Final.String())
	})

	t.Run("losing sell earns no bonus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileRepository := mock_repository.NewMockProfileRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		lessonProgressRepository := mock_repository.NewMockLessonProgressRepository(ctrl)
		scoreHistoryRepository := mock_repository.NewMockScoreHistoryRepository(ctrl)

		handler := &confidenceServiceHandler{
			ProfileRepository:        profileRepository,
			TransactionRepository:    transactionRepository,
			HoldingRepository:        holdingRepository,
			LessonProgressRepository: lessonProgressRepository,
			ScoreHistoryRepository:   scoreHistoryRepository,
			userLocks:                newUserLockManager(),
		}

		profileRepository.EXPECT().Get(userID).Return(&model.UserProfile{
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}, nil)
		transactionRepository.EXPECT().List(userID, gomock.Any()).Return([]model.Transaction{
			{UserID: userID, Symbol: "AAPL", Side: model.TradeSide_Sell, ProfitLoss: util.DecimalPointer(decimal.NewFromInt(-50))},
		}, nil)
		holdingRepository.EXPECT().ListForUser(userID).Return(nil, nil)
		lessonProgressRepository.EXPECT().ListCompleted(userID).Return(nil, nil)
		profileRepository.EXPECT().Update(tx, userID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, profile model.UserProfile, _ interface{}) (*model.UserProfile, error) {
				return &profile, nil
			},
		)
		scoreHistoryRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, entry model.ScoreHistory) (*model.ScoreHistory, error) {
				return &entry, nil
			},
		)

		breakdown, err := handler.RecalculateAfterTrade(context.Background(), userID)
		require.NoError(t, err)
		require.True(t, breakdown.ProfitableTrade.IsZero())
	})
}

func Test_SeedFromAssessment(t *testing.T) {
	userID := uuid.New()
	var tx *sql.Tx

	ctrl := gomock.NewController(t)
	profileRepository := mock_repository.NewMockProfileRepository(ctrl)
	scoreHistoryRepository := mock_repository.NewMockScoreHistoryRepository(ctrl)

	handler := &confidenceServiceHandler{
		ProfileRepository:      profileRepository,
		ScoreHistoryRepository: scoreHistoryRepository,
		userLocks:              newUserLockManager(),
	}

	profileRepository.EXPECT().Update(tx, userID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *sql.Tx, _ uuid.UUID, profile model.UserProfile, _ interface{}) (*model.UserProfile, error) {
			require.NotNil(t, profile.ConfidenceScore)
			require.Equal(t, "5.5", profile.ConfidenceScore.String())
			require.True(t, profile.OnboardingCompleted)
			return &profile, nil
		},
	)
	scoreHistoryRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
		func(_ *sql.Tx, entry model.ScoreHistory) (*model.ScoreHistory, error) {
			require.Equal(t, "5.5", entry.Score.String())
			return &entry, nil
		},
	)

	seeded, err := handler.SeedFromAssessment(context.Background(), userID, 5)
	require.NoError(t, err)
	require.Equal(t, "5.5", seeded.String())
}
