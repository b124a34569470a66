package service

import (
	"context"
	"sync"
	"time"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/db/models/postgres/public/table"
	"investease/internal/domain"
	"investease/internal/repository"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConfidenceService interface {
	// RecalculateAfterTrade recomputes the score from the full activity
	// history and persists it. Callers treat it as best-effort: a trade
	// must never fail because scoring did.
	RecalculateAfterTrade(ctx context.Context, userID uuid.UUID) (*domain.ScoreBreakdown, error)
	GetBreakdown(ctx context.Context, userID uuid.UUID) (*domain.ScoreBreakdown, error)
	SeedFromAssessment(ctx context.Context, userID uuid.UUID, selfReported int64) (decimal.Decimal, error)
}

type confidenceServiceHandler struct {
	ProfileRepository        repository.ProfileRepository
	TransactionRepository    repository.TransactionRepository
	HoldingRepository        repository.HoldingRepository
	LessonProgressRepository repository.LessonProgressRepository
	ScoreHistoryRepository   repository.ScoreHistoryRepository

	userLocks *userLockManager
}

func NewConfidenceService(
	profileRepository repository.ProfileRepository,
	transactionRepository repository.TransactionRepository,
	holdingRepository repository.HoldingRepository,
	lessonProgressRepository repository.LessonProgressRepository,
	scoreHistoryRepository repository.ScoreHistoryRepository,
) ConfidenceService {
	return &confidenceServiceHandler{
		ProfileRepository:        profileRepository,
		TransactionRepository:    transactionRepository,
		HoldingRepository:        holdingRepository,
		LessonProgressRepository: lessonProgressRepository,
		ScoreHistoryRepository:   scoreHistoryRepository,
		userLocks:                newUserLockManager(),
	}
}

// userLockManager serializes score recomputation per user so two
// recomputations cannot interleave their writes. One mutex per user,
// not a global lock.
type userLockManager struct {
	mapMutex sync.Mutex
	locks    map[uuid.UUID]*sync.Mutex
}

func newUserLockManager() *userLockManager {
	return &userLockManager{locks: map[uuid.UUID]*sync.Mutex{}}
}

func (m *userLockManager) lock(userID uuid.UUID) {
	m.mapMutex.Lock()
	userMutex, ok := m.locks[userID]
	if !ok {
		userMutex = &sync.Mutex{}
		m.locks[userID] = userMutex
	}
	m.mapMutex.Unlock()

	userMutex.Lock()
}

func (m *userLockManager) unlock(userID uuid.UUID) {
	m.mapMutex.Lock()
	userMutex := m.locks[userID]
	m.mapMutex.Unlock()

	if userMutex != nil {
		userMutex.Unlock()
	}
}

func (h *confidenceServiceHandler) loadScoreInput(userID uuid.UUID) (*domain.ScoreInput, error) {
	profile, err := h.ProfileRepository.Get(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := h.TransactionRepository.List(userID, repository.TransactionListFilter{})
	if err != nil {
		return nil, err
	}

	holdings, err := h.HoldingRepository.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	lessons, err := h.LessonProgressRepository.ListCompleted(userID)
	if err != nil {
		return nil, err
	}

	hasProfitableSell := false
	for _, transaction := range transactions {
		if transaction.Side == model.TradeSide_Sell &&
			transaction.ProfitLoss != nil &&
			transaction.ProfitLoss.IsPositive() {
			hasProfitableSell = true
			break
		}
	}

	return &domain.ScoreInput{
		BaseScore:         profile.ConfidenceScore,
		AccountCreatedAt:  profile.CreatedAt,
		Now:               time.Now().UTC(),
		TransactionCount:  len(transactions),
		HeldSymbolCount:   len(holdings),
		CompletedLessons:  len(lessons),
		HasProfitableSell: hasProfitableSell,
	}, nil
}

func (h *confidenceServiceHandler) RecalculateAfterTrade(ctx context.Context, userID uuid.UUID) (*domain.ScoreBreakdown, error) {
	h.userLocks.lock(userID)
	defer h.userLocks.unlock(userID)

	input, err := h.loadScoreInput(userID)
	if err != nil {
		return nil, err
	}

	breakdown := domain.ComputeScoreBreakdown(*input)

	_, err = h.ProfileRepository.Update(nil, userID, model.UserProfile{
		ConfidenceScore: &breakdown.Final,
	}, postgres.ColumnList{
		table.UserProfile.ConfidenceScore,
	})
	if err != nil {
		return nil, err
	}

	_, err = h.ScoreHistoryRepository.Add(nil, model.ScoreHistory{
		UserID: userID,
		Score:  breakdown.Final,
	})
	if err != nil {
		return nil, err
	}

	return &breakdown, nil
}

func (h *confidenceServiceHandler) GetBreakdown(ctx context.Context, userID uuid.UUID) (*domain.ScoreBreakdown, error) {
	input, err := h.loadScoreInput(userID)
	if err != nil {
		return nil, err
	}

	breakdown := domain.ComputeScoreBreakdown(*input)
	return &breakdown, nil
}

func (h *confidenceServiceHandler) SeedFromAssessment(ctx context.Context, userID uuid.UUID, selfReported int64) (decimal.Decimal, error) {
	seeded := domain.SeedScoreFromAssessment(selfReported)

	_, err := h.ProfileRepository.Update(nil, userID, model.UserProfile{
		ConfidenceScore:     &seeded,
		OnboardingCompleted: true,
	}, postgres.ColumnList{
		table.UserProfile.ConfidenceScore,
		table.UserProfile.OnboardingCompleted,
	})
	if err != nil {
		return decimal.Zero, err
	}

	_, err = h.ScoreHistoryRepository.Add(nil, model.ScoreHistory{
		UserID: userID,
		Score:  seeded,
	})
	if err != nil {
		return decimal.Zero, err
	}

	return seeded, nil
}
