package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"investease/api"
	"investease/internal/repository"
	"investease/internal/service"
	"investease/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	holdingRepository := repository.NewHoldingRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	profileRepository := repository.NewProfileRepository(dbConn)
	scoreHistoryRepository := repository.NewScoreHistoryRepository(dbConn)
	lessonProgressRepository := repository.NewLessonProgressRepository(dbConn)
	marketQuoteRepository := repository.NewMarketQuoteRepository(dbConn)
	quoteFeedRepository := repository.NewQuoteFeedRepository()

	tradeService := service.NewTradeService(
		dbConn,
		portfolioRepository,
		holdingRepository,
		transactionRepository,
	)
	portfolioService := service.NewPortfolioService(
		portfolioRepository,
		holdingRepository,
		marketQuoteRepository,
	)
	confidenceService := service.NewConfidenceService(
		profileRepository,
		transactionRepository,
		holdingRepository,
		lessonProgressRepository,
		scoreHistoryRepository,
	)
	analyticsService := service.NewAnalyticsService(
		transactionRepository,
		scoreHistoryRepository,
	)
	quoteService := service.NewQuoteService(
		marketQuoteRepository,
		holdingRepository,
		quoteFeedRepository,
	)
	lessonService := service.NewLessonService(lessonProgressRepository)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		TradeService:          tradeService,
		PortfolioService:      portfolioService,
		ConfidenceService:     confidenceService,
		AnalyticsService:      analyticsService,
		QuoteService:          quoteService,
		LessonService:         lessonService,
		TransactionRepository: transactionRepository,
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		SupabaseJwtSecret:     secrets.SupabaseJwtSecret,
	}

	return apiHandler, nil
}
