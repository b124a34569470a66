package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/domain"
	"investease/internal/logger"
	"investease/internal/repository"
	"investease/internal/service"
	"investease/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db *sql.DB

	TradeService      service.TradeService
	PortfolioService  service.PortfolioService
	ConfidenceService service.ConfidenceService
	AnalyticsService  service.AnalyticsService
	QuoteService      service.QuoteService
	LessonService     service.LessonService

	TransactionRepository repository.TransactionRepository
	ApiRequestRepository  repository.ApiRequestRepository

	SupabaseJwtSecret string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to investease"})
	})
	router.GET("/quotes", m.listQuotes)

	authed := router.Group("", m.authMiddleware)
	authed.POST("/portfolio", m.createPortfolio)
	authed.GET("/portfolio", m.getPortfolio)
	authed.POST("/trades/buy", m.buy)
	authed.POST("/trades/sell", m.sell)
	authed.GET("/transactions", m.listTransactions)
	authed.GET("/transactions/export", m.exportTransactions)
	authed.GET("/confidence", m.getConfidence)
	authed.GET("/confidence/breakdown", m.getConfidenceBreakdown)
	authed.POST("/assessment", m.submitAssessment)
	authed.GET("/lessons", m.listCompletedLessons)
	authed.POST("/lessons/:lessonID/complete", m.completeLesson)
	authed.GET("/analytics/trades", m.getTradeStats)
	authed.GET("/analytics/score", m.getScoreTrend)
	authed.POST("/quotes/refresh", m.refreshQuotes)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// statusForTradeError distinguishes rejections the user can correct from
// infrastructure failures.
func statusForTradeError(err error) int {
	var (
		invalidOrder       domain.ErrInvalidOrder
		insufficientFunds  domain.ErrInsufficientFunds
		noPosition         domain.ErrNoPosition
		insufficientShares domain.ErrInsufficientShares
	)
	switch {
	case errors.As(err, &invalidOrder):
		return http.StatusBadRequest
	case errors.As(err, &insufficientFunds),
		errors.As(err, &noPosition),
		errors.As(err, &insufficientShares):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// recalculateScoreAsync fires scoring after a successful trade. Scoring is
// advisory: its failure is logged, never surfaced to the trade response.
func (m ApiHandler) recalculateScoreAsync(userID uuid.UUID) {
	go func() {
		ctx := context.Background()
		if _, err := m.ConfidenceService.RecalculateAfterTrade(ctx, userID); err != nil {
			logger.Error(fmt.Errorf("failed to recalculate confidence score for user %s: %w", userID, err))
		}
	}()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Error(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   util.StrPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StrPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.Error(fmt.Errorf("failed to record api request: %w", err))
	}

	ctx.Next()

	if req == nil {
		return
	}

	statusCode := int32(ctx.Writer.Status())
	req.StatusCode = &statusCode
	req.ResponseBody = util.StrPointer(w.body.String())
	req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
	if err := m.ApiRequestRepository.Update(m.Db, *req); err != nil {
		logger.Error(fmt.Errorf("failed to finalize api request log: %w", err))
	}
}
