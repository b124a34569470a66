package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getTradeStats(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	tradeStats, err := m.AnalyticsService.GetTradeStats(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeStats)
}

func (m ApiHandler) getScoreTrend(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	scoreTrend, err := m.AnalyticsService.GetScoreTrend(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scoreTrend)
}
