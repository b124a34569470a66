package api

import (
	"investease/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type tradeRequest struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (m ApiHandler) buy(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	transaction, err := m.TradeService.ExecuteBuy(c.Request.Context(), service.TradeInput{
		UserID:   userID,
		Symbol:   requestBody.Symbol,
		Quantity: requestBody.Quantity,
		Price:    requestBody.Price,
	})
	if err != nil {
		returnErrorJsonCode(err, c, statusForTradeError(err))
		return
	}

	m.recalculateScoreAsync(userID)

	c.JSON(200, transaction)
}
