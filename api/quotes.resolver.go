package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listQuotes(c *gin.Context) {
	symbols := []string{}
	if raw := c.Query("symbols"); raw != "" {
		for _, symbol := range strings.Split(raw, ",") {
			symbol = strings.ToUpper(strings.TrimSpace(symbol))
			if symbol != "" {
				symbols = append(symbols, symbol)
			}
		}
	}

	quotes, err := m.QuoteService.ListQuotes(c.Request.Context(), symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, quotes)
}

type refreshQuotesRequest struct {
	Symbols []string `json:"symbols"`
}

func (m ApiHandler) refreshQuotes(c *gin.Context) {
	var requestBody refreshQuotesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.QuoteService.RefreshQuotes(c.Request.Context(), requestBody.Symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"updated": result.Updated,
		"failed":  result.Failed,
	})
}
