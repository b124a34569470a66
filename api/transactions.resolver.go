package api

import (
	"fmt"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listTransactions(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	filter := repository.TransactionListFilter{}
	if symbol := c.Query("symbol"); symbol != "" {
		filter.Symbol = &symbol
	}
	if side := c.Query("side"); side != "" {
		if side != model.TradeSide_Buy.String() && side != model.TradeSide_Sell.String() {
			returnErrorJsonCode(fmt.Errorf("unknown trade side %q", side), c, 400)
			return
		}
		tradeSide := model.TradeSide(side)
		filter.Side = &tradeSide
	}

	transactions, err := m.TransactionRepository.List(userID, filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, transactions)
}
