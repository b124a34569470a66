package api

import (
	"investease/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type transactionCsvRow struct {
	Timestamp  string `csv:"timestamp"`
	Symbol     string `csv:"symbol"`
	Side       string `csv:"side"`
	Quantity   string `csv:"quantity"`
	Price      string `csv:"price"`
	Total      string `csv:"total"`
	ProfitLoss string `csv:"profit_loss"`
}

func (m ApiHandler) exportTransactions(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	transactions, err := m.TransactionRepository.List(userID, repository.TransactionListFilter{})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := make([]transactionCsvRow, 0, len(transactions))
	for _, transaction := range transactions {
		row := transactionCsvRow{
			Timestamp: transaction.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			Symbol:    transaction.Symbol,
			Side:      transaction.Side.String(),
			Quantity:  transaction.Quantity.String(),
			Price:     transaction.Price.StringFixed(2),
			Total:     transaction.TotalAmount.StringFixed(2),
		}
		if transaction.ProfitLoss != nil {
			row.ProfitLoss = transaction.ProfitLoss.StringFixed(2)
		}
		rows = append(rows, row)
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=transactions.csv")
	if err := gocsv.Marshal(&rows, c.Writer); err != nil {
		returnErrorJson(err, c)
		return
	}
}
