package api

import (
	"github.com/gin-gonic/gin"
)

// createPortfolio is the signup hook; the frontend calls it once after the
// Supabase account exists.
func (m ApiHandler) createPortfolio(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	portfolio, err := m.PortfolioService.Create(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolio)
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	snapshot, err := m.PortfolioService.GetSnapshot(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshot)
}
