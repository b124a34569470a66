package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getConfidence(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	breakdown, err := m.ConfidenceService.GetBreakdown(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"score": breakdown.Final,
	})
}

func (m ApiHandler) getConfidenceBreakdown(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	breakdown, err := m.ConfidenceService.GetBreakdown(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, breakdown)
}

type assessmentRequest struct {
	SelfReportedConfidence int64 `json:"selfReportedConfidence"`
}

func (m ApiHandler) submitAssessment(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody assessmentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.SelfReportedConfidence < 1 || requestBody.SelfReportedConfidence > 10 {
		returnErrorJsonCode(fmt.Errorf("self-reported confidence must be between 1 and 10"), c, 400)
		return
	}

	seeded, err := m.ConfidenceService.SeedFromAssessment(c.Request.Context(), userID, requestBody.SelfReportedConfidence)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"score": seeded,
	})
}
