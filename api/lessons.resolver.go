package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) completeLesson(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	lessonID := c.Param("lessonID")
	if lessonID == "" {
		returnErrorJsonCode(fmt.Errorf("lesson id is required"), c, 400)
		return
	}

	if err := m.LessonService.MarkCompleted(c.Request.Context(), userID, lessonID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
	})
}

func (m ApiHandler) listCompletedLessons(c *gin.Context) {
	userID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	lessons, err := m.LessonService.ListCompleted(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, lessons)
}
