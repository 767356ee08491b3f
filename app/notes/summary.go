package notes

import (
	"bitwise74/notes-api/internal"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type summaryBody struct {
	Content string `json:"content"`
}

func Summary(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data summaryBody
	if err := c.ShouldBind(&data); err != nil || strings.TrimSpace(data.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Content is required",
			"requestID": requestID,
		})
		return
	}

	summary, err := d.AI.Summarize(c.Request.Context(), data.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to generate summary",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate summary", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":   summary,
		"requestID": requestID,
	})
}
