package notes

import (
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func List(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var userNotes []model.Note

	err := d.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&userNotes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch notes",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes":     userNotes,
		"requestID": requestID,
	})
}
