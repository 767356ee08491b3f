package notes

import (
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Delete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	noteID := c.Param("id")
	if noteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Note ID is required",
			"requestID": requestID,
		})
		return
	}

	var note model.Note

	err := d.DB.
		Where("user_id = ? AND id = ?", userID, noteID).
		First(&note).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Note not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to delete note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.DB.Delete(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to delete note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Note deleted successfully",
		"requestID": requestID,
	})
}
