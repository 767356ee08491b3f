package notes

import (
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/model"
	"bitwise74/notes-api/pkg/validators"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// updateBody lists the only fields a partial update may touch. Pointers
// tell "field absent" apart from "field set to its zero value"
type updateBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
	Date    *string `json:"date"`
}

func Update(c *gin.Context, d *internal.Deps) {
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

	var data updateBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Title != nil {
		title := strings.TrimSpace(*data.Title)
		if len(title) > maxTitleLen {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Title cannot be more than 100 characters",
				"requestID": requestID,
			})
			return
		}
		updates["title"] = title
	}

	if data.Content != nil {
		content := strings.TrimSpace(*data.Content)
		if content == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Content is required",
				"requestID": requestID,
			})
			return
		}
		updates["content"] = content
	}

	if data.Color != nil {
		if err := validators.ColorValidator(*data.Color); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		updates["color"] = *data.Color
	}

	if data.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *data.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid date provided",
				"requestID": requestID,
			})
			return
		}
		updates["date"] = parsed
	}

	var note model.Note

	// Scoping the lookup to the owner means someone else's note ID gets
	// a 404, never a confirmation it exists
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
			"error":     "Failed to update note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if len(updates) > 0 {
		if err := d.DB.Model(&note).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to update note",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update note", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Note updated successfully",
		"note":      note,
		"requestID": requestID,
	})
}
