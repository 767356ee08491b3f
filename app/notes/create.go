// Package notes contains the note CRUD and summary endpoints
package notes

import (
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/model"
	"bitwise74/notes-api/pkg/validators"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const (
	idCharset   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxTitleLen = 100
)

type createBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Date    string `json:"date"`
}

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data createBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	data.Title = strings.TrimSpace(data.Title)
	data.Content = strings.TrimSpace(data.Content)

	if data.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Content is required",
			"requestID": requestID,
		})
		return
	}

	if len(data.Title) > maxTitleLen {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Title cannot be more than 100 characters",
			"requestID": requestID,
		})
		return
	}

	if data.Color == "" {
		data.Color = model.DefaultNoteColor
	} else if err := validators.ColorValidator(data.Color); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	date := time.Now()
	if data.Date != "" {
		parsed, err := time.Parse(time.RFC3339, data.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid date provided",
				"requestID": requestID,
			})
			return
		}
		date = parsed
	}

	noteID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate note ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	note := model.Note{
		ID:      noteID,
		UserID:  userID,
		Title:   data.Title,
		Content: data.Content,
		Color:   data.Color,
		Date:    date,
	}

	if err := d.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to create note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Note created successfully",
		"note":      note,
		"requestID": requestID,
	})
}
