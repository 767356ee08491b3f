package auth

import (
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/model"
	"bitwise74/notes-api/pkg/security"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

type forgotPasswordBody struct {
	Email string `json:"email"`
}

func ForgotPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email is required",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := d.DB.Where("email = ?", data.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "User with this email does not exist",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	resetToken, err := security.GenerateOneTimeToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Overwrites any earlier token, the latest request is the only one
	// that counts
	expires := time.Now().Add(resetTokenTTL)

	err = d.DB.Model(&user).
		Updates(map[string]any{
			"reset_token":      resetToken,
			"reset_expires_at": expires,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Unlike the verification mail this one is load-bearing: the user
	// has no other way to get the token, so a failed send fails the call
	if err := d.Mail.SendPasswordReset(data.Email, resetToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to send password reset email",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send password reset email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password reset email sent. Please check your inbox.",
		"requestID": requestID,
	})
}
