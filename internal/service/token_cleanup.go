package service

import (
	"bitwise74/notes-api/internal/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResetTokenCleanup periodically clears expired password reset tokens
// from user rows. Expired tokens are rejected on use anyway, this just
// keeps dead token state from piling up
func ResetTokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Reset token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			err := db.
				Model(model.User{}).
				Where("reset_expires_at IS NOT NULL AND reset_expires_at < ?", time.Now()).
				Updates(map[string]any{
					"reset_token":      nil,
					"reset_expires_at": nil,
				}).
				Error
			if err != nil {
				zap.L().Error("Failed to clean up expired reset tokens", zap.Error(err))
			}
		}
	}()
}
