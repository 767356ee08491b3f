package internal

import (
	"bitwise74/notes-api/internal/service"
	"bitwise74/notes-api/pkg/security"

	"gorm.io/gorm"
)

// Deps carries everything the handlers need, wired once in app.NewRouter
type Deps struct {
	DB    *gorm.DB
	Argon *security.ArgonHash
	Mail  service.Mailer
	AI    service.Summarizer
}
