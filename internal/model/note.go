package model

import "time"

const DefaultNoteColor = "#10b981"

type Note struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`

	// Title may be empty, the frontend renders untitled notes just fine
	Title   string    `json:"title"`
	Content string    `gorm:"not null" json:"content"`
	Color   string    `gorm:"default:#10b981" json:"color"`
	Date    time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
