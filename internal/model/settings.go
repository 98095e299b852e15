package model

import (
	"time"

	"github.com/google/uuid"
)

// Widget display modes for the dashboard strip.
const (
	WidgetDisplayWrap   = "wrap"
	WidgetDisplayScroll = "scroll"
)

// Defaults applied when a user has no settings row yet.
const (
	DefaultStarCount         = 5
	DefaultWidgetDisplayMode = WidgetDisplayWrap
)

// UserSettings holds per-user preferences; one row per user.
type UserSettings struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	StarCount         int       `gorm:"not null;default:5" json:"star_count"`
	WidgetDisplayMode string    `gorm:"not null;default:'wrap'" json:"widget_display_mode"`
	UpdatedAt         time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
