package model

import (
	"time"

	"github.com/google/uuid"
)

type Card struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index" json:"board_id"`
	ColumnID    uuid.UUID `gorm:"type:uuid;not null;index" json:"column_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Priority    *int      `json:"priority"`
	Note        string    `json:"note"`
	Order       int       `gorm:"not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`

	Board  Board  `gorm:"foreignKey:BoardID" json:"-"`
	Column Column `gorm:"foreignKey:ColumnID" json:"-"`
}
