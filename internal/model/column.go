package model

import (
	"github.com/google/uuid"
)

// Sort modes for the render-time card projection. "order" is the manual
// drag-and-drop sequence; everything else is a non-persisted view transform.
const (
	SortManual       = "order"
	SortPriorityHigh = "priority_high"
	SortPriorityLow  = "priority_low"
	SortPriceHigh    = "price_high"
	SortPriceLow     = "price_low"
	SortDateAsc      = "date_asc"
	SortDateDesc     = "date_desc"
	SortTitle        = "title"
)

type Column struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;index" json:"board_id"`
	Title   string    `gorm:"not null" json:"title"`
	Order   int       `gorm:"not null;default:0" json:"order"`
	Pinned  bool      `gorm:"not null;default:false" json:"pinned"`
	SortBy  string    `gorm:"not null;default:'order'" json:"sort_by"`

	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
