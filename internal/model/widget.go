package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Widget types rendered on a board's dashboard strip. The evaluator in
// internal/dashboard must handle every one of these.
const (
	WidgetTotalCards       = "total_cards"
	WidgetTotalPrice       = "total_price"
	WidgetHighPriority     = "high_priority"
	WidgetColumnCount      = "column_count"
	WidgetColumnCards      = "column_cards"
	WidgetColumnTotal      = "column_total"
	WidgetPinnedTotal      = "pinned_total"
	WidgetAveragePrice     = "average_price"
	WidgetCustomText       = "custom_text"
	WidgetTargetRemaining  = "target_remaining"
	WidgetTargetPercentage = "target_percentage"
)

// WidgetTypes lists every known widget type, for request validation.
var WidgetTypes = []string{
	WidgetTotalCards,
	WidgetTotalPrice,
	WidgetHighPriority,
	WidgetColumnCount,
	WidgetColumnCards,
	WidgetColumnTotal,
	WidgetPinnedTotal,
	WidgetAveragePrice,
	WidgetCustomText,
	WidgetTargetRemaining,
	WidgetTargetPercentage,
}

// Percentage modes for target_percentage widgets.
const (
	PercentageCompleted = "completed"
	PercentageRemaining = "remaining"
)

// WidgetSettings is the per-type configuration blob. Which fields are
// meaningful depends on the widget type: column_cards/column_total/
// target_remaining/target_percentage read ColumnID, custom_text reads
// CustomText, the target widgets read TargetValue and PercentageMode,
// and total_price honours ExcludedColumns. Stored as a single jsonb column.
type WidgetSettings struct {
	Color           string      `json:"color,omitempty"`
	CustomColor     string      `json:"customColor,omitempty"`
	ColumnID        *uuid.UUID  `json:"column_id,omitempty"`
	CustomText      string      `json:"customText,omitempty"`
	TargetValue     float64     `json:"targetValue,omitempty"`
	PercentageMode  string      `json:"percentageMode,omitempty"`
	ExcludedColumns []uuid.UUID `json:"excludedColumns,omitempty"`
}

func (s WidgetSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *WidgetSettings) Scan(value interface{}) error {
	if value == nil {
		*s = WidgetSettings{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for WidgetSettings")
	}
}

type Widget struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BoardID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"board_id"`
	WidgetType string         `gorm:"not null" json:"widget_type"`
	Title      string         `gorm:"not null" json:"title"`
	Icon       string         `json:"icon"`
	Settings   WidgetSettings `gorm:"type:jsonb" json:"settings"`
	Order      int            `gorm:"not null;default:0" json:"order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"-"`

	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
