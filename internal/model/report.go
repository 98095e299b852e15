package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a point-in-time copy of a board's full state. It is written
// once when a report is created and never touched again, so later edits to
// the live board do not show through.
type Snapshot struct {
	Columns      []Column         `json:"columns"`
	Cards        []Card           `json:"cards"`
	Widgets      []Widget         `json:"widgets"`
	UserSettings UserSettings     `json:"userSettings"`
	Metadata     SnapshotMetadata `json:"metadata"`
}

type SnapshotMetadata struct {
	TotalCards  int       `json:"totalCards"`
	TotalPrice  float64   `json:"totalPrice"`
	ColumnCount int       `json:"columnCount"`
	CaptureDate time.Time `json:"captureDate"`
}

func (s Snapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Snapshot) Scan(value interface{}) error {
	if value == nil {
		*s = Snapshot{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for Snapshot")
	}
}

type Report struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BoardID      uuid.UUID `gorm:"type:uuid;not null;index" json:"board_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	SnapshotData Snapshot  `gorm:"type:jsonb" json:"snapshot_data"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
