package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Record types stored in the qr_history table
const (
	RecordTypeScan     = "scan"
	RecordTypeGenerate = "generate"
)

// Metadata is a schema-free JSON payload attached to a history record.
// It is serialized to a JSON text column on write and decoded on read,
// so callers never deal with raw strings. A nil Metadata is stored as
// SQL NULL, not as an empty object.
type Metadata map[string]interface{}

// Value implements driver.Valuer for gorm
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for gorm
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
}

// QRHistory represents one persisted scan or generate event
type QRHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Type      string    `json:"type" gorm:"type:varchar(20);not null;check:type IN ('scan','generate')"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Metadata  Metadata  `json:"metadata" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for QRHistory
func (QRHistory) TableName() string {
	return "qr_history"
}

// HistoryStats aggregates the most recent history records
type HistoryStats struct {
	TotalRecords int            `json:"total_records"`
	Scans        int            `json:"scans"`
	Generations  int            `json:"generations"`
	Methods      map[string]int `json:"methods"`
	ContentTypes map[string]int `json:"content_types"`
}
