package services

import (
	"back_qr/internal/apperrors"
	"back_qr/internal/models"

	"gorm.io/gorm"
)

// statsWindow is how many of the most recent records GetStats scans
const statsWindow = 1000

// HistoryService persists scan and generate events
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new history service on the given database
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// AddRecord inserts a new history record and returns its id. The id and
// timestamp are assigned by the store; records are immutable afterwards.
func (hs *HistoryService) AddRecord(recordType, content string, metadata models.Metadata) (uint, error) {
	if recordType != models.RecordTypeScan && recordType != models.RecordTypeGenerate {
		return 0, apperrors.Validation("invalid record type: %s", recordType)
	}
	if content == "" {
		return 0, apperrors.Validation("content cannot be empty")
	}

	record := models.QRHistory{
		Type:     recordType,
		Content:  content,
		Metadata: metadata,
	}

	err := hs.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})
	if err != nil {
		return 0, apperrors.Storage("failed to save history record", err)
	}

	return record.ID, nil
}

// GetHistory returns at most limit records, newest first
func (hs *HistoryService) GetHistory(limit int) ([]models.QRHistory, error) {
	if limit <= 0 {
		return nil, apperrors.Validation("limit must be positive")
	}

	records := make([]models.QRHistory, 0, limit)
	// id breaks ties between records created within the same timestamp tick
	err := hs.db.Order("timestamp DESC, id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, apperrors.Storage("failed to load history", err)
	}

	return records, nil
}

// DeleteRecord removes one record. Returns false, without an error, when
// the id does not exist.
func (hs *HistoryService) DeleteRecord(id uint) (bool, error) {
	result := hs.db.Delete(&models.QRHistory{}, id)
	if result.Error != nil {
		return false, apperrors.Storage("failed to delete history record", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ClearHistory removes all records and returns how many were removed
func (hs *HistoryService) ClearHistory() (int64, error) {
	result := hs.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.QRHistory{})
	if result.Error != nil {
		return 0, apperrors.Storage("failed to clear history", result.Error)
	}

	return result.RowsAffected, nil
}

// GetStats tallies the most recent records by record type, scan method
// and classified content type. Records without the relevant metadata key
// are skipped for that tally.
func (hs *HistoryService) GetStats() (*models.HistoryStats, error) {
	records, err := hs.GetHistory(statsWindow)
	if err != nil {
		return nil, err
	}

	stats := &models.HistoryStats{
		TotalRecords: len(records),
		Methods:      make(map[string]int),
		ContentTypes: make(map[string]int),
	}

	for _, record := range records {
		switch record.Type {
		case models.RecordTypeScan:
			stats.Scans++
		case models.RecordTypeGenerate:
			stats.Generations++
		}

		if record.Metadata == nil {
			continue
		}

		if method, ok := record.Metadata["method"].(string); ok {
			stats.Methods[method]++
		}

		if qrInfo, ok := record.Metadata["qr_info"].(map[string]interface{}); ok {
			contentType, ok := qrInfo["type"].(string)
			if !ok {
				contentType = "unknown"
			}
			stats.ContentTypes[contentType]++
		}
	}

	return stats, nil
}
