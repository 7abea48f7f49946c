package services

import (
	"path/filepath"
	"testing"

	"back_qr/internal/apperrors"
	"back_qr/internal/config"
	"back_qr/internal/database"
	"back_qr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryService(t *testing.T) *HistoryService {
	t.Helper()

	cfg := &config.Config{
		DBType: "sqlite",
		DBPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	return NewHistoryService(db)
}

func TestAddRecordAssignsDistinctIDs(t *testing.T) {
	hs := newTestHistoryService(t)

	seen := make(map[uint]bool)
	for i := 0; i < 5; i++ {
		id, err := hs.AddRecord(models.RecordTypeScan, "https://example.com", nil)
		require.NoError(t, err)
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
}

func TestAddRecordValidation(t *testing.T) {
	hs := newTestHistoryService(t)

	var validationErr *apperrors.ValidationError

	_, err := hs.AddRecord(models.RecordTypeScan, "", nil)
	require.ErrorAs(t, err, &validationErr)

	_, err = hs.AddRecord("export", "some content", nil)
	require.ErrorAs(t, err, &validationErr)
}

func TestGetHistoryNewestFirst(t *testing.T) {
	hs := newTestHistoryService(t)

	for _, content := range []string{"A", "B", "C"} {
		_, err := hs.AddRecord(models.RecordTypeScan, content, nil)
		require.NoError(t, err)
	}

	history, err := hs.GetHistory(3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "C", history[0].Content)
	assert.Equal(t, "B", history[1].Content)
	assert.Equal(t, "A", history[2].Content)
}

func TestGetHistoryLimit(t *testing.T) {
	hs := newTestHistoryService(t)

	for i := 0; i < 4; i++ {
		_, err := hs.AddRecord(models.RecordTypeGenerate, "payload", nil)
		require.NoError(t, err)
	}

	history, err := hs.GetHistory(2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	_, err = hs.GetHistory(0)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGetHistoryEmptyStore(t *testing.T) {
	hs := newTestHistoryService(t)

	history, err := hs.GetHistory(50)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMetadataRoundTrip(t *testing.T) {
	hs := newTestHistoryService(t)

	metadata := models.Metadata{
		"method": "file_upload",
		"qr_info": map[string]interface{}{
			"type":        "url",
			"description": "Website URL",
			"data":        "https://example.com",
		},
	}

	_, err := hs.AddRecord(models.RecordTypeScan, "https://example.com", metadata)
	require.NoError(t, err)

	history, err := hs.GetHistory(1)
	require.NoError(t, err)
	require.Len(t, history, 1)

	stored := history[0].Metadata
	require.NotNil(t, stored)
	assert.Equal(t, "file_upload", stored["method"])

	qrInfo, ok := stored["qr_info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "url", qrInfo["type"])
}

func TestMetadataAbsentStaysAbsent(t *testing.T) {
	hs := newTestHistoryService(t)

	_, err := hs.AddRecord(models.RecordTypeGenerate, "plain", nil)
	require.NoError(t, err)

	history, err := hs.GetHistory(1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].Metadata)
}

func TestDeleteRecord(t *testing.T) {
	hs := newTestHistoryService(t)

	id, err := hs.AddRecord(models.RecordTypeScan, "to delete", nil)
	require.NoError(t, err)

	deleted, err := hs.DeleteRecord(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting again is not an error, it just reports nothing happened
	deleted, err = hs.DeleteRecord(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteRecordUnknownID(t *testing.T) {
	hs := newTestHistoryService(t)

	deleted, err := hs.DeleteRecord(12345)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClearHistory(t *testing.T) {
	hs := newTestHistoryService(t)

	count, err := hs.ClearHistory()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "clearing an empty store removes nothing")

	for i := 0; i < 3; i++ {
		_, err := hs.AddRecord(models.RecordTypeScan, "payload", nil)
		require.NoError(t, err)
	}

	count, err = hs.ClearHistory()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	history, err := hs.GetHistory(50)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetStats(t *testing.T) {
	hs := newTestHistoryService(t)

	_, err := hs.AddRecord(models.RecordTypeScan, "https://example.com", models.Metadata{
		"method":  "file_upload",
		"qr_info": Classify("https://example.com"),
	})
	require.NoError(t, err)

	_, err = hs.AddRecord(models.RecordTypeGenerate, "Hello world", models.Metadata{
		"method":  "text_input",
		"qr_info": Classify("Hello world"),
	})
	require.NoError(t, err)

	stats, err := hs.GetStats()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 1, stats.Scans)
	assert.Equal(t, 1, stats.Generations)
	assert.Equal(t, map[string]int{"file_upload": 1, "text_input": 1}, stats.Methods)
	assert.Equal(t, map[string]int{"url": 1, "text": 1}, stats.ContentTypes)
}

func TestGetStatsSkipsRecordsWithoutMetadata(t *testing.T) {
	hs := newTestHistoryService(t)

	_, err := hs.AddRecord(models.RecordTypeScan, "bare record", nil)
	require.NoError(t, err)

	stats, err := hs.GetStats()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalRecords)
	assert.Equal(t, 1, stats.Scans)
	assert.Empty(t, stats.Methods)
	assert.Empty(t, stats.ContentTypes)
}
