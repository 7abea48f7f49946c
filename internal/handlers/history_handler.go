package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"back_qr/internal/services"

	"github.com/gorilla/mux"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// HistoryHandler serves the history management endpoints
type HistoryHandler struct {
	historyService *services.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory handles GET /api/history?limit=N
func (hh *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	// Clamp to [1,200] at the handler boundary; the store takes any
	// positive limit
	if limit < 1 {
		limit = 1
	} else if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	history, err := hh.historyService.GetHistory(limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"history": history,
		"count":   len(history),
	})
}

// DeleteRecord handles DELETE /api/history/{id}
func (hh *HistoryHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	deleted, err := hh.historyService.DeleteRecord(uint(id))
	if err != nil {
		writeError(w, err)
		return
	}

	if !deleted {
		writeErrorMessage(w, http.StatusNotFound, "Record not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Record deleted",
	})
}

// ClearHistory handles DELETE /api/history/clear
func (hh *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	count, err := hh.historyService.ClearHistory()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Cleared %d records", count),
	})
}

// GetStats handles GET /api/history/stats
func (hh *HistoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := hh.historyService.GetStats()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}
