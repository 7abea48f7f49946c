package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

const apiVersion = "1.0.0"

// NewRouter wires all endpoints onto a mux router
func NewRouter(qrHandler *QRHandler, historyHandler *HistoryHandler) *mux.Router {
	r := mux.NewRouter()

	// QR endpoints
	r.HandleFunc("/api/scan/file", qrHandler.ScanFile).Methods("POST")
	r.HandleFunc("/api/scan/data", qrHandler.ScanData).Methods("POST")
	r.HandleFunc("/api/generate", qrHandler.Generate).Methods("POST")
	r.HandleFunc("/api/info", qrHandler.Info).Methods("POST")

	// History endpoints. Static routes are registered BEFORE the
	// parameterized one to avoid conflicts.
	r.HandleFunc("/api/history", historyHandler.GetHistory).Methods("GET")
	r.HandleFunc("/api/history/stats", historyHandler.GetStats).Methods("GET")
	r.HandleFunc("/api/history/clear", historyHandler.ClearHistory).Methods("DELETE")
	r.HandleFunc("/api/history/{id:[0-9]+}", historyHandler.DeleteRecord).Methods("DELETE")

	r.HandleFunc("/", indexHandler).Methods("GET")
	r.HandleFunc("/health", healthHandler).Methods("GET")

	return r
}

// indexHandler lists the available endpoints
func indexHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "QR Scanner API is running",
		"version": apiVersion,
		"endpoints": map[string]string{
			"scan_file":     "/api/scan/file",
			"scan_data":     "/api/scan/data",
			"generate":      "/api/generate",
			"info":          "/api/info",
			"history":       "/api/history",
			"history_stats": "/api/history/stats",
		},
	})
}

// healthHandler reports service liveness
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"message": "API is running",
	})
}
