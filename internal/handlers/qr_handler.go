package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"back_qr/internal/models"
	"back_qr/internal/services"
	"back_qr/internal/utils"
)

// QRHandler serves the scan, generate and info endpoints
type QRHandler struct {
	qrService      *services.QRService
	historyService *services.HistoryService
	fileHandler    *utils.FileHandler
}

// NewQRHandler creates a new QR handler
func NewQRHandler(qrService *services.QRService, historyService *services.HistoryService, fileHandler *utils.FileHandler) *QRHandler {
	return &QRHandler{
		qrService:      qrService,
		historyService: historyService,
		fileHandler:    fileHandler,
	}
}

// ScanFile handles POST /api/scan/file
func (qh *QRHandler) ScanFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, qh.fileHandler.MaxSize())

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeErrorMessage(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeErrorMessage(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeErrorMessage(w, http.StatusBadRequest, "No file selected")
		return
	}

	if !qh.fileHandler.AllowedFile(header.Filename) {
		writeErrorMessage(w, http.StatusBadRequest, "File type not allowed")
		return
	}

	path, filename, err := qh.fileHandler.SaveUploadedFile(file, header.Filename)
	if err != nil {
		log.Printf("ERROR: failed to save upload: %v", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Failed to save file")
		return
	}
	// The upload is scratch space only; remove it on every exit path
	defer func() {
		if err := qh.fileHandler.DeleteFile(path); err != nil {
			log.Printf("ERROR: failed to delete upload %s: %v", path, err)
		}
	}()

	imageData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("ERROR: failed to read upload %s: %v", path, err)
		writeErrorMessage(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	results, err := qh.qrService.DecodeImage(imageData)
	if err != nil {
		writeError(w, err)
		return
	}

	qh.recordScans(results, models.Metadata{
		"method":   "file_upload",
		"filename": filename,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
		"count":   len(results),
	})
}

// ScanData handles POST /api/scan/data
func (qh *QRHandler) ScanData(w http.ResponseWriter, r *http.Request) {
	var req models.ScanDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" {
		writeErrorMessage(w, http.StatusBadRequest, "No image data provided")
		return
	}

	results, err := qh.qrService.DecodeBase64(req.Image)
	if err != nil {
		writeError(w, err)
		return
	}

	qh.recordScans(results, models.Metadata{
		"method": "camera_capture",
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
		"count":   len(results),
	})
}

// Generate handles POST /api/generate
func (qh *QRHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "No text data provided")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}

	width, height := 300, 300
	if len(req.Size) == 2 && req.Size[0] > 0 && req.Size[1] > 0 {
		width, height = req.Size[0], req.Size[1]
	}

	border := 4
	if req.Border != nil {
		border = *req.Border
	}

	errorCorrection := req.ErrorCorrection
	if errorCorrection == "" {
		errorCorrection = "M"
	}

	result, err := qh.qrService.GenerateQRCode(text, width, height, border, errorCorrection)
	if err != nil {
		writeError(w, err)
		return
	}

	// History is best effort: a failed write must not cost the client
	// the QR code it asked for
	qrInfo := services.Classify(text)
	_, err = qh.historyService.AddRecord(models.RecordTypeGenerate, text, models.Metadata{
		"method":           "text_input",
		"qr_info":          qrInfo,
		"size":             [2]int{width, height},
		"border":           border,
		"error_correction": errorCorrection,
	})
	if err != nil {
		log.Printf("ERROR: failed to record generate history: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"qr_code": result,
	})
}

// Info handles POST /api/info
func (qh *QRHandler) Info(w http.ResponseWriter, r *http.Request) {
	var req models.InfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == nil {
		writeErrorMessage(w, http.StatusBadRequest, "No text data provided")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"info":    services.Classify(*req.Text),
	})
}

// recordScans appends one history record per decoded symbol. Writes are
// best effort relative to the scan response.
func (qh *QRHandler) recordScans(results []models.ScanResult, base models.Metadata) {
	for _, result := range results {
		metadata := models.Metadata{
			"qr_info":  services.Classify(result.Data),
			"position": result.Position,
		}
		for key, value := range base {
			metadata[key] = value
		}

		if _, err := qh.historyService.AddRecord(models.RecordTypeScan, result.Data, metadata); err != nil {
			log.Printf("ERROR: failed to record scan history: %v", err)
		}
	}
}
