package main

import (
	"bufio"
	"log"
	"net/http"
	"os"
	"strings"

	"back_qr/internal/config"
	"back_qr/internal/database"
	"back_qr/internal/handlers"
	"back_qr/internal/services"
	"back_qr/internal/utils"
)

// loadEnvFile loads environment variables from a file
func loadEnvFile(filename string) {
	file, err := os.Open(filename)
	if err != nil {
		return // File doesn't exist, skip silently
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	log.Printf("DEBUG: Loaded environment from %s", filename)
}

// CORS middleware
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	allowAll := false
	for _, allowed := range origins {
		if allowed == "*" {
			allowAll = true
			break
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowed := range origins {
				if origin == allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	log.Println("DEBUG: Starting QR backend server...")

	// Load environment variables from .env file
	loadEnvFile(".env")
	loadEnvFile("env.local")

	cfg := config.Load()

	log.Println("DEBUG: Initializing database...")
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	log.Println("DEBUG: Database initialized successfully")

	qrService := services.NewQRService()
	historyService := services.NewHistoryService(db)
	fileHandler := utils.NewFileHandler(cfg.UploadDir, cfg.MaxUploadSize)

	qrHandler := handlers.NewQRHandler(qrService, historyService, fileHandler)
	historyHandler := handlers.NewHistoryHandler(historyService)

	router := handlers.NewRouter(qrHandler, historyHandler)
	handler := corsMiddleware(cfg.CORSOrigins, router)

	log.Printf("🚀 QR Scanner Backend started on :%s", cfg.Port)
	log.Println("📡 Available endpoints:")
	log.Println("      POST   /api/scan/file     - Scan QR from uploaded file")
	log.Println("      POST   /api/scan/data     - Scan QR from base64 image")
	log.Println("      POST   /api/generate      - Generate QR code")
	log.Println("      POST   /api/info          - Classify QR content")
	log.Println("      GET    /api/history       - List scan/generate history")
	log.Println("      GET    /api/history/stats - History statistics")
	log.Println("      DELETE /api/history/{id}  - Delete history record")
	log.Println("      DELETE /api/history/clear - Clear history")
	log.Println("      GET    /health            - Health check")

	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
