package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/extract"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
	"github.com/5dollarhigh/grocerytrace/internal/ocr"
)

type router struct {
	db         *sql.DB
	classifier *category.Classifier
	parser     *extract.Parser
	scanner    ocr.Scanner
	uploadDir  string
	logger     *logger.Logger
}

func New(db *sql.DB, classifier *category.Classifier, scanner ocr.Scanner, uploadDir string, log *logger.Logger) http.Handler {
	rt := &router{
		db:         db,
		classifier: classifier,
		parser:     extract.NewParser(classifier),
		scanner:    scanner,
		uploadDir:  uploadDir,
		logger:     log,
	}

	mux := &http.ServeMux{}

	mux.HandleFunc("GET /api/health", rt.healthHandler)

	mux.HandleFunc("POST /api/receipts/upload-scan", rt.uploadScanHandler)
	mux.HandleFunc("POST /api/receipts/upload-email", rt.uploadEmailHandler)
	mux.HandleFunc("GET /api/receipts", rt.receiptsHandler)
	mux.HandleFunc("GET /api/receipts/{id}", rt.receiptHandler)
	mux.HandleFunc("DELETE /api/receipts/{id}", rt.deleteReceiptHandler)

	mux.HandleFunc("GET /api/analytics/monthly-trends", rt.monthlyTrendsHandler)
	mux.HandleFunc("GET /api/analytics/category-breakdown", rt.categoryBreakdownHandler)
	mux.HandleFunc("GET /api/analytics/top-items", rt.topItemsHandler)
	mux.HandleFunc("GET /api/analytics/store-comparison", rt.storeComparisonHandler)
	mux.HandleFunc("GET /api/analytics/shopping-frequency", rt.shoppingFrequencyHandler)
	mux.HandleFunc("GET /api/analytics/price-trends", rt.priceTrendsHandler)
	mux.HandleFunc("GET /api/analytics/summary", rt.summaryHandler)
	mux.HandleFunc("GET /api/analytics/waste-insights", rt.wasteInsightsHandler)

	mux.HandleFunc("GET /api/categories", rt.categoriesHandler)

	return mux
}

func (rt *router) healthHandler(w http.ResponseWriter, _ *http.Request) {
	rt.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (rt *router) categoriesHandler(w http.ResponseWriter, _ *http.Request) {
	type categoryInfo struct {
		Color string `json:"color"`
	}

	categories := map[string]categoryInfo{}
	for name, color := range rt.classifier.Colors() {
		categories[name] = categoryInfo{Color: color}
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (rt *router) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		rt.logger.Error("encoding response", "error", err.Error())
	}
}

func (rt *router) writeError(w http.ResponseWriter, status int, message string) {
	rt.writeJSON(w, status, map[string]string{"error": message})
}
