package router

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/5dollarhigh/grocerytrace/internal/db"
	"github.com/5dollarhigh/grocerytrace/internal/email"
	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

const maxUploadSize = 16 << 20

func (rt *router) uploadScanHandler(w http.ResponseWriter, r *http.Request) {
	content, filename, ok := rt.readUpload(w, r)
	if !ok {
		return
	}

	savedName, err := rt.saveUpload("receipts", filename, content)
	if err != nil {
		rt.logger.Error("saving scan upload", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to save file")
		return
	}

	doc, err := rt.scanner.Scan(content)
	if err != nil {
		rt.logger.Warn("unreadable receipt image", "file", savedName, "error", err.Error())
		rt.writeError(w, http.StatusUnprocessableEntity, "document unreadable")
		return
	}

	rt.storeParsed(w, doc, savedName)
}

func (rt *router) uploadEmailHandler(w http.ResponseWriter, r *http.Request) {
	content, filename, ok := rt.readUpload(w, r)
	if !ok {
		return
	}

	if path.Ext(filename) != ".eml" {
		rt.writeError(w, http.StatusBadRequest, "only .eml files are supported")
		return
	}

	savedName, err := rt.saveUpload("emails", filename, content)
	if err != nil {
		rt.logger.Error("saving email upload", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to save file")
		return
	}

	doc, err := email.ParseEML(bytes.NewReader(content))
	if err != nil {
		rt.logger.Warn("unreadable receipt email", "file", savedName, "error", err.Error())
		rt.writeError(w, http.StatusUnprocessableEntity, "document unreadable")
		return
	}

	rt.storeParsed(w, doc, savedName)
}

func (rt *router) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		rt.writeError(w, http.StatusBadRequest, "invalid multipart request")
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		message := "error retrieving the file"
		if errors.Is(err, http.ErrMissingFile) {
			message = "no file provided"
		}
		rt.writeError(w, http.StatusBadRequest, message)
		return nil, "", false
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		rt.writeError(w, http.StatusBadRequest, "error reading the file")
		return nil, "", false
	}

	return buf.Bytes(), header.Filename, true
}

// saveUpload keeps the original upload on disk for troubleshooting and
// reprocessing. The stored name is unique, uploads never collide.
func (rt *router) saveUpload(subdir, filename string, content []byte) (string, error) {
	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102_150405"), uuid.NewString(), path.Ext(filename))

	dir := filepath.Join(rt.uploadDir, subdir)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(dir, name), content, 0600); err != nil {
		return "", err
	}

	return name, nil
}

func (rt *router) storeParsed(w http.ResponseWriter, doc receipt.RawDocument, sourceFile string) {
	parsed := rt.parser.Parse(doc)
	parsed.SourceFile = sourceFile

	stored, err := db.InsertReceipt(rt.db, parsed)
	if err != nil {
		rt.logger.Error("storing receipt", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to store receipt")
		return
	}

	rt.logger.Info("receipt processed", "store", stored.StoreName, "items", len(stored.Items), "source", string(stored.Source))

	rt.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"receipt": stored,
		"message": "Receipt processed successfully",
	})
}

func (rt *router) receiptsHandler(w http.ResponseWriter, r *http.Request) {
	filters := db.Filters{
		Store:  r.URL.Query().Get("store"),
		Limit:  intParam(r, "limit", 100),
		Offset: intParam(r, "offset", 0),
	}

	if start := r.URL.Query().Get("start_date"); start != "" {
		t, err := parseDateParam(start)
		if err != nil {
			rt.writeError(w, http.StatusBadRequest, "invalid start_date")
			return
		}
		filters.StartDate = t
	}

	if end := r.URL.Query().Get("end_date"); end != "" {
		t, err := parseDateParam(end)
		if err != nil {
			rt.writeError(w, http.StatusBadRequest, "invalid end_date")
			return
		}
		filters.EndDate = t
	}

	receipts, total, err := db.GetReceipts(rt.db, filters)
	if err != nil {
		rt.logger.Error("listing receipts", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to list receipts")
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"receipts": receipts,
		"total":    total,
		"limit":    filters.Limit,
		"offset":   filters.Offset,
	})
}

func (rt *router) receiptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		rt.writeError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}

	stored, err := db.GetReceipt(rt.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		rt.writeError(w, http.StatusNotFound, "receipt not found")
		return
	}
	if err != nil {
		rt.logger.Error("fetching receipt", "id", id, "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to fetch receipt")
		return
	}

	rt.writeJSON(w, http.StatusOK, stored)
}

func (rt *router) deleteReceiptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		rt.writeError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}

	err = db.DeleteReceipt(rt.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		rt.writeError(w, http.StatusNotFound, "receipt not found")
		return
	}
	if err != nil {
		rt.logger.Error("deleting receipt", "id", id, "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to delete receipt")
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Receipt deleted",
	})
}

func intParam(r *http.Request, name string, fallback int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
