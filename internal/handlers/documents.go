package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ingestor.go -package=mocks docrag/internal/handlers Ingestor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"docrag/internal/contextutil"
	"docrag/internal/docstore"
	"docrag/internal/ingest"
)

// maxUploadBytes bounds one upload request body.
const maxUploadBytes = 64 << 20

// Ingestor runs the ingestion pipeline for one session.
type Ingestor interface {
	Ingest(ctx context.Context, sessionID string) (*ingest.Report, error)
}

// supportedUploadExts mirrors the extraction registry; unsupported files are
// rejected at upload time instead of failing later during processing.
var supportedUploadExts = map[string]struct{}{
	".pdf": {}, ".md": {}, ".markdown": {}, ".txt": {}, ".text": {},
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {},
}

// UploadHandler receives multipart file uploads for a session.
type UploadHandler struct {
	files docstore.FileStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(files docstore.FileStore) *UploadHandler {
	return &UploadHandler{files: files}
}

// UploadResponse lists the files accepted by an upload request.
type UploadResponse struct {
	SessionID string   `json:"session_id"`
	Uploaded  []string `json:"uploaded"`
}

// ServeHTTP stores each uploaded file under the session's directory.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	sessionID := r.FormValue("session_id")
	if strings.TrimSpace(sessionID) == "" {
		writeError(w, http.StatusBadRequest, "Validation error: session_id cannot be empty")
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "Validation error: no files provided")
		return
	}

	var uploaded []string
	for _, header := range fileHeaders {
		name := filepath.Base(header.Filename)
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := supportedUploadExts[ext]; !ok {
			writeError(w, http.StatusBadRequest, "Unsupported file type: "+name)
			return
		}

		file, err := header.Open()
		if err != nil {
			logger.ErrorContext(ctx, "failed to open uploaded file", "file", name, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
			return
		}

		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			logger.ErrorContext(ctx, "failed to read uploaded file", "file", name, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
			return
		}

		if err := h.files.Save(ctx, sessionID, name, data); err != nil {
			handleServiceError(ctx, w, err, "Failed to store uploaded file")
			return
		}
		uploaded = append(uploaded, name)
	}

	logger.InfoContext(ctx, "files uploaded", "session_id", sessionID, "count", len(uploaded))
	writeJSON(w, http.StatusOK, UploadResponse{SessionID: sessionID, Uploaded: uploaded})
}

// ProcessHandler runs ingestion over a session's uploaded files.
type ProcessHandler struct {
	pipeline Ingestor
}

// NewProcessHandler creates a new ProcessHandler.
func NewProcessHandler(pipeline Ingestor) *ProcessHandler {
	return &ProcessHandler{pipeline: pipeline}
}

// ProcessRequest identifies the session whose files should be ingested.
type ProcessRequest struct {
	SessionID string `json:"session_id"`
}

// ServeHTTP ingests the session's files and returns the ingestion report.
func (h *ProcessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		writeError(w, http.StatusBadRequest, "Validation error: session_id cannot be empty")
		return
	}

	report, err := h.pipeline.Ingest(ctx, req.SessionID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to process documents")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
