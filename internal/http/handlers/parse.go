package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"maplist/backend/internal/export"
	"maplist/backend/internal/placeparser"
	"maplist/backend/internal/placeparser/core"
)

type parseRequest struct {
	Input     string `json:"input" validate:"required"`
	InputKind string `json:"inputKind" validate:"omitempty,oneof=auto text html"`
	SourceURL string `json:"sourceUrl" validate:"omitempty,url"`
}

// ParseInput runs the extraction engine over the posted block of text or
// HTML and returns the full extraction result.
func (h *Handler) ParseInput(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	req, ok := h.decodeParseRequest(logger, w, r, "parse_input")
	if !ok {
		return
	}
	result, ok := h.runParse(logger, w, req, "parse_input")
	if !ok {
		return
	}
	logger.Info("action", "action", "parse_input", "status", "ok", "places", len(result.Places))
	writeJSON(w, http.StatusOK, result)
}

// ParseInputCSV is ParseInput with the accepted records rendered as CSV
// for the export/clipboard consumers.
func (h *Handler) ParseInputCSV(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	req, ok := h.decodeParseRequest(logger, w, r, "parse_input_csv")
	if !ok {
		return
	}
	result, ok := h.runParse(logger, w, req, "parse_input_csv")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, result.Places); err != nil {
		logger.Error("action", "action", "parse_input_csv", "status", "csv_error", "error", err)
		writeError(w, http.StatusInternalServerError, "csv encoding failed")
		return
	}
	logger.Info("action", "action", "parse_input_csv", "status", "ok", "places", len(result.Places))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="places.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// decodeParseRequest handles internal decode parse request behavior.
func (h *Handler) decodeParseRequest(logger *slog.Logger, w http.ResponseWriter, r *http.Request, action string) (*parseRequest, bool) {
	body := http.MaxBytesReader(w, r.Body, int64(h.cfg.Parse.MaxInputBytes))
	var req parseRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		logger.Warn("action", "action", action, "status", "invalid_json")
		writeError(w, http.StatusBadRequest, "invalid json")
		return nil, false
	}
	if err := h.validator.Struct(&req); err != nil {
		logger.Warn("action", "action", action, "status", "invalid_payload")
		writeError(w, http.StatusBadRequest, "input required")
		return nil, false
	}
	return &req, true
}

// runParse handles internal run parse behavior.
func (h *Handler) runParse(logger *slog.Logger, w http.ResponseWriter, req *parseRequest, action string) (*core.ExtractionResult, bool) {
	result, err := placeparser.ParseWithOptions(req.Input, placeparser.Options{
		Kind:      core.InputKind(req.InputKind),
		SourceURL: req.SourceURL,
	})
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			logger.Warn("action", "action", action, "status", "invalid_input")
			writeError(w, http.StatusUnprocessableEntity, "input is not valid text")
			return nil, false
		}
		logger.Error("action", "action", action, "status", "parse_error", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "parse failed")
		return nil, false
	}
	return result, true
}
