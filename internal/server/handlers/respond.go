package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/gymkeeper/pkg/api"
)

func sendJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("response marshal failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Debug("response write failed", slog.Any("error", err))
	}
}

// sendError пишет api.ErrorResponse; Error всегда текст статуса
func sendError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	sendJSON(w, logger, api.ErrorResponse{Error: http.StatusText(statusCode), Message: message}, statusCode)
}
