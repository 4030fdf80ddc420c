package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/gymkeeper/internal/server/storage"
	"github.com/iudanet/gymkeeper/internal/validation"
	"github.com/iudanet/gymkeeper/pkg/api"
)

// DefaultMaxDocumentBytes ограничение тела PUT по умолчанию
const DefaultMaxDocumentBytes = 5 << 20

// DocumentHandler serves /api/v1/users/{userID}/storage/{key}. A user may
// only touch documents of their own partition.
type DocumentHandler struct {
	logger   *slog.Logger
	docs     storage.DocumentStorage
	maxBytes int64
}

// NewDocumentHandler создает handler документов. maxBytes <= 0 выбирает
// DefaultMaxDocumentBytes.
func NewDocumentHandler(logger *slog.Logger, docs storage.DocumentStorage, maxBytes int64) *DocumentHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDocumentBytes
	}
	return &DocumentHandler{logger: logger, docs: docs, maxBytes: maxBytes}
}

// target проверяет владельца и ключ документа
func (h *DocumentHandler) target(w http.ResponseWriter, r *http.Request) (userID, key string, ok bool) {
	caller, authenticated := IdentityFrom(r.Context())
	if !authenticated {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	userID = r.PathValue("userID")
	if userID != caller.UserID {
		h.logger.WarnContext(r.Context(), "foreign partition access denied",
			slog.String("user_id", caller.UserID), slog.String("partition", userID))
		sendError(w, h.logger, "access to another user's storage is forbidden", http.StatusForbidden)
		return "", "", false
	}

	key = r.PathValue("key")
	if err := validation.ValidateStorageKey(key); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return "", "", false
	}

	return userID, key, true
}

// Get обрабатывает GET /api/v1/users/{userID}/storage/{key}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.target(w, r)
	if !ok {
		return
	}

	doc, err := h.docs.GetDocument(r.Context(), userID, key)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			sendError(w, h.logger, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to get document", slog.String("key", key), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, api.DocumentResponse{
		Key:       doc.Key,
		Value:     doc.Value,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
	}, http.StatusOK)
}

// Put обрабатывает PUT /api/v1/users/{userID}/storage/{key}
func (h *DocumentHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.target(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	var req api.PutDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, h.logger, "document is too large", http.StatusRequestEntityTooLarge)
			return
		}
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Value) == 0 || !json.Valid(req.Value) {
		sendError(w, h.logger, "value must be a JSON document", http.StatusBadRequest)
		return
	}

	doc, err := h.docs.PutDocument(r.Context(), userID, key, req.Value)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to save document", slog.String("key", key), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.DebugContext(r.Context(), "document saved",
		slog.String("user_id", userID), slog.String("key", key), slog.Int64("version", doc.Version))

	sendJSON(w, h.logger, api.DocumentResponse{
		Key:       doc.Key,
		Value:     doc.Value,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
	}, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/users/{userID}/storage/{key}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.docs.DeleteDocument(r.Context(), userID, key); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			sendError(w, h.logger, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to delete document", slog.String("key", key), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
