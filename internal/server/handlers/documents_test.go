package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/models"
	"github.com/iudanet/gymkeeper/internal/server/storage"
	"github.com/iudanet/gymkeeper/pkg/api"
)

// memoryDocs DocumentStorageMock поверх map
func memoryDocs() *storage.DocumentStorageMock {
	var mu sync.Mutex
	docs := make(map[string]*models.Document)
	return &storage.DocumentStorageMock{
		GetDocumentFunc: func(ctx context.Context, userID, key string) (*models.Document, error) {
			mu.Lock()
			defer mu.Unlock()
			doc, ok := docs[userID+"/"+key]
			if !ok {
				return nil, storage.ErrDocumentNotFound
			}
			return doc, nil
		},
		PutDocumentFunc: func(ctx context.Context, userID, key string, value []byte) (*models.Document, error) {
			mu.Lock()
			defer mu.Unlock()
			doc := &models.Document{UserID: userID, Key: key, Value: value, Version: 1, UpdatedAt: time.Now()}
			if prev, ok := docs[userID+"/"+key]; ok {
				doc.Version = prev.Version + 1
			}
			docs[userID+"/"+key] = doc
			return doc, nil
		},
		DeleteDocumentFunc: func(ctx context.Context, userID, key string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := docs[userID+"/"+key]; !ok {
				return storage.ErrDocumentNotFound
			}
			delete(docs, userID+"/"+key)
			return nil
		},
	}
}

func documentMux(h *DocumentHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users/{userID}/storage/{key}", h.Get)
	mux.HandleFunc("PUT /api/v1/users/{userID}/storage/{key}", h.Put)
	mux.HandleFunc("DELETE /api/v1/users/{userID}/storage/{key}", h.Delete)
	return mux
}

func serveAs(mux http.Handler, userID, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req = req.WithContext(WithIdentity(req.Context(), Identity{UserID: userID, Username: "alice"}))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestDocumentHandler_Lifecycle(t *testing.T) {
	mux := documentMux(NewDocumentHandler(setupTestLogger(), memoryDocs(), 0))
	const path = "/api/v1/users/u1/storage/sessions"

	w := serveAs(mux, "u1", http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serveAs(mux, "u1", http.MethodPut, path, `{"value":[{"id":"s1"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serveAs(mux, "u1", http.MethodPut, path, `{"value":[{"id":"s1"},{"id":"s2"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serveAs(mux, "u1", http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.DocumentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "sessions", resp.Key)
	assert.EqualValues(t, 2, resp.Version)
	assert.JSONEq(t, `[{"id":"s1"},{"id":"s2"}]`, string(resp.Value))

	w = serveAs(mux, "u1", http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serveAs(mux, "u1", http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_Rejects(t *testing.T) {
	docs := memoryDocs()
	mux := documentMux(NewDocumentHandler(setupTestLogger(), docs, 64))

	tests := []struct {
		name       string
		userID     string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{name: "anonymous", method: http.MethodGet, target: "/api/v1/users/u1/storage/sessions", wantStatus: http.StatusUnauthorized},
		{name: "foreign partition", userID: "u2", method: http.MethodGet, target: "/api/v1/users/u1/storage/sessions", wantStatus: http.StatusForbidden},
		{name: "foreign write", userID: "u2", method: http.MethodPut, target: "/api/v1/users/u1/storage/sessions", body: `{"value":[]}`, wantStatus: http.StatusForbidden},
		{name: "bad key", userID: "u1", method: http.MethodGet, target: "/api/v1/users/u1/storage/a%20b", wantStatus: http.StatusBadRequest},
		{name: "missing value", userID: "u1", method: http.MethodPut, target: "/api/v1/users/u1/storage/sessions", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "not json", userID: "u1", method: http.MethodPut, target: "/api/v1/users/u1/storage/sessions", body: `value`, wantStatus: http.StatusBadRequest},
		{name: "too large", userID: "u1", method: http.MethodPut, target: "/api/v1/users/u1/storage/sessions", body: `{"value":"` + strings.Repeat("x", 100) + `"}`, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveAs(mux, tt.userID, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	assert.Empty(t, docs.PutDocumentCalls())
}
