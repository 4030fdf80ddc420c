package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
	"github.com/iudanet/gymkeeper/pkg/api"
)

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://localhost:8080", nil, 0)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://localhost:8080", nil, 5*time.Second)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

// authServer отвечает на auth эндпоинты как настоящий сервер
func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username == "taken" {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Conflict", Message: "user already exists"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{UserID: "u-" + req.Username, Message: "ok"})
	})
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("username") != "alice smith" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "user not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.SaltResponse{PublicSalt: "c2FsdA=="})
	})
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.AuthKeyHash != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("invalid credentials"))
			return
		}
		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "jwt", UserID: "u1", ExpiresIn: 3600})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_AuthEndpoints(t *testing.T) {
	ctx := context.Background()
	client := NewClient(authServer(t).URL, nil, time.Second)

	reg, err := client.Register(ctx, api.RegisterRequest{Username: "alice", AuthKeyHash: "h", PublicSalt: "s"})
	require.NoError(t, err)
	assert.Equal(t, "u-alice", reg.UserID)

	// Имя экранируется в пути
	salt, err := client.GetSalt(ctx, "alice smith")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", salt.PublicSalt)

	token, err := client.Login(ctx, api.LoginRequest{Username: "alice", AuthKeyHash: "good"})
	require.NoError(t, err)
	assert.Equal(t, api.TokenResponse{AccessToken: "jwt", UserID: "u1", ExpiresIn: 3600}, *token)

	assert.NoError(t, client.Ping(ctx))
}

func TestClient_AuthErrors(t *testing.T) {
	ctx := context.Background()
	client := NewClient(authServer(t).URL, nil, time.Second)

	tests := []struct {
		call     func() error
		name     string
		wantMsg  string
		wantCode int
	}{
		{
			name: "conflict uses message",
			call: func() error {
				_, err := client.Register(ctx, api.RegisterRequest{Username: "taken"})
				return err
			},
			wantCode: http.StatusConflict,
			wantMsg:  "user already exists",
		},
		{
			name: "not found falls back to error field",
			call: func() error {
				_, err := client.GetSalt(ctx, "bob")
				return err
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "user not found",
		},
		{
			name: "plain text body",
			call: func() error {
				_, err := client.Login(ctx, api.LoginRequest{Username: "alice", AuthKeyHash: "bad"})
				return err
			},
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantCode, se.Code)
			assert.Equal(t, tt.wantMsg, se.Message)
		})
	}
}

func TestClient_TransportErrors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{{{"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, nil, time.Second).GetSalt(context.Background(), "alice")
		assert.ErrorContains(t, err, "failed to decode response")
	})

	t.Run("context deadline", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		err := NewClient(server.URL, nil, time.Second).Ping(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("server down", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		err := NewClient(url, nil, time.Second).Ping(context.Background())
		require.Error(t, err)
		var se *StatusError
		assert.False(t, errors.As(err, &se))
	})
}

func newTokenStorage(token string) *storage.AuthStorageMock {
	return &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{UserID: "u1", AccessToken: token}, nil
		},
	}
}

// Токен переносится при редиректе
func TestClient_RedirectKeepsAuthorization(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users/u1/storage/sessions", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/moved/sessions", http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("GET /moved/sessions", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(api.DocumentResponse{Key: "sessions", Value: json.RawMessage(`[]`)})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	value, err := NewClient(server.URL, newTokenStorage("jwt"), time.Second).GetDocument(context.Background(), remote.DocumentPath("u1", "sessions"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value))
	assert.Equal(t, "Bearer jwt", gotAuth)
}

// TestClient_PutGetDocument проверяет запись и чтение документа
func TestClient_PutGetDocument(t *testing.T) {
	docs := make(map[string]json.RawMessage)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer doc_token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/users/u1/storage/sessions", r.URL.Path)

		switch r.Method {
		case http.MethodPut:
			var req api.PutDocumentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			docs[r.URL.Path] = req.Value
			_ = json.NewEncoder(w).Encode(api.DocumentResponse{Key: "sessions", Version: 1})
		case http.MethodGet:
			value, ok := docs[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "document not found"})
				return
			}
			_ = json.NewEncoder(w).Encode(api.DocumentResponse{Key: "sessions", Value: value, Version: 1})
		case http.MethodDelete:
			if _, ok := docs[r.URL.Path]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			delete(docs, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	auth := newTokenStorage("doc_token")
	client := NewClient(server.URL, auth, time.Second)
	ctx := context.Background()
	path := remote.DocumentPath("u1", "sessions")

	_, err := client.GetDocument(ctx, path)
	assert.ErrorIs(t, err, remote.ErrDocumentNotFound)

	require.NoError(t, client.PutDocument(ctx, path, json.RawMessage(`[{"id":"s1"}]`)))

	got, err := client.GetDocument(ctx, path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"s1"}]`, string(got))

	require.NoError(t, client.DeleteDocument(ctx, path))
	// Повторное удаление отсутствующего документа не ошибка
	require.NoError(t, client.DeleteDocument(ctx, path))

	assert.Len(t, auth.GetAuthCalls(), 5)
}

// TestClient_Document_Unauthorized проверяет сопоставление 401 с ErrNotAuthenticated
func TestClient_Document_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Unauthorized", Message: "token expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTokenStorage("expired"), 0)

	err := client.PutDocument(context.Background(), remote.DocumentPath("u1", "trainings"), json.RawMessage(`[]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotAuthenticated)
	assert.Contains(t, err.Error(), "server error (401): token expired")

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}

// TestClient_Document_InvalidPath проверяет отказ для пути вне партиции пользователя
func TestClient_Document_InvalidPath(t *testing.T) {
	client := NewClient("http://localhost:0", nil, 0)

	_, err := client.GetDocument(context.Background(), "sessions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document path")
}

// TestClient_Document_NoAuth проверяет запрос без сохраненного токена
func TestClient_Document_NoAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.DocumentResponse{Value: json.RawMessage(`[]`)})
	}))
	defer server.Close()

	auth := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
	}
	client := NewClient(server.URL, auth, 0)

	got, err := client.GetDocument(context.Background(), remote.DocumentPath("u1", "trainings"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}

// TestClient_Ping проверяет health check
func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	require.NoError(t, NewClient(server.URL, nil, 0).Ping(context.Background()))
}
