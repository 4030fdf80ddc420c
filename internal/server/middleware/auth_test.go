package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/server/handlers"
	"github.com/iudanet/gymkeeper/internal/server/jwt"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuth(t *testing.T) {
	tokens := jwt.NewService("0123456789abcdef0123456789abcdef", time.Hour)
	valid, _, err := tokens.GenerateAccessToken("u1", "alice")
	require.NoError(t, err)

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := handlers.IdentityFrom(r.Context())
		gotUserID, gotUsername = id.UserID, id.Username
		w.WriteHeader(http.StatusOK)
	})
	h := Auth(setupTestLogger(), tokens)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "no token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "forged", header: "Bearer " + valid + "x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotUsername = "", ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/storage/sessions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u1", gotUserID)
				assert.Equal(t, "alice", gotUsername)
			} else {
				assert.Empty(t, gotUserID)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}
