// Package handlers implements the HTTP API of the document server.
package handlers

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gymkeeper/internal/crypto"
	"github.com/iudanet/gymkeeper/internal/models"
	"github.com/iudanet/gymkeeper/internal/server/storage"
	"github.com/iudanet/gymkeeper/internal/validation"
	"github.com/iudanet/gymkeeper/pkg/api"
)

// TokenIssuer выпускает access токены
type TokenIssuer interface {
	GenerateAccessToken(userID, username string) (token string, expiresIn int64, err error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	tokens TokenIssuer
	now    func() time.Time
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
		now:    time.Now,
	}
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	if msg := registerProblem(req); msg != "" {
		h.logger.WarnContext(ctx, "register rejected", slog.String("username", req.Username), slog.String("reason", msg))
		sendError(w, h.logger, msg, http.StatusBadRequest)
		return
	}

	user := &models.User{
		ID:          uuid.New().String(),
		Username:    req.Username,
		AuthKeyHash: req.AuthKeyHash,
		PublicSalt:  req.PublicSalt,
		CreatedAt:   h.now(),
	}
	err := h.users.CreateUser(ctx, user)
	switch {
	case errors.Is(err, storage.ErrUserAlreadyExists):
		sendError(w, h.logger, "username already taken", http.StatusConflict)
		return
	case err != nil:
		h.internalError(w, r, "create user", err)
		return
	}

	h.logger.InfoContext(ctx, "user registered", slog.String("username", user.Username), slog.String("user_id", user.ID))
	sendJSON(w, h.logger, api.RegisterResponse{UserID: user.ID, Message: "User registered successfully"}, http.StatusCreated)
}

// GetSalt обрабатывает GET /api/v1/auth/salt/{username}
func (h *AuthHandler) GetSalt(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if err := validation.ValidateUsername(username); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), username)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		sendError(w, h.logger, "user not found", http.StatusNotFound)
	case err != nil:
		h.internalError(w, r, "load user", err)
	default:
		sendJSON(w, h.logger, api.SaltResponse{PublicSalt: user.PublicSalt}, http.StatusOK)
	}
}

// Login обрабатывает POST /api/v1/auth/login. Неизвестный пользователь и
// неверный ключ дают одинаковый ответ.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}
	if req.AuthKeyHash == "" {
		sendError(w, h.logger, "auth_key_hash is required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		h.internalError(w, r, "load user", err)
		return
	}
	if user == nil || crypto.CompareHash(req.AuthKeyHash, user.AuthKeyHash) != nil {
		h.logger.WarnContext(ctx, "login failed", slog.String("username", req.Username))
		sendError(w, h.logger, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, expiresIn, err := h.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		h.internalError(w, r, "issue access token", err)
		return
	}
	if err := h.users.UpdateLastLogin(ctx, user.ID, h.now()); err != nil {
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("username", user.Username), slog.String("user_id", user.ID))
	sendJSON(w, h.logger, api.TokenResponse{AccessToken: token, UserID: user.ID, ExpiresIn: expiresIn}, http.StatusOK)
}

func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.WarnContext(r.Context(), "malformed request body", slog.String("path", r.URL.Path), slog.Any("error", err))
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// internalError логирует причину, клиенту уходит только общий текст
func (h *AuthHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.ErrorContext(r.Context(), op+" failed", slog.Any("error", err))
	sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
}

// registerProblem возвращает текст ошибки валидации или пустую строку
func registerProblem(req api.RegisterRequest) string {
	if err := validation.ValidateUsername(req.Username); err != nil {
		return err.Error()
	}
	if b, err := hex.DecodeString(req.AuthKeyHash); err != nil || len(b) != 32 {
		return "auth_key_hash must be a hex encoded SHA256"
	}
	if salt, err := base64.StdEncoding.DecodeString(req.PublicSalt); err != nil || len(salt) != crypto.SaltSize {
		return "public_salt must be 32 base64 encoded bytes"
	}
	return ""
}
