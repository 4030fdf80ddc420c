package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/crypto"
	"github.com/iudanet/gymkeeper/internal/validation"
	"github.com/iudanet/gymkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . Client

// Client is the part of the HTTP client used for authentication.
type Client interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	GetSalt(ctx context.Context, username string) (*api.SaltResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}

// Service предоставляет функции авторизации
type Service struct {
	client  Client
	session *Session
	logger  *slog.Logger
	params  crypto.Params
}

// NewService создает новый сервис авторизации
func NewService(client Client, session *Session, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		client:  client,
		session: session,
		logger:  logger,
		params:  crypto.DefaultParams,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID     string // UUID пользователя
	Username   string
	PublicSalt string // public salt (base64)
}

// Register регистрирует нового пользователя. Вход не выполняется.
func (s *Service) Register(ctx context.Context, username, masterPassword string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(masterPassword); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	// 1. Генерируем публичную соль
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	// 2. Деривируем и хешируем auth_key
	authKeyHash, err := s.authKeyHash(masterPassword, username, salt)
	if err != nil {
		return nil, err
	}

	// 3. Отправляем запрос на регистрацию
	resp, err := s.client.Register(ctx, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  salt,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "username", username, "user_id", resp.UserID)
	return &RegisterResult{
		UserID:     resp.UserID,
		Username:   username,
		PublicSalt: salt,
	}, nil
}

// Login выполняет аутентификацию и делает пользователя текущей идентичностью
func (s *Service) Login(ctx context.Context, username, masterPassword string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(masterPassword); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	// 1. Получаем public_salt с сервера
	saltResp, err := s.client.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	// 2. Деривируем и хешируем auth_key
	authKeyHash, err := s.authKeyHash(masterPassword, username, saltResp.PublicSalt)
	if err != nil {
		return nil, err
	}

	// 3. Отправляем запрос на логин
	resp, err := s.client.Login(ctx, api.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	data := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		PublicSalt:  saltResp.PublicSalt,
	}
	if resp.ExpiresIn > 0 {
		data.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	if err := s.session.SignIn(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Logout удаляет локальные данные авторизации
func (s *Service) Logout(ctx context.Context) error {
	return s.session.SignOut(ctx)
}

func (s *Service) authKeyHash(masterPassword, username, salt string) (string, error) {
	authKey, err := crypto.DeriveAuthKey(masterPassword, username, salt, s.params)
	if err != nil {
		return "", fmt.Errorf("failed to derive auth key: %w", err)
	}
	hash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return "", fmt.Errorf("failed to hash auth key: %w", err)
	}
	return hash, nil
}
