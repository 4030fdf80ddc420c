package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
	"github.com/iudanet/gymkeeper/pkg/api"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

// StatusError ответ сервера с кодом не из диапазона 2xx
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}

// Client представляет HTTP клиент для взаимодействия с сервером.
// Реализует remote.DocumentStore поверх /api/v1/users/{id}/storage/{key}.
type Client struct {
	httpClient *http.Client
	auth       storage.AuthStorage
	baseURL    string
}

var _ remote.DocumentStore = (*Client)(nil)

// NewClient создает новый API клиент. auth может быть nil, тогда
// запросы к документам уходят без токена.
func NewClient(baseURL string, auth storage.AuthStorage, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		auth:    auth,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := "/api/v1/auth/salt/" + url.PathEscape(username)
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Ping проверяет доступность сервера
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/health", nil, nil, false); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// GetDocument implements remote.DocumentStore.
func (c *Client) GetDocument(ctx context.Context, docPath string) (json.RawMessage, error) {
	path, err := storagePath(docPath)
	if err != nil {
		return nil, err
	}

	var resp api.DocumentResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, documentError(err)
	}
	return resp.Value, nil
}

// PutDocument implements remote.DocumentStore.
func (c *Client) PutDocument(ctx context.Context, docPath string, value json.RawMessage) error {
	path, err := storagePath(docPath)
	if err != nil {
		return err
	}

	req := api.PutDocumentRequest{Value: value}
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil, true); err != nil {
		return documentError(err)
	}
	return nil
}

// DeleteDocument implements remote.DocumentStore.
func (c *Client) DeleteDocument(ctx context.Context, docPath string) error {
	path, err := storagePath(docPath)
	if err != nil {
		return err
	}

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		err = documentError(err)
		if errors.Is(err, remote.ErrDocumentNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// storagePath переводит путь документа в URL сервера
func storagePath(docPath string) (string, error) {
	userID, key, ok := remote.ParseDocumentPath(docPath)
	if !ok {
		return "", fmt.Errorf("invalid document path %q", docPath)
	}
	return "/api/v1/users/" + url.PathEscape(userID) + "/storage/" + url.PathEscape(key), nil
}

// documentError сопоставляет HTTP статусы с ошибками хранилища
func documentError(err error) error {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", remote.ErrDocumentNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", storage.ErrNotAuthenticated, err)
		}
	}
	return err
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any, authorized bool) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized && c.auth != nil {
		auth, err := c.auth.GetAuth(ctx)
		if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
			return fmt.Errorf("failed to load access token: %w", err)
		}
		if auth != nil && auth.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &StatusError{Code: resp.StatusCode, Message: string(respBody)}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			switch {
			case errResp.Message != "":
				se.Message = errResp.Message
			case errResp.Error != "":
				se.Message = errResp.Error
			}
		}
		return se
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
