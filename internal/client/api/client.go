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
	"strings"
	"time"

	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/pkg/api"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// ErrNotFound сервер ответил 404
var ErrNotFound = errors.New("not found")

// Error ответ сервера со статусом не 2xx
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет проверять 404 через errors.Is(err, ErrNotFound)
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client представляет HTTP клиент для взаимодействия с сервером версий
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
// timeout <= 0 выбирает DefaultTimeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// SaveVersion сохраняет текст как новую версию
func (c *Client) SaveVersion(ctx context.Context, newText string) (*models.Version, error) {
	var resp api.VersionResponse
	err := c.doRequest(ctx, http.MethodPost, "/save-version", api.SaveVersionRequest{NewText: &newText}, &resp)
	if err != nil {
		return nil, fmt.Errorf("save version request failed: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("save version: empty response data")
	}
	return resp.Data, nil
}

// ListVersions возвращает историю версий, новые первыми
func (c *Client) ListVersions(ctx context.Context) ([]*models.Version, error) {
	var resp api.VersionListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/versions", nil, &resp); err != nil {
		return nil, fmt.Errorf("list versions request failed: %w", err)
	}
	if resp.Data == nil {
		return []*models.Version{}, nil
	}
	return resp.Data, nil
}

// GetVersion возвращает версию по id
func (c *Client) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	var resp api.VersionResponse
	if err := c.doRequest(ctx, http.MethodGet, "/version/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get version request failed: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("get version: empty response data")
	}
	return resp.Data, nil
}

// DeleteVersion удаляет версию по id и возвращает удаленную запись
func (c *Client) DeleteVersion(ctx context.Context, id string) (*models.Version, error) {
	var resp api.VersionResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/version/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("delete version request failed: %w", err)
	}
	return resp.Data, nil
}

// Health проверяет доступность сервера и его хранилища
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
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

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
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
		message := strings.TrimSpace(string(respBody))
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}
		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
