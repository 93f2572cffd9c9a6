package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/internal/server/versions"
	"github.com/iudanet/versioneditor/pkg/api"
)

// VersionService определяет операции над историей версий, нужные handler'у
type VersionService interface {
	SaveVersion(ctx context.Context, newText string) (*models.Version, error)
	ListVersions(ctx context.Context) ([]*models.Version, error)
	GetVersion(ctx context.Context, id string) (*models.Version, error)
	DeleteVersion(ctx context.Context, id string) (*models.Version, error)
}

// DefaultMaxBodyBytes ограничение размера тела запроса по умолчанию
const DefaultMaxBodyBytes int64 = 1 << 20

// VersionHandler handles version history requests
type VersionHandler struct {
	logger       *slog.Logger
	service      VersionService
	maxBodyBytes int64
}

// NewVersionHandler creates a new version handler
// maxBodyBytes <= 0 selects DefaultMaxBodyBytes
func NewVersionHandler(logger *slog.Logger, service VersionService, maxBodyBytes int64) *VersionHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &VersionHandler{
		logger:       logger,
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

// SaveVersion обрабатывает POST /save-version
// Сохраняет новый текст как версию с diff относительно последней
func (h *VersionHandler) SaveVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req api.SaveVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WarnContext(ctx, "save request body too large", slog.Int64("limit", tooLarge.Limit))
			sendError(h.logger, w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.WarnContext(ctx, "failed to decode save request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Отсутствующее поле и пустая строка обрабатываются одинаково
	if req.NewText == nil || *req.NewText == "" {
		sendError(h.logger, w, api.MessageTextRequired, http.StatusBadRequest)
		return
	}

	version, err := h.service.SaveVersion(ctx, *req.NewText)
	if err != nil {
		h.handleServiceError(ctx, w, "save version", err)
		return
	}

	sendJSON(h.logger, w, api.VersionResponse{
		Message: api.MessageVersionSaved,
		Data:    version,
	}, http.StatusOK)
}

// ListVersions обрабатывает GET /versions
// Возвращает всю историю, новые версии первыми
func (h *VersionHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.service.ListVersions(ctx)
	if err != nil {
		h.handleServiceError(ctx, w, "list versions", err)
		return
	}

	if list == nil {
		list = []*models.Version{}
	}

	sendJSON(h.logger, w, api.VersionListResponse{
		Success: true,
		Count:   len(list),
		Data:    list,
	}, http.StatusOK)
}

// GetVersion обрабатывает GET /version/{id}
func (h *VersionHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	version, err := h.service.GetVersion(ctx, id)
	if err != nil {
		h.handleServiceError(ctx, w, "get version", err)
		return
	}

	sendJSON(h.logger, w, api.VersionResponse{
		Message: api.MessageVersionFound,
		Data:    version,
	}, http.StatusOK)
}

// DeleteVersion обрабатывает DELETE /version/{id}
// Удаляет версию и возвращает удаленную запись
func (h *VersionHandler) DeleteVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	version, err := h.service.DeleteVersion(ctx, id)
	if err != nil {
		h.handleServiceError(ctx, w, "delete version", err)
		return
	}

	sendJSON(h.logger, w, api.VersionResponse{
		Message: api.MessageVersionDeleted,
		Data:    version,
	}, http.StatusOK)
}

// handleServiceError сопоставляет ошибки сервиса со статусами HTTP
func (h *VersionHandler) handleServiceError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, versions.ErrInvalidInput):
		h.logger.WarnContext(ctx, operation+": invalid input", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, versions.ErrNotFound):
		h.logger.WarnContext(ctx, operation+": not found", slog.Any("error", err))
		sendError(h.logger, w, api.MessageVersionNotFound, http.StatusNotFound)
	case errors.Is(err, versions.ErrConflict):
		h.logger.WarnContext(ctx, operation+": conflict", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusConflict)
	default:
		// Ошибка хранилища возвращается клиенту как есть
		h.logger.ErrorContext(ctx, operation+" failed", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusInternalServerError)
	}
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Message: message}, statusCode)
}
