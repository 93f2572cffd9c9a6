package api

import "github.com/iudanet/versioneditor/internal/models"

// SaveVersionRequest представляет запрос POST /save-version
// NewText указатель, чтобы отличать отсутствующее поле от пустой строки
type SaveVersionRequest struct {
	NewText *string `json:"newText"` // текст новой версии
}

// VersionResponse представляет ответ с одной версией
// (POST /save-version, GET и DELETE /version/{id})
type VersionResponse struct {
	Message string          `json:"message"` // сообщение о результате
	Data    *models.Version `json:"data"`    // версия
}

// VersionListResponse представляет ответ GET /versions
type VersionListResponse struct {
	Data    []*models.Version `json:"data"`    // версии, новые первыми
	Count   int               `json:"count"`   // количество версий
	Success bool              `json:"success"` // всегда true при статусе 200
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message string `json:"message"` // описание ошибки
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Storage string `json:"storage,omitempty"`
}

// Сообщения ответов API
const (
	MessageVersionSaved    = "Version saved"
	MessageVersionFound    = "Version found"
	MessageVersionDeleted  = "Version deleted successfully"
	MessageVersionNotFound = "Version not found"
	MessageTextRequired    = "newText is required"
)
