// Package config загружает конфигурацию сервера и клиента.
//
// Источники в порядке приоритета: флаги командной строки, переменные окружения
// VERSIONEDITOR_* (точка в ключе заменяется на "_"), YAML файл, значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "VERSIONEDITOR"

// ErrInvalidConfig конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("invalid config")

// Server конфигурация сервера версий
type Server struct {
	Address   string          `mapstructure:"address" validate:"required,hostname_port"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	Versions  VersionsConfig  `mapstructure:"versions"`
	CORS      CORSConfig      `mapstructure:"cors"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// StorageConfig выбор и расположение хранилища версий
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite bolt"`
	Path   string `mapstructure:"path" validate:"required"`
}

// LogConfig настройки slog
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// VersionsConfig поведение сохранения версий
type VersionsConfig struct {
	SaveMode       string `mapstructure:"save_mode" validate:"oneof=unguarded serialized optimistic"`
	MaxTextBytes   int    `mapstructure:"max_text_bytes" validate:"gte=0"`
	MaxSaveRetries int    `mapstructure:"max_save_retries" validate:"gte=0,lte=100"`
}

// HTTPConfig параметры HTTP сервера
type HTTPConfig struct {
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// RateLimitConfig ограничение изменяющих запросов по IP
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests" validate:"gte=1"`
	Window   time.Duration `mapstructure:"window" validate:"gt=0"`
}

// CORSConfig разрешенные origin для браузерного редактора
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Client конфигурация CLI клиента
type Client struct {
	ServerURL string        `mapstructure:"server_url" validate:"required,url"`
	DraftPath string        `mapstructure:"draft_path" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	NoColor   bool          `mapstructure:"no_color"`
}

func serverDefaults(v *viper.Viper) {
	v.SetDefault("address", "localhost:8080")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "versions.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("versions.save_mode", "unguarded")
	v.SetDefault("versions.max_text_bytes", 0)
	v.SetDefault("versions.max_save_retries", 3)
	v.SetDefault("http.max_body_bytes", 1<<20)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 30)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func clientDefaults(v *viper.Viper) {
	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("draft_path", defaultDraftPath())
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("no_color", false)
}

// defaultDraftPath ~/.versioneditor/draft.db или ./draft.db без домашней директории
func defaultDraftPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "draft.db"
	}
	return filepath.Join(home, ".versioneditor", "draft.db")
}

// flagKeys сопоставляет имена флагов ключам конфигурации
var flagKeys = map[string]string{
	"address":            "address",
	"storage-driver":     "storage.driver",
	"storage-path":       "storage.path",
	"log-level":          "log.level",
	"log-format":         "log.format",
	"versions-save-mode": "versions.save_mode",
	"server-url":         "server_url",
	"draft-path":         "draft_path",
	"timeout":            "timeout",
	"no-color":           "no_color",
}

// ServerFlags регистрирует флаги сервера
func ServerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to YAML config file")
	fs.String("address", "localhost:8080", "HTTP listen address")
	fs.String("storage-driver", "sqlite", "storage backend: sqlite or bolt")
	fs.String("storage-path", "versions.db", "path to the database file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("versions-save-mode", "unguarded", "save mode: unguarded, serialized, optimistic")
}

// ClientFlags регистрирует глобальные флаги клиента
func ClientFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to YAML config file")
	fs.String("server-url", "http://localhost:8080", "version server URL")
	fs.String("draft-path", defaultDraftPath(), "path to the local draft database")
	fs.Duration("timeout", 10*time.Second, "HTTP request timeout")
	fs.Bool("no-color", false, "disable colored output")
}

// LoadServer читает конфигурацию сервера. fs может быть nil.
func LoadServer(fs *pflag.FlagSet) (*Server, error) {
	v, err := newViper(fs, serverDefaults)
	if err != nil {
		return nil, err
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadClient читает конфигурацию клиента. fs может быть nil.
func LoadClient(fs *pflag.FlagSet) (*Client, error) {
	v, err := newViper(fs, clientDefaults)
	if err != nil {
		return nil, err
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper(fs *pflag.FlagSet, defaults func(*viper.Viper)) (*viper.Viper, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configFile := os.Getenv(EnvPrefix + "_CONFIG")

	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			configFile = f.Value.String()
		}

		// Флаг перекрывает env и файл только если задан явно
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

var validate = func() func(any) error {
	vd := validator.New(validator.WithRequiredStructEnabled())
	return func(cfg any) error {
		if err := vd.Struct(cfg); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				msgs := make([]string, 0, len(verrs))
				for _, fe := range verrs {
					msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
				}
				return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
			}
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return nil
	}
}()

// NewLogger создает slog.Logger по настройкам LogConfig
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel преобразует строковый уровень в slog.Level, по умолчанию Info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
