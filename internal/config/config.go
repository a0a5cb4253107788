package config

import (
	"os"
	"strconv"
	"strings"
)

// ContentConfig holds the on-disk layout of site content.
type ContentConfig struct {
	Root            string
	LocalesPath     string
	DefaultLocale   string
	LocaleCacheSize int
	WatchLocales    bool
	TemplatePath    string
}

// MediaConfig selects and configures the media inventory backend.
type MediaConfig struct {
	Backend   string
	Root      string
	URLPrefix string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LogConfig controls the process-wide slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port      string
	APIPrefix string
	AppName   string
	AppLogo   string
	Version   string
	Content   ContentConfig
	Media     MediaConfig
	MinIO     MinIOConfig
	Log       LogConfig
}

const (
	MediaBackendLocal = "local"
	MediaBackendMinIO = "minio"
)

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:      getEnv("PORT", "8080"),
		APIPrefix: strings.TrimRight(getEnv("API_PREFIX", "/__craftly_api"), "/"),
		AppName:   getEnv("APP_NAME", "Craftly"),
		AppLogo:   getEnv("APP_LOGO", ""),
		Version:   getEnv("APP_VERSION", "1.0.0"),
		Content: ContentConfig{
			Root:            getEnv("CONTENT_ROOT", "views/__craftly"),
			LocalesPath:     getEnv("LOCALES_PATH", "locales"),
			DefaultLocale:   getEnv("DEFAULT_LOCALE", "en"),
			LocaleCacheSize: getEnvInt("LOCALE_CACHE_SIZE", 64),
			WatchLocales:    getEnvBool("LOCALE_WATCH", true),
			TemplatePath:    getEnv("TEMPLATE_PATH", ""),
		},
		Media: MediaConfig{
			Backend:   strings.ToLower(getEnv("MEDIA_BACKEND", MediaBackendLocal)),
			Root:      getEnv("MEDIA_ROOT", "public/public"),
			URLPrefix: strings.TrimRight(getEnv("MEDIA_URL_PREFIX", "/public"), "/"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
