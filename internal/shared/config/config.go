package config

import (
	"os"
	"strconv"
	"strings"

	"boutique-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port             string
	CORSAllowOrigin  []string
	Env              string
	LogLevel         string
	LLMProvider      string
	LLMModel         string
	OpenAIAPIKey     string
	GeminiAPIKey     string
	LLMTimeout       int
	CatalogSource    string
	DatabaseURL      string
	ObjectStoreType  string
	LocalStoreDir    string
	AWSRegion        string
	S3Bucket         string
	S3Prefix         string
	S3KMSKeyID       string
	CatalogObjectKey string
	OutfitRate       float64
	OutfitBurst      int
}

// Load reads configuration from the optional TOML file, .env files and environment
// variables. Environment variables take precedence over the file.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	file, err := loadFile(getEnv("CONFIG_FILE", defaultConfigFile))
	if err != nil {
		telemetry.Warn("config.file_ignored", map[string]any{"error": err.Error()})
	}

	env := normalizeEnv(getEnv("ENV", or(file.Server.Env, "dev")))
	catalogSource := normalizeCatalogSource(getEnv("CATALOG_SOURCE", or(file.Catalog.Source, "memory")))
	dbURL := getEnv("DATABASE_URL", file.Catalog.DatabaseURL)

	if catalogSource == "postgres" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"catalog_source": catalogSource})
	}

	return Config{
		Port:             getEnv("PORT", or(file.Server.Port, "8080")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", or(strings.Join(file.Server.CORSAllowOrigins, ","), "http://localhost:5173"))),
		Env:              env,
		LogLevel:         getEnv("LOG_LEVEL", or(file.Server.LogLevel, "info")),
		LLMProvider:      normalizeProvider(getEnv("LLM_PROVIDER", or(file.LLM.Provider, "placeholder"))),
		LLMModel:         getEnv("LLM_MODEL", file.LLM.Model),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		LLMTimeout:       getEnvInt("LLM_TIMEOUT_SECONDS", orInt(file.LLM.TimeoutSeconds, 60)),
		CatalogSource:    catalogSource,
		DatabaseURL:      dbURL,
		ObjectStoreType:  normalizeStoreType(getEnv("OBJECT_STORE", or(file.Storage.Type, "local"))),
		LocalStoreDir:    getEnv("LOCAL_STORE_DIR", or(file.Storage.LocalDir, "./data")),
		AWSRegion:        getEnv("AWS_REGION", file.Storage.AWSRegion),
		S3Bucket:         getEnv("S3_BUCKET", file.Storage.S3Bucket),
		S3Prefix:         getEnv("S3_PREFIX", file.Storage.S3Prefix),
		S3KMSKeyID:       getEnv("S3_KMS_KEY_ID", ""),
		CatalogObjectKey: getEnv("CATALOG_OBJECT_KEY", or(file.Catalog.ObjectKey, "catalog/items.json")),
		OutfitRate:       getEnvFloat("OUTFIT_RATE_PER_SEC", orFloat(file.RateLimit.OutfitPerSecond, 0.5)),
		OutfitBurst:      getEnvInt("OUTFIT_RATE_BURST", orInt(file.RateLimit.OutfitBurst, 5)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		telemetry.Warn("config.env_invalid", map[string]any{"key": key, "value": raw, "want": "positive int"})
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		telemetry.Warn("config.env_invalid", map[string]any{"key": key, "value": raw, "want": "non-negative float"})
		return def
	}
	return val
}

func or(val, def string) string {
	if strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func orInt(val, def int) int {
	if val > 0 {
		return val
	}
	return def
}

func orFloat(val, def float64) float64 {
	if val > 0 {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "gemini", "google", "googleai":
		return "gemini"
	default:
		return "placeholder"
	}
}

func normalizeCatalogSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return "postgres"
	case "object", "s3":
		return "object"
	default:
		return "memory"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
