package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const defaultConfigFile = "boutique.toml"

// fileConfig mirrors boutique.toml. Every key is optional.
type fileConfig struct {
	Server struct {
		Port             string   `toml:"port"`
		Env              string   `toml:"env"`
		LogLevel         string   `toml:"log_level"`
		CORSAllowOrigins []string `toml:"cors_allow_origins"`
	} `toml:"server"`
	LLM struct {
		Provider       string `toml:"provider"`
		Model          string `toml:"model"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"llm"`
	Catalog struct {
		Source      string `toml:"source"`
		DatabaseURL string `toml:"database_url"`
		ObjectKey   string `toml:"object_key"`
	} `toml:"catalog"`
	Storage struct {
		Type      string `toml:"type"`
		LocalDir  string `toml:"local_dir"`
		AWSRegion string `toml:"aws_region"`
		S3Bucket  string `toml:"s3_bucket"`
		S3Prefix  string `toml:"s3_prefix"`
	} `toml:"storage"`
	RateLimit struct {
		OutfitPerSecond float64 `toml:"outfit_per_second"`
		OutfitBurst     int     `toml:"outfit_burst"`
	} `toml:"rate_limit"`
}

// loadFile parses the TOML config at path. A missing file is not an error.
func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
