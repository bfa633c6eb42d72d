package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Port       int    `json:"port" yaml:"port" toml:"port"`
	Model      string `json:"model" yaml:"model" toml:"model"`
	Processor  string `json:"processor" yaml:"processor" toml:"processor"`
	Variant    string `json:"variant" yaml:"variant" toml:"variant"`
	ModelsDir  string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	RuntimeURL string `json:"runtime_url" yaml:"runtime_url" toml:"runtime_url"`
	LogLevel   string `json:"log_level" yaml:"log_level" toml:"log_level"`
	CORS       *bool  `json:"cors" yaml:"cors" toml:"cors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:       5000,
		Model:      "deepseek_7b",
		Processor:  "cpu",
		Variant:    "default",
		ModelsDir:  "~/models/onnx",
		RuntimeURL: "http://127.0.0.1:8643",
		LogLevel:   "info",
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Merge overlays set fields of over onto base and returns the result.
func Merge(base, over Config) Config {
	if over.Port != 0 {
		base.Port = over.Port
	}
	if over.Model != "" {
		base.Model = over.Model
	}
	if over.Processor != "" {
		base.Processor = over.Processor
	}
	if over.Variant != "" {
		base.Variant = over.Variant
	}
	if over.ModelsDir != "" {
		base.ModelsDir = over.ModelsDir
	}
	if over.RuntimeURL != "" {
		base.RuntimeURL = over.RuntimeURL
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.CORS != nil {
		base.CORS = over.CORS
	}
	return base
}

// FromEnv reads BOOKMARKD_* environment variables into a Config overlay.
func FromEnv() Config {
	var cfg Config
	if v := os.Getenv("BOOKMARKD_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	cfg.Model = os.Getenv("BOOKMARKD_MODEL")
	cfg.Processor = os.Getenv("BOOKMARKD_PROCESSOR")
	cfg.Variant = os.Getenv("BOOKMARKD_VARIANT")
	cfg.ModelsDir = os.Getenv("BOOKMARKD_MODELS_DIR")
	cfg.RuntimeURL = os.Getenv("BOOKMARKD_RUNTIME_URL")
	cfg.LogLevel = os.Getenv("BOOKMARKD_LOG_LEVEL")
	if v := os.Getenv("BOOKMARKD_CORS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CORS = &b
		}
	}
	return cfg
}
