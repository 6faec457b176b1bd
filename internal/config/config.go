package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server     ServerConfig
	Whisper    WhisperConfig
	Ollama     OllamaConfig
	Generation GenerationConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins string // "*" or comma-separated origin list
	MaxUploadBytes     int64
	TempDir            string // staging dir for uploads; empty = os.TempDir()
}

// WhisperConfig holds transcription engine settings.
type WhisperConfig struct {
	Model             string // whisper model name, e.g. "base"
	Python            string // interpreter used to run the helper script
	Device            string // auto|cpu|cuda
	TranscribeTimeout time.Duration
}

// OllamaConfig holds generation backend connection settings.
type OllamaConfig struct {
	URL          string // base URL of the Ollama server
	Model        string
	ChatTimeout  time.Duration
	ProbeTimeout time.Duration
}

// GenerationConfig holds sampling parameters for question generation.
// Defaults balance question variety against reliably parseable output.
type GenerationConfig struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8000"),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			MaxUploadBytes:     getEnvInt64("MAX_UPLOAD_BYTES", 1<<30),
			TempDir:            getEnv("UPLOAD_TEMP_DIR", ""),
		},
		Whisper: WhisperConfig{
			Model:             getEnv("WHISPER_MODEL", "base"),
			Python:            getEnv("WHISPER_PYTHON", "python3"),
			Device:            getEnv("WHISPER_DEVICE", "auto"),
			TranscribeTimeout: getEnvDuration("TRANSCRIBE_TIMEOUT_SEC", 300),
		},
		Ollama: OllamaConfig{
			URL:          strings.TrimRight(getEnv("OLLAMA_URL", "http://localhost:11434"), "/"),
			Model:        getEnv("OLLAMA_MODEL", "llama2"),
			ChatTimeout:  getEnvDuration("GENERATE_TIMEOUT_SEC", 120),
			ProbeTimeout: getEnvDuration("PROBE_TIMEOUT_SEC", 5),
		},
		Generation: GenerationConfig{
			Temperature: getEnvFloat32("GEN_TEMPERATURE", 0.7),
			TopP:        getEnvFloat32("GEN_TOP_P", 0.9),
			MaxTokens:   getEnvInt("GEN_MAX_TOKENS", 1500),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat32(key string, fallback float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return fallback
}

func getEnvDuration(key string, fallbackSec int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackSec)) * time.Second
}
