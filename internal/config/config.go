package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all process configuration, sourced from the environment
// (a local .env is loaded by main before this runs).
type Config struct {
	Port        string
	Environment string

	// WorkDir is the root under which each request gets its own
	// uuid-named workspace for intermediate artifacts.
	WorkDir       string
	KeepArtifacts bool

	DefaultLanguage string

	BhashiniAPIKey    string
	BhashiniURL       string
	BhashiniServiceID string

	STTProvider    string // "whisper" or "google"
	WhisperBin     string
	WhisperModel   string
	WhisperThreads int

	YTDLPBin string

	GCPProject   string
	GCPLocation  string
	SummaryModel string

	// TTSAccent selects the regional Google Translate host, ex "co.in".
	TTSAccent string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              envOr("PORT", "8080"),
		Environment:       envOr("ENVIRONMENT", "local"),
		WorkDir:           envOr("WORK_DIR", "data/requests"),
		KeepArtifacts:     envBool("KEEP_ARTIFACTS"),
		DefaultLanguage:   envOr("DEFAULT_LANGUAGE", "hi"),
		BhashiniAPIKey:    os.Getenv("BHASHINI_API_KEY"),
		BhashiniURL:       envOr("BHASHINI_URL", "https://dhruva-api.bhashini.gov.in/services/inference/pipeline"),
		BhashiniServiceID: envOr("BHASHINI_SERVICE_ID", "ai4bharat/indictrans-v2-all-gpu--t4"),
		STTProvider:       envOr("STT_PROVIDER", "whisper"),
		WhisperBin:        envOr("WHISPER_BIN", "whisper-cli"),
		WhisperModel:      envOr("WHISPER_MODEL", "models/ggml-medium.bin"),
		WhisperThreads:    envInt("WHISPER_THREADS", 4),
		YTDLPBin:          envOr("YTDLP_BIN", "yt-dlp"),
		GCPProject:        os.Getenv("GCP_PROJECT"),
		GCPLocation:       envOr("GCP_LOCATION", "us-central1"),
		SummaryModel:      envOr("SUMMARY_MODEL", "gemini-1.5-flash"),
		TTSAccent:         envOr("TTS_ACCENT", "co.in"),
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.STTProvider {
	case "whisper", "google":
	default:
		return fmt.Errorf("STT_PROVIDER must be \"whisper\" or \"google\", got %q", c.STTProvider)
	}
	if c.GCPProject == "" {
		return fmt.Errorf("GCP_PROJECT is required for the summarization model")
	}
	if c.WorkDir == "" {
		return fmt.Errorf("WORK_DIR must not be empty")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
