package domain

import (
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	Storage      StorageConfig      `mapstructure:"storage"`
	Download     DownloadConfig     `mapstructure:"download"`
	Generation   GenerationConfig   `mapstructure:"generation"`
	History      HistoryConfig      `mapstructure:"history"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// StorageConfig contains object-store related configuration
type StorageConfig struct {
	Bucket       string        `mapstructure:"bucket"`
	PathPrefix   string        `mapstructure:"path_prefix"`
	SignedURLTTL time.Duration `mapstructure:"signed_url_ttl"`
}

// DownloadConfig contains download-pipeline related configuration
type DownloadConfig struct {
	BaseDir        string `mapstructure:"base_dir"`
	OrganizeByType bool   `mapstructure:"organize_by_type"`
	CleanupRemote  bool   `mapstructure:"cleanup_remote"`
	ChunkSize      int    `mapstructure:"chunk_size"`
}

// GenerationConfig contains generation-service related configuration
type GenerationConfig struct {
	DefaultModel    string        `mapstructure:"default_model"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	PollTimeout     time.Duration `mapstructure:"poll_timeout"`
	AspectRatio     string        `mapstructure:"aspect_ratio"`
	Resolution      string        `mapstructure:"resolution"`
	DurationSeconds int           `mapstructure:"duration_seconds"`
	EnhancePrompt   bool          `mapstructure:"enhance_prompt"`
}

// HistoryConfig contains run-history related configuration
type HistoryConfig struct {
	DatabasePath string `mapstructure:"database_path"`
	Enabled      bool   `mapstructure:"enabled"`
}

// NotificationConfig contains notification-related configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Method  string `mapstructure:"method"` // osascript, notify-send
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			PathPrefix:   "videos",
			SignedURLTTL: time.Hour,
		},
		Download: DownloadConfig{
			BaseDir:        "downloaded_media",
			OrganizeByType: true,
			CleanupRemote:  true,
			ChunkSize:      8 * 1024,
		},
		Generation: GenerationConfig{
			DefaultModel:    "veo3-001",
			PollInterval:    5 * time.Second,
			PollTimeout:     10 * time.Minute,
			AspectRatio:     "16:9",
			Resolution:      "1080p",
			DurationSeconds: 8,
			EnhancePrompt:   true,
		},
		History: HistoryConfig{
			DatabasePath: "$HOME/.media-studio/history.db",
			Enabled:      true,
		},
		Notification: NotificationConfig{
			Enabled: false,
			Method:  "osascript",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}

// OutputURI builds the default storage output URI from bucket and prefix
func (c StorageConfig) OutputURI() string {
	if c.Bucket == "" {
		return ""
	}
	prefix := strings.TrimLeft(c.PathPrefix, "/")
	if prefix == "" {
		return StorageScheme + c.Bucket
	}
	return StorageScheme + c.Bucket + "/" + prefix
}
