package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top level daemon configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LogConfig       `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains the listener and worker pool settings.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Addr    string `yaml:"addr"`
	Workers int    `yaml:"workers"`
}

// LogConfig contains settings for logging.
type LogConfig struct {
	Debug       bool   `yaml:"debug"`
	LogToFile   bool   `yaml:"log_to_file"`
	LogFilePath string `yaml:"log_file_path"`
	MaxSize     int    `yaml:"max_size"`    // maximum size in megabytes
	MaxBackups  int    `yaml:"max_backups"` // maximum number of old log files to retain
	MaxAge      int    `yaml:"max_age"`     // maximum number of days to retain old log files
	Compress    bool   `yaml:"compress"`
}

// TelemetryConfig contains settings for the OTLP export pipelines.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// LoadDefault returns a configuration with default values.
func LoadDefault() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "rns",
			Addr:    "0.0.0.0:8080",
			Workers: 8,
		},
		Logging: LogConfig{
			Debug:       false,
			LogToFile:   false,
			LogFilePath: "rnsd.log",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
			Compress:    true,
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "http://127.0.0.1:4317",
		},
	}
}

// Load reads configuration from a file and merges it with default values.
// The RNS_ADDR environment variable overrides the configured listen address.
func Load(configPath string) (*Config, error) {
	cfg := LoadDefault()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.Server.Name != "" {
		cfg.Server.Name = fileCfg.Server.Name
	}
	if fileCfg.Server.Addr != "" {
		cfg.Server.Addr = fileCfg.Server.Addr
	}
	if fileCfg.Server.Workers > 0 {
		cfg.Server.Workers = fileCfg.Server.Workers
	}

	if fileCfg.Logging.Debug {
		cfg.Logging.Debug = fileCfg.Logging.Debug
	}
	if fileCfg.Logging.LogToFile {
		cfg.Logging.LogToFile = fileCfg.Logging.LogToFile
	}
	if fileCfg.Logging.LogFilePath != "" {
		cfg.Logging.LogFilePath = fileCfg.Logging.LogFilePath
	}
	if fileCfg.Logging.MaxSize > 0 {
		cfg.Logging.MaxSize = fileCfg.Logging.MaxSize
	}
	if fileCfg.Logging.MaxBackups > 0 {
		cfg.Logging.MaxBackups = fileCfg.Logging.MaxBackups
	}
	if fileCfg.Logging.MaxAge > 0 {
		cfg.Logging.MaxAge = fileCfg.Logging.MaxAge
	}

	if fileCfg.Telemetry.Enabled {
		cfg.Telemetry.Enabled = fileCfg.Telemetry.Enabled
	}
	if fileCfg.Telemetry.Endpoint != "" {
		cfg.Telemetry.Endpoint = fileCfg.Telemetry.Endpoint
	}

	if envAddr := os.Getenv("RNS_ADDR"); envAddr != "" {
		cfg.Server.Addr = envAddr
	}

	return cfg, nil
}

// LoadOrDefault loads configuration from a file, falling back to defaults
// when the file is missing or unreadable.
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		slog.Warn("using default configuration", "path", configPath, "error", err)
		return LoadDefault()
	}
	return cfg
}
