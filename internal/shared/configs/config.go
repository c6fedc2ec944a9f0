package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Monitoring  MonitoringConfig  `mapstructure:"monitoring" validate:"required"`
	MCP         MCPConfig         `mapstructure:"mcp"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// MonitoringConfig tunes the monitoring queries and rankings.
type MonitoringConfig struct {
	Timezone        string `mapstructure:"timezone" validate:"required"`                    // IANA name or "Local"; used for bucket labels
	RankingLimit    int    `mapstructure:"ranking_limit" validate:"required,min=1,max=100"`   // top-N entities
	LookbackHours   int    `mapstructure:"lookback_hours" validate:"required,min=1,max=744"`  // ranking window
	RoundingMinutes int    `mapstructure:"rounding_minutes" validate:"required,min=1,max=60"` // ranking window boundary
	MaxRangeDays    int    `mapstructure:"max_range_days" validate:"required,min=1,max=3660"` // longest stats/logs range
	MaxLogsPerQuery int    `mapstructure:"max_logs_per_query" validate:"required,min=1"`
	DefaultPageSize int    `mapstructure:"default_page_size" validate:"required,min=1"`
	MaxPageSize     int    `mapstructure:"max_page_size" validate:"required,gtefield=DefaultPageSize"`
}

// MCPConfig controls the MCP tool endpoint.
type MCPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Name    string `mapstructure:"name" validate:"required_if=Enabled true"`
	Version string `mapstructure:"version"`
}

// Location resolves Timezone; "Local" is the process timezone.
func (c MonitoringConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
