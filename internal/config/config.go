package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Assets  AssetsConfig  `yaml:"assets"`
	Plot    PlotConfig    `yaml:"plot"`
	Admin   AdminConfig   `yaml:"admin"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

// DataConfig locates the personality table
type DataConfig struct {
	File     string `yaml:"file"`
	Encoding string `yaml:"encoding"`
	Sheet    string `yaml:"sheet"`
}

// AssetsConfig locates the images shown beside the chart
type AssetsConfig struct {
	IconDir    string `yaml:"icon_dir"`
	PairsImage string `yaml:"pairs_image"`
}

// PlotConfig holds the default rendering style
type PlotConfig struct {
	Scale float64 `yaml:"scale"`
	Font  string  `yaml:"font"`
}

// AdminConfig holds the health, metrics and profiling server settings
type AdminConfig struct {
	Port    string `yaml:"port"`
	Enabled bool   `yaml:"enabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			GinMode: "release",
		},
		Data: DataConfig{
			File:     "MBTI_data.csv",
			Encoding: "iso-8859-1",
		},
		Assets: AssetsConfig{
			IconDir:    "MBTI_icons",
			PairsImage: "mbti-pairs.png",
		},
		Plot: PlotConfig{
			Scale: periodic.DefaultScale,
			Font:  periodic.DefaultFont(),
		},
		Admin: AdminConfig{
			Port:    "6060",
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// Load builds the configuration from defaults, the optional CONFIG_FILE and
// environment variables, in that order, and validates it
func Load() (*Config, error) {
	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// LoadFile overlays a YAML file onto the configuration
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("failed to read config file: %w", err))
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("failed to parse config file %s: %w", path, err))
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.GinMode = getEnvOrDefault("GIN_MODE", c.Server.GinMode)
	c.Data.File = getEnvOrDefault("DATA_FILE", c.Data.File)
	c.Data.Encoding = getEnvOrDefault("DATA_ENCODING", c.Data.Encoding)
	c.Data.Sheet = getEnvOrDefault("DATA_SHEET", c.Data.Sheet)
	c.Assets.IconDir = getEnvOrDefault("ICON_DIR", c.Assets.IconDir)
	c.Assets.PairsImage = getEnvOrDefault("PAIRS_IMAGE", c.Assets.PairsImage)
	c.Plot.Scale = getEnvFloatOrDefault("PLOT_SCALE", c.Plot.Scale)
	c.Plot.Font = getEnvOrDefault("PLOT_FONT", c.Plot.Font)
	c.Admin.Port = getEnvOrDefault("ADMIN_PORT", c.Admin.Port)
	c.Admin.Enabled = getEnvBoolOrDefault("ADMIN_ENABLED", c.Admin.Enabled)
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", c.Logging.Level)
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown gin mode %q", c.Server.GinMode))
	}
	if c.Data.File == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if c.Assets.IconDir == "" {
		return errors.ConfigInvalid("icon directory is required")
	}
	if err := periodic.ValidateScale(c.Plot.Scale); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if !periodic.IsSupportedFont(c.Plot.Font) {
		return errors.ConfigInvalid(fmt.Sprintf("unsupported font %q", c.Plot.Font))
	}
	if c.Admin.Enabled && c.Admin.Port == "" {
		return errors.ConfigInvalid("admin port is required when the admin server is enabled")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
