package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CatalogConfig points at the offering dump served by the catalog endpoints. An empty path means no catalog
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type SearchConfig struct {
	Cap        int           `mapstructure:"cap"`
	NodeBudget uint64        `mapstructure:"node_budget"` // Zero means unlimited
	Timeout    time.Duration `mapstructure:"timeout"`     // Zero means no deadline; a cut search is reported as partial
	Parallel   bool          `mapstructure:"parallel"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration from path (or ./config.yaml, ./config/config.yaml when path is empty).
// Environment variables prefixed with TIMETABLE_ take precedence over the file, which takes precedence
// over the defaults
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("catalog.path", "")

	v.SetDefault("search.cap", 10)
	v.SetDefault("search.node_budget", 0)
	v.SetDefault("search.timeout", "10s")
	v.SetDefault("search.parallel", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be within 1-65535, got %d", c.Server.Port)
	}
	if c.Search.Cap <= 0 {
		return fmt.Errorf("invalid config: search.cap must be positive, got %d", c.Search.Cap)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("invalid config: search.timeout cannot be negative")
	}
	return nil
}
