package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config aggregates application configuration values.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	HTTP    HTTPConfig    `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"log"`
	Mock    MockConfig    `mapstructure:"mock"`
}

// ServiceConfig is reported by the index route.
type ServiceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level"`
	Format        string `mapstructure:"format"` // text|json
	IncludeCaller bool   `mapstructure:"include_caller"`
	MaxBodyBytes  int64  `mapstructure:"max_body_bytes"`
}

// MockConfig shapes the generated responses.
type MockConfig struct {
	// Seed fixes every request's random source when non-zero.
	Seed            int64 `mapstructure:"seed"`
	TotalItems      int   `mapstructure:"total_items"`
	DefaultPageSize int   `mapstructure:"default_page_size"`
	MaxPageSize     int   `mapstructure:"max_page_size"`
	SummarySize     int   `mapstructure:"summary_size"`
}

// DefaultAllowedOrigins is the CORS allow-list used when none is configured.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"https://case-management.d3ilu3opuyh91j.amplifyapp.com",
}

const (
	defaultServiceName     = "FRM Case Management API"
	defaultServiceVersion  = "1.0.0"
	defaultHost            = "0.0.0.0"
	defaultPort            = 13000
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
	defaultMaxBodyBytes    = 64 << 10
	defaultTotalItems      = 100
	defaultPageSize        = 20
	defaultMaxPageSize     = 100
	defaultSummarySize     = 5
)

// Load reads configuration from defaults, an optional config file, the
// environment (SERVER_PORT, LOG_LEVEL, MOCK_SEED, ...) and any bound flags,
// in increasing order of precedence.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.HTTP.AllowedOrigins = normalizeOrigins(cfg.HTTP.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range", c.HTTP.Port))
	}
	if c.Mock.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("mock.default_page_size must be positive, got %d", c.Mock.DefaultPageSize))
	}
	if c.Mock.MaxPageSize <= 0 {
		errs = append(errs, fmt.Errorf("mock.max_page_size must be positive, got %d", c.Mock.MaxPageSize))
	}
	if c.Mock.TotalItems < 0 {
		errs = append(errs, fmt.Errorf("mock.total_items must not be negative, got %d", c.Mock.TotalItems))
	}
	if c.Mock.SummarySize < 0 {
		errs = append(errs, fmt.Errorf("mock.summary_size must not be negative, got %d", c.Mock.SummarySize))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", defaultServiceName)
	v.SetDefault("service.version", defaultServiceVersion)

	v.SetDefault("server.host", defaultHost)
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.read_timeout", defaultReadTimeout)
	v.SetDefault("server.write_timeout", defaultWriteTimeout)
	v.SetDefault("server.idle_timeout", defaultIdleTimeout)
	v.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("server.metrics_enabled", false)
	v.SetDefault("server.allowed_origins", DefaultAllowedOrigins)

	v.SetDefault("log.level", defaultLoggingLevel)
	v.SetDefault("log.format", defaultLoggingFormat)
	v.SetDefault("log.include_caller", false)
	v.SetDefault("log.max_body_bytes", defaultMaxBodyBytes)

	v.SetDefault("mock.seed", 0)
	v.SetDefault("mock.total_items", defaultTotalItems)
	v.SetDefault("mock.default_page_size", defaultPageSize)
	v.SetDefault("mock.max_page_size", defaultMaxPageSize)
	v.SetDefault("mock.summary_size", defaultSummarySize)
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"host":      "server.host",
	"port":      "server.port",
	"seed":      "mock.seed",
	"log-level": "log.level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// normalizeOrigins accepts both list values and a single comma separated
// string, which is how SERVER_ALLOWED_ORIGINS arrives from the environment.
func normalizeOrigins(values []string) []string {
	var origins []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			origin := strings.TrimSpace(part)
			if origin == "" {
				continue
			}
			origins = append(origins, origin)
		}
	}
	return origins
}
