// Package config loads server configuration from defaults, an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. ARMOURY_SERVER_PORT
const EnvPrefix = "ARMOURY"

// Config is the complete server configuration
type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Database  DatabaseConfig `mapstructure:"database"`
	Log       LogConfig      `mapstructure:"log"`
	StaticDir string         `mapstructure:"static_dir"`
}

// ServerConfig holds configuration for the HTTP server
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig locates the catalogue store
type DatabaseConfig struct {
	// Path is the SQLite file; empty means a private in-memory database
	Path string `mapstructure:"path"`
}

// LogConfig controls the server logger
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "data/armoury.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		StaticDir: "internal/web/static",
	}
}

// Load reads configuration from path, if given, then applies ARMOURY_* environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("static_dir", d.StaticDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to start the server
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &Error{Field: "server.port", Message: "must be between 0 and 65535"}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return &Error{Field: "log.level", Message: err.Error()}
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return &Error{Field: "log.format", Message: "must be json or text"}
	}
	return nil
}

// SlogLevel parses the configured level name
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// Error reports an invalid configuration field
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
