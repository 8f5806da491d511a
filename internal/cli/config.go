package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/kateryna-senchenko/textencryptor/internal/api"
	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// Cache backends accepted in [cache] backend.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

const configFileName = "config.toml"

// Config is the on-disk configuration. Every field is optional.
//
//	[log]
//	level = "info"
//
//	[cache]
//	backend = "file"        # file, redis or none
//	dir = "/tmp/squarecode"
//	ttl = "168h"
//	prefix = "squarecode:"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
type Config struct {
	Log    LogConfig    `toml:"log"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir,omitempty"`
	TTL           time.Duration `toml:"ttl,omitempty"`
	Prefix        string        `toml:"prefix,omitempty"`
	RedisAddr     string        `toml:"redis_addr,omitempty"`
	RedisPassword string        `toml:"redis_password,omitempty"`
	RedisDB       int           `toml:"redis_db,omitempty"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Cache: CacheConfig{
			Backend:   backendFile,
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{
			Addr:         api.DefaultAddr,
			ReadTimeout:  api.DefaultReadTimeout,
			WriteTimeout: api.DefaultWriteTimeout,
			MaxBodyBytes: api.DefaultMaxBodyBytes,
		},
	}
}

// LoadConfig reads the config file at path on top of DefaultConfig.
// With an empty path the default location is used and a missing file is not
// an error; an explicit path that does not exist is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid log level: %q", c.Log.Level)
	}
	if err := errors.ValidateOneOf(errors.ErrCodeInvalidConfig, "cache backend", c.Cache.Backend,
		backendFile, backendRedis, backendNone); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	if c.Cache.Backend == backendRedis {
		if err := errors.ValidateAddr(c.Cache.RedisAddr); err != nil {
			return err
		}
	}
	if err := errors.ValidateAddr(c.Server.Addr); err != nil {
		return err
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_body_bytes cannot be negative")
	}
	return nil
}

// configPath returns the default config file path using the XDG standard
// (~/.config/squarecode/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}

// displayConfigPath is configPath for help text.
func displayConfigPath() string {
	if p, err := configPath(); err == nil {
		return p
	}
	return filepath.Join("~", ".config", appName, configFileName)
}
