// Package config loads badges settings from a TOML file.
//
// A missing file is not an error: [Load] returns [Default] values. Keys the
// file sets override the defaults; unknown keys are rejected so typos do not
// pass silently.
//
//	[badge]
//	style = "flat"
//	label_color = "grey"
//	message_color = "light-grey"
//
//	[measure]
//	mode = "shape"
//
//	[server]
//	addr = ":8080"
//	cache = "none"   # none | file | redis
//	cache_ttl = "1h"
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/badges/pkg/badge"
	"github.com/matzehuels/badges/pkg/errors"
	"github.com/matzehuels/badges/pkg/measure"
)

// AppName names the config and cache directories.
const AppName = "badges"

// Cache backend kinds.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the full configuration file.
type Config struct {
	Badge   BadgeConfig   `toml:"badge"`
	Measure MeasureConfig `toml:"measure"`
	Server  ServerConfig  `toml:"server"`
}

// BadgeConfig holds rendering defaults.
type BadgeConfig struct {
	Style        badge.Style `toml:"style"`
	LabelColor   badge.Color `toml:"label_color"`
	MessageColor badge.Color `toml:"message_color"`
}

// MeasureConfig selects the text width measurer.
type MeasureConfig struct {
	Mode string `toml:"mode"`
}

// ServerConfig configures the HTTP service and its render cache.
type ServerConfig struct {
	Addr          string `toml:"addr"`
	Cache         string `toml:"cache"`
	CacheTTL      string `toml:"cache_ttl"`
	CacheDir      string `toml:"cache_dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Badge: BadgeConfig{
			Style:        badge.Flat,
			LabelColor:   badge.Grey,
			MessageColor: badge.LightGrey,
		},
		Measure: MeasureConfig{
			Mode: string(measure.ModeShape),
		},
		Server: ServerConfig{
			Addr:      ":8080",
			Cache:     CacheNone,
			CacheTTL:  "1h",
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads the file at path on top of [Default]. A missing file yields the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the fields that TOML decoding cannot.
func (c Config) Validate() error {
	if _, err := measure.ParseMode(c.Measure.Mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "measure.mode")
	}

	switch c.Server.Cache {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "server.cache: unknown backend %q (must be none, file or redis)", c.Server.Cache)
	}

	if _, err := c.Server.TTL(); err != nil {
		return err
	}
	if c.Server.Cache == CacheRedis && c.Server.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.redis_addr is required for the redis cache")
	}
	if c.Server.RedisDB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.redis_db must not be negative")
	}
	return nil
}

// MeasureMode returns the parsed measurer mode, falling back to shaping.
func (c Config) MeasureMode() measure.Mode {
	m, err := measure.ParseMode(c.Measure.Mode)
	if err != nil {
		return measure.ModeShape
	}
	return m
}

// TTL parses CacheTTL. An empty value means no expiry.
func (s ServerConfig) TTL() (time.Duration, error) {
	if s.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.CacheTTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "server.cache_ttl")
	}
	if d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "server.cache_ttl must not be negative")
	}
	return d, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/badges/config.toml, falling back to
// ~/.config/badges/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDirectory returns the file cache directory: cache_dir when set, otherwise
// $XDG_CACHE_HOME/badges or ~/.cache/badges.
func (s ServerConfig) CacheDirectory() (string, error) {
	if s.CacheDir != "" {
		return s.CacheDir, nil
	}
	return DefaultCacheDir()
}

// DefaultCacheDir returns the cache directory using the XDG standard
// (~/.cache/badges/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
