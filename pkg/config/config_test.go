package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/badges/pkg/badge"
	"github.com/matzehuels/badges/pkg/errors"
	"github.com/matzehuels/badges/pkg/measure"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Badge.LabelColor != badge.Grey || cfg.Badge.MessageColor != badge.LightGrey {
		t.Errorf("default colors = (%v, %v)", cfg.Badge.LabelColor, cfg.Badge.MessageColor)
	}
	if cfg.MeasureMode() != measure.ModeShape {
		t.Errorf("default mode = %q, want %q", cfg.MeasureMode(), measure.ModeShape)
	}
	if ttl, _ := cfg.Server.TTL(); ttl != time.Hour {
		t.Errorf("default ttl = %v, want 1h", ttl)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[badge]
style = "flat-square"
label_color = "#123"
message_color = "green"

[measure]
mode = "heuristic"

[server]
addr = "127.0.0.1:9000"
cache = "redis"
cache_ttl = "15m"
redis_addr = "redis:6379"
redis_db = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Badge.Style != badge.FlatSquare {
		t.Errorf("style = %v, want flat-square", cfg.Badge.Style)
	}
	if cfg.Badge.LabelColor != badge.RGB(0x11, 0x22, 0x33) {
		t.Errorf("label_color = %v, want #112233", cfg.Badge.LabelColor)
	}
	if cfg.Badge.MessageColor != badge.Green {
		t.Errorf("message_color = %v, want green", cfg.Badge.MessageColor)
	}
	if cfg.MeasureMode() != measure.ModeHeuristic {
		t.Errorf("mode = %q, want heuristic", cfg.MeasureMode())
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.Cache != CacheRedis || cfg.Server.RedisDB != 2 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if ttl, _ := cfg.Server.TTL(); ttl != 15*time.Minute {
		t.Errorf("ttl = %v, want 15m", ttl)
	}
	// Unset keys keep their defaults.
	if cfg.Server.RedisPassword != "" {
		t.Errorf("redis_password = %q, want empty", cfg.Server.RedisPassword)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad color", "[badge]\nlabel_color = \"blue\"\n", "blue"},
		{"bad style", "[badge]\nstyle = \"plastic\"\n", "plastic"},
		{"bad mode", "[measure]\nmode = \"guess\"\n", "measure.mode"},
		{"bad cache", "[server]\ncache = \"memcached\"\n", "memcached"},
		{"bad ttl", "[server]\ncache_ttl = \"soon\"\n", "cache_ttl"},
		{"negative ttl", "[server]\ncache_ttl = \"-1s\"\n", "cache_ttl"},
		{"unknown key", "[badge]\nshape = \"round\"\n", "badge.shape"},
		{"syntax", "[badge\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidateRedisAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Cache = CacheRedis
	cfg.Server.RedisAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("redis cache without address should fail")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-config", AppName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", AppName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestCacheDirectory(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := ServerConfig{}.CacheDirectory()
	if err != nil {
		t.Fatalf("CacheDirectory() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", AppName); dir != want {
		t.Errorf("CacheDirectory() = %q, want %q", dir, want)
	}

	dir, _ = ServerConfig{CacheDir: "/srv/badges"}.CacheDirectory()
	if dir != "/srv/badges" {
		t.Errorf("CacheDirectory() with cache_dir = %q, want /srv/badges", dir)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	dir, err = DefaultCacheDir()
	if err != nil {
		t.Fatalf("DefaultCacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", AppName); dir != want {
		t.Errorf("DefaultCacheDir() = %q, want %q", dir, want)
	}
}
