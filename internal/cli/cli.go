package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/badges/pkg/badge"
	"github.com/matzehuels/badges/pkg/buildinfo"
	"github.com/matzehuels/badges/pkg/cache"
	"github.com/matzehuels/badges/pkg/config"
	"github.com/matzehuels/badges/pkg/measure"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag. Empty means the
	// XDG default location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders a badge.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.renderCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/badges/config.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.measureCommand())
	root.AddCommand(c.colorsCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config path", "err", err)
			return config.Default(), nil
		}
		path = p
	}
	c.Logger.Debug("loading config", "path", path)
	return config.Load(path)
}

// badgeOptions holds the flags shared by commands that render badges. Empty
// values fall back to the config file.
type badgeOptions struct {
	labelColor   string
	messageColor string
	style        string
	mode         string
}

// register adds the badge flags to cmd.
func (o *badgeOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.labelColor, "label-color", "l", "", "label background color (name or #hex)")
	cmd.Flags().StringVarP(&o.messageColor, "message-color", "m", "", "message background color (name or #hex)")
	cmd.Flags().StringVarP(&o.style, "style", "s", "", "badge style: flat or flat-square")
	cmd.Flags().StringVar(&o.mode, "measure", "", "text width measurer: shape or heuristic")
}

// apply merges flags over cfg and returns the badge template and renderer.
func (o *badgeOptions) apply(cfg config.Config) (badge.Badge, *badge.Renderer, measure.Mode, error) {
	b := badge.New().
		WithStyle(cfg.Badge.Style).
		WithLabelColor(cfg.Badge.LabelColor).
		WithMessageColor(cfg.Badge.MessageColor)
	mode := cfg.MeasureMode()

	if o.style != "" {
		s, err := badge.ParseStyle(o.style)
		if err != nil {
			return b, nil, mode, err
		}
		b = b.WithStyle(s)
	}
	if o.labelColor != "" {
		col, err := badge.ParseColor(o.labelColor)
		if err != nil {
			return b, nil, mode, err
		}
		b = b.WithLabelColor(col)
	}
	if o.messageColor != "" {
		col, err := badge.ParseColor(o.messageColor)
		if err != nil {
			return b, nil, mode, err
		}
		b = b.WithMessageColor(col)
	}
	if o.mode != "" {
		m, err := measure.ParseMode(o.mode)
		if err != nil {
			return b, nil, mode, err
		}
		mode = m
	}

	return b, badge.NewRenderer(measure.New(mode)), mode, nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the render cache selected by cfg.
func newCache(cfg config.ServerConfig) (cache.Cache, error) {
	switch cfg.Cache {
	case config.CacheFile:
		dir, err := cfg.CacheDirectory()
		if err != nil {
			return nil, err
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.CacheRedis:
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), nil
	}
	return cache.NewNullCache(), nil
}
