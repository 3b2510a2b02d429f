package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbanner/pkg/buildinfo"
	"github.com/matzehuels/svgbanner/pkg/config"
	"github.com/matzehuels/svgbanner/pkg/function"
	"github.com/matzehuels/svgbanner/pkg/raster"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "svgbanner"

	// configFileName is looked up in the config directory when --config is not set.
	configFileName = "config.toml"
)

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

	// Out receives command output; status lines go to Err.
	Out io.Writer
	Err io.Writer

	configPath string
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "svgbanner renders text banners over procedural backgrounds",
		Long:         `svgbanner renders text banners as SVG, PNG or WebP over generated backgrounds: a tilted galaxy, falling glyph rain, a neon maze or a plain fill. It runs as an HTTP service or renders single banners from the command line.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file (default: $XDG_CONFIG_HOME/svgbanner/config.toml if present)")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file named by --config, or the default file
// when it exists, and falls back to the built-in profiles otherwise.
func (c *CLI) loadConfig() (*config.Config, error) {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return config.Default(), nil
		}
		path = filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}

	cfg, undecoded, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	for _, key := range undecoded {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	c.Logger.Debug("loaded config", "file", path, "profiles", cfg.Names())
	return cfg, nil
}

// newHandler builds the request handler for a profile. The rasterizer is
// only created for profiles that allow raster output.
func (c *CLI) newHandler(profile config.Profile) (*function.Handler, error) {
	var enc raster.Encoder
	if profile.Raster {
		r, err := raster.NewRasterizer()
		if err != nil {
			return nil, err
		}
		enc = r
	}
	return function.NewHandler(profile, nil, enc, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/svgbanner/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
