// Package cli implements the oxyplot command-line interface.
//
// Figures are JSON or YAML files holding a plotly-style layout and a list of surface and
// scatter3d traces. The CLI renders them headless to PNG, answers pick queries against a
// headless render, or opens them in an interactive window.
//
// # Commands
//
//   - render: Render one or more figures to PNG, concurrently
//   - pick: Report the data point under a pixel
//   - view: Open a figure in a window with orbit, pan and zoom
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are passed
// through context.Context so every command logs through the same handler.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-plot/engine/config"
)

const appName = "oxyplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Config is the loaded configuration, the defaults until PersistentPreRunE runs.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a CLI that logs to w at the given level.
//
// Parameters:
//   - w: log destination
//   - level: initial log level
//
// Returns:
//   - *CLI: the CLI with default configuration
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "oxyplot renders interactive 3D surface and scatter plots",
		Long:              `oxyplot draws plotly-style 3D scenes (surfaces, scatter points, error bars and labels) headless to PNG or in an interactive window, with data point picking.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.viewCommand())

	return root
}

// setup loads the configuration, sets the log level and attaches the logger to the
// command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	level, err := parseLevel(c.Config.Log.Level)
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("configuration loaded", "path", c.configPath, "level", level)
	return nil
}
