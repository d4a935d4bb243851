package main

import (
	"fmt"
	"io"

	"github.com/frudas24/inputkit/internal/config"
	"github.com/frudas24/inputkit/internal/display"
	"github.com/frudas24/inputkit/internal/logging"
	"github.com/frudas24/inputkit/internal/wininput"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

// Platform hooks, replaced in tests.
var (
	newPlatform   = wininput.NewPlatform
	listDisplays  = display.List
	virtualScreen = display.VirtualScreen
)

// cli carries state shared by subcommands after config is loaded.
type cli struct {
	cfgFile string
	debug   bool
	cfg     config.Config
	logger  *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "inputctl",
		Short:         "Inject mouse and keyboard input on Windows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", "", "config file (default is <user config dir>/inputkit/inputkit.yaml)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		c.posCmd(),
		c.moveCmd(),
		c.clickCmd(),
		c.dragCmd(),
		c.keyCmd(),
		c.displaysCmd(),
		c.serveCmd(),
		c.configCmd(),
		versionCmd(),
	)
	return root
}

// setup loads config and builds the logger.
func (c *cli) setup() error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.debug {
		cfg.LogLevel = "debug"
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

// injector returns an injector over the host platform using configured delays.
func (c *cli) injector() (*wininput.Injector, error) {
	p, err := newPlatform()
	if err != nil {
		return nil, err
	}
	return wininput.New(p,
		wininput.WithDelays(c.cfg.Delays()),
		wininput.WithLogger(logging.Component(c.logger, "injector")),
	), nil
}

// warnOffscreen logs when (x, y) falls outside the virtual screen. The move still happens.
func (c *cli) warnOffscreen(x, y int) {
	r, err := virtualScreen()
	if err != nil {
		c.logger.Debug("virtual screen unavailable", zap.Error(err))
		return
	}
	if !r.Contains(x, y) {
		c.logger.Warn("cursor target outside the virtual screen",
			zap.Int("x", x), zap.Int("y", y),
			zap.Int("screen_x", r.X), zap.Int("screen_y", r.Y),
			zap.Int("screen_w", r.W), zap.Int("screen_h", r.H))
	}
}

// versionCmd prints the build version.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			printf(cmd.OutOrStdout(), "inputctl %s\n", version)
		},
	}
}

// printf writes formatted output, ignoring write errors on the terminal.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
