package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"setup-electron/internal/config"
	"setup-electron/internal/installer"
	"setup-electron/internal/logger"
	"setup-electron/internal/toolchain"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the optional YAML config path passed via `--config` or `-c`.
// Empty means built-in defaults.
var configPath string

// projectDir overrides the configured project directory when set via `--dir`.
var projectDir string

// rootCmd runs the whole setup: check tools, ensure electron globally,
// scaffold the project, install its dependencies and launch it.
var rootCmd = &cobra.Command{
	Use:           "setup-electron",
	Short:         "Scaffold and launch a minimal Electron app",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		return s.Run(cmd.Context())
	},
}

// newSetup loads the config, applies flag overrides and wires the real process runner.
func newSetup() (*installer.Setup, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if projectDir != "" {
		cfg.ProjectDir = projectDir
	}
	logger.Debug("[DEBUG] Loaded config: %+v\n", cfg)

	return &installer.Setup{
		Runner: toolchain.ExecRunner{},
		Config: cfg,
	}, nil
}

// init registers the global flags and the single-stage subcommands.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (defaults are used when omitted)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", "", "Project directory (overrides project_dir from config)")

	rootCmd.AddCommand(checkCmd, scaffoldCmd, runCmd)
}

// Execute runs the CLI and exits non-zero on any failure.
// An interrupt cancels the context, which kills the running child process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints the diagnostic for a failed run.
func reportError(err error) {
	var pe *toolchain.PreconditionError
	if errors.As(err, &pe) {
		logger.Error("[ERROR] Node.js or npm is missing. Please install them first.\n")
		logger.Error("[ERROR] %v\n", pe)
		return
	}
	logger.Error("[ERROR] %v\n", err)
}
