package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-overlay/config"
	"github.com/grindlemire/go-overlay/internal/debug"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// app holds state shared by all commands.
type app struct {
	out    io.Writer
	logger *log.Logger

	verbose    bool
	configPath string
	debugLog   string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out: out,
		logger: log.NewWithOptions(errOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "overlay",
		Short:        "overlay evaluates and previews floating overlay placement",
		Long:         `overlay runs the placement evaluator and the overlay controller outside a browser, for checking flip orders, padding and scroll-to-fit behaviour against a given viewport.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
			if a.debugLog != "" {
				if err := debug.Init(a.debugLog); err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.SetOut(a.out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "load settings from a .toml or .yaml file")
	root.PersistentFlags().StringVar(&a.debugLog, "debug-log", "", "write controller debug output to this file")

	root.AddCommand(a.placeCommand())
	root.AddCommand(a.previewCommand())
	root.AddCommand(a.versionCommand())

	return root
}

// loadConfig returns the configured settings, or the defaults with
// environment overrides when no file was given.
func (a *app) loadConfig() (config.Config, error) {
	if a.configPath != "" {
		a.logger.Debug("loading config", "path", a.configPath)
		return config.Load(a.configPath)
	}
	cfg := config.Default()
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "overlay version %s\n", version)
		},
	}
}
