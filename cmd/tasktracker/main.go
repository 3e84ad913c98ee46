package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kelsos/tasktracker/internal/command"
	"github.com/kelsos/tasktracker/internal/config"
	"github.com/kelsos/tasktracker/internal/logger"
	"github.com/kelsos/tasktracker/internal/project"
	"github.com/kelsos/tasktracker/internal/tui"
	"github.com/kelsos/tasktracker/internal/utils"
)

var version = "dev"

type options struct {
	configPath   string
	envFile      string
	inputFile    string
	logLevel     string
	abortOnError bool
}

// loadConfig layers defaults, the YAML file, the environment and finally the
// flags the user actually set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := cfg.LoadFile(opts.configPath); err != nil {
		return nil, err
	}
	cfg.LoadFromEnvironment()

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.InputFile = opts.inputFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("abort-on-error") {
		cfg.AbortOnError = opts.abortOnError
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func interpreterOptions(cfg *config.Config) []command.Option {
	return []command.Option{
		command.WithAbortOnError(cfg.AbortOnError),
		command.WithEcho(cfg.EchoCommands),
	}
}

// runBatch feeds the configured input (a file or in) into a fresh project
func runBatch(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	logger.Debug("Starting run %s", logger.RunID())
	interp := command.NewInterpreter(project.New(), out, interpreterOptions(cfg)...)
	return interp.Run(ctx, in)
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tasktracker",
		Short: "Track tasks and the employees working on them",
		Long: `tasktracker reads commands line by line and keeps an in-memory project of tasks and employees.

Commands:
  add_task <name> <priority>
  add_employee <name>
  assign_employee <task> <employee>
  finish_task <task>
  report all | report ongoing | report employee <name>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), cfg, in, out)
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive task shell",
		Long:  `Open the interactive task shell. When --file is given its commands are applied before the shell starts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			if err := logger.InitFileOnly(cfg.LogDir); err != nil {
				return err
			}
			defer logger.Close()

			p := project.New()
			if cfg.InputFile != "" {
				f, err := os.Open(cfg.InputFile)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				seed := command.NewInterpreter(p, io.Discard, interpreterOptions(cfg)...)
				err = seed.Run(cmd.Context(), f)
				f.Close()
				if err != nil {
					return err
				}
			}

			return tui.NewShell(p, cfg.Prompt, cfg.HistorySize, interpreterOptions(cfg)...).Run(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultConfigFile, "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&opts.envFile, "env-file", "", "", "Additional .env file to load")
	rootCmd.PersistentFlags().StringVarP(&opts.inputFile, "file", "f", "", "Read commands from this file instead of stdin")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&opts.abortOnError, "abort-on-error", "", false, "Stop at the first command that names an unknown task or employee")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if opts.envFile != "" {
			utils.LoadEnvironment(opts.envFile)
		} else {
			utils.LoadEnvironment()
		}
	}

	rootCmd.SetOut(out)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func main() {
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Restore default signal handling once interrupted so a second Ctrl+C
	// kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Warn("Interrupted, stopping")
		stop()
		os.Exit(130)
	default:
		logger.Fatal("%v", err)
	}
}
