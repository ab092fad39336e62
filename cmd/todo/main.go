package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"todolist/internal/cli"
	"todolist/internal/config"
	"todolist/internal/filestor"
	"todolist/internal/logger"
	"todolist/internal/memstor"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file       string
		logLevel   string
		noAutoload bool
	)

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Interactive to-do list manager",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config failed: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("file") {
				cfg.Storage.File = file
			}
			if flags.Changed("log-level") {
				if err := cfg.Logger.Level.UnmarshalText([]byte(logLevel)); err != nil {
					return fmt.Errorf("invalid --log-level: %w", err)
				}
			}
			if noAutoload {
				cfg.Storage.Autoload = false
			}

			logger.SetupDefault(cfg.Logger)
			slog.Debug("config", "cfg", cfg)

			return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", config.DefaultFile, "task file path (env TODO_FILE)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug | info | warn | error (env LOG_LEVEL)")
	cmd.Flags().BoolVar(&noAutoload, "no-autoload", false, "do not load the task file at startup (env TODO_AUTOLOAD)")

	return cmd
}

func run(cfg config.Config, in io.Reader, out io.Writer) error {
	stor, err := filestor.New(cfg.Storage.File)
	if err != nil {
		slog.Error("storage init failed", "error", err)
		return err
	}

	app := cli.New(in, out, memstor.New(), stor, cli.Options{
		Autoload:          cfg.Storage.Autoload,
		ConfirmSaveOnExit: cfg.CLI.ConfirmSaveOnExit,
		Interactive:       isTerminal(in) && isTerminal(out),
	})
	return app.Run()
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && cli.IsTerminal(f)
}
