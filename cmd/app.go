package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/urfave/cli/v3"
)

var (
	APP_NAME  = "minigrep"
	APP_USAGE = "print lines of a file containing the query (CASE_SENSITIVE=1 for exact case)"
)

// tail - positional args found after "--", they never reach flag parsing
func cmdMain(tail []string, lookup parser.LookupEnv, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      APP_NAME,
		Usage:     APP_USAGE,
		ArgsUsage: "[--] <query> <file_path>",
		Flags:     parser.Flags(),
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// инициализировать параметры запуска - режим и прочее
			appParam, err := parser.InitAppMode(cmd, tail, lookup)
			if err != nil {
				return err
			}

			zl, err := logger.New(appParam)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer func() { _ = zl.Sync() }()

			// запуск приложения в указанном режиме
			switch appParam.Mode {
			case model.ModeNode:
				// готовим слушатель прерываний - контекст для всего приложения
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				return appmode.RunNode(ctx, stop, appParam, zl)
			default:
				return appmode.RunSearch(appParam, stdout, zl)
			}
		},
	}
}

// run returns the process exit code; any error becomes a single line on stderr
func run(ctx context.Context, args []string, lookup parser.LookupEnv, stdout, stderr io.Writer) int {
	head, tail := parser.SplitArgs(args)
	if err := cmdMain(tail, lookup, stdout, stderr).Run(ctx, head); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", APP_NAME, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}
