package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/app"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/cli"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/config"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/ctxlog"
)

func main() {
	// Minimal logger until flags have been read.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	base, err := config.LoadFromEnv()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	req, shouldExit, err := cli.Parse(args, base, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(stderr, req.Config)
	slog.SetDefault(logger)
	ctx = ctxlog.WithLogger(ctx, logger)

	return app.NewApp(stdout, req.Config, nil).Run(ctx, req)
}
