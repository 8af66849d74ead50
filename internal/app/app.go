// Package app wires configuration into the Steam scanner, locator and
// launcher and executes one frontend request against them.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/config"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/ctxlog"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/steam_util"
)

// Commands understood by Run.
const (
	CommandSteamID  = "steam-id"
	CommandWhoAmI   = "whoami"
	CommandScan     = "scan"
	CommandManifest = "manifest"
	CommandLaunch   = "launch"
)

// Request is one parsed invocation.
type Request struct {
	Command string
	// AppID is the argument of manifest and launch.
	AppID  string
	Format string
	Config config.Config

	// scan options
	AllGames  bool
	FullParse bool
	Covers    bool
}

// App holds the three Steam operations, built from one Config.
type App struct {
	out      io.Writer
	scanner  *steam_util.Scanner
	locator  *steam_util.Locator
	launcher *steam_util.Launcher
}

// NewApp builds an App writing results to out. A nil opener selects the
// operating system's URI handler.
func NewApp(out io.Writer, cfg config.Config, opener steam_util.URIOpener) *App {
	return &App{
		out:      out,
		scanner:  steam_util.NewScanner(cfg.LibraryRoot),
		locator:  steam_util.NewLocator(cfg.LoginUsersPaths),
		launcher: steam_util.NewLauncher(opener),
	}
}

// NewLogger builds the process logger described by cfg.
func NewLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if strings.EqualFold(cfg.LogFormat, config.LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Run executes req and renders its result.
func (a *App) Run(ctx context.Context, req *Request) error {
	ctxlog.FromContext(ctx).Debug("running command", "command", req.Command, "format", req.Format)
	r := renderer{w: a.out, format: req.Format}

	switch req.Command {
	case CommandSteamID:
		id, err := a.locator.SteamID(ctx)
		if err != nil {
			return err
		}
		return r.steamID(id)

	case CommandWhoAmI:
		user, err := a.locator.LastLoginUser(ctx)
		if err != nil {
			return err
		}
		return r.user(user)

	case CommandScan:
		scanner := *a.scanner
		scanner.FullParse = req.FullParse
		games, err := scanner.Scan(ctx)
		if err != nil {
			return err
		}
		if !req.AllGames {
			games = steam_util.FilterRedistributables(games)
		}
		return r.games(games, req.Covers)

	case CommandManifest:
		manifest, err := a.scanner.Manifest(ctx, req.AppID)
		if err != nil {
			return err
		}
		return r.manifest(manifest)

	case CommandLaunch:
		if err := a.launcher.Launch(ctx, req.AppID); err != nil {
			return err
		}
		return r.launched(req.AppID)
	}
	return fmt.Errorf("unknown command %q", req.Command)
}
