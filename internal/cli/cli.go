package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/app"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/config"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...interface{}) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

const usage = `
gaminghub - find, list and launch Steam games.

Usage:
  gaminghub [options] <command> [command options]

Commands:
  steam-id            Print the SteamID64 found in the login cache.
  whoami              Print the most recently logged-in Steam account.
  scan                List games in the Steam library.
      -all            Include Steamworks Common Redistributables.
      -full           Parse manifests fully instead of scraping key lines.
      -covers         Include cover art URLs.
  manifest <appid>    Print one app manifest.
  launch <appid>      Launch a game through the Steam client.

Options:
`

// Parse turns args into a Request. base supplies every value no flag sets.
// It returns true when the program should exit cleanly without running
// anything, e.g. after printing help.
func Parse(args []string, base config.Config, output io.Writer) (*app.Request, bool, error) {
	flagSet := flag.NewFlagSet("gaminghub", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", base.LibraryRoot, "Steam library root containing steamapps.")
	loginUsersFlag := flagSet.String("loginusers", strings.Join(base.LoginUsersPaths, ";"), "';'-separated loginusers.vdf candidates, searched in order.")
	formatFlag := flagSet.String("format", app.FormatJSON, "Output format. Options: 'json', 'text' or 'dump'.")
	logLevelFlag := flagSet.String("log-level", base.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", base.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case app.FormatJSON, app.FormatText, app.FormatDump:
	default:
		return nil, false, usageError("invalid format %q: must be 'json', 'text' or 'dump'", *formatFlag)
	}

	cfg := base
	cfg.LibraryRoot = *rootFlag
	cfg.LoginUsersPaths = config.SplitPaths(*loginUsersFlag)
	cfg.LogLevel = strings.ToLower(*logLevelFlag)
	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	if err := cfg.Validate(); err != nil {
		return nil, false, usageError("%v", err)
	}

	req := &app.Request{
		Command: flagSet.Arg(0),
		Format:  format,
		Config:  cfg,
	}
	rest := flagSet.Args()[1:]

	switch req.Command {
	case app.CommandSteamID, app.CommandWhoAmI:
		if len(rest) != 0 {
			return nil, false, usageError("%s takes no arguments", req.Command)
		}

	case app.CommandScan:
		scanFlags := flag.NewFlagSet("scan", flag.ContinueOnError)
		scanFlags.SetOutput(output)
		scanFlags.BoolVar(&req.AllGames, "all", false, "Include Steamworks Common Redistributables.")
		scanFlags.BoolVar(&req.FullParse, "full", false, "Parse manifests fully instead of scraping key lines.")
		scanFlags.BoolVar(&req.Covers, "covers", false, "Include cover art URLs.")
		if err := scanFlags.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if scanFlags.NArg() != 0 {
			return nil, false, usageError("scan takes no arguments")
		}

	case app.CommandManifest, app.CommandLaunch:
		if len(rest) != 1 || rest[0] == "" {
			return nil, false, usageError("%s requires exactly one app id", req.Command)
		}
		req.AppID = rest[0]

	default:
		return nil, false, usageError("unknown command %q", req.Command)
	}

	slog.Debug("CLI arguments parsed.", "command", req.Command, "root", cfg.LibraryRoot)
	return req, false, nil
}
