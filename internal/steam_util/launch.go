package steam_util

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/ctxlog"
)

const runGameURIPrefix = "steam://rungameid/"

var ErrEmptyAppID = errors.New("app id must not be empty")

// URIOpener hands a URI to whatever the host registers for its scheme.
type URIOpener interface {
	OpenURI(uri string) error
}

// URIOpenerFunc adapts a function to URIOpener.
type URIOpenerFunc func(uri string) error

func (f URIOpenerFunc) OpenURI(uri string) error { return f(uri) }

// Launcher starts games through the Steam client's URI handler.
type Launcher struct {
	opener URIOpener
}

// NewLauncher returns a Launcher using opener, or SystemOpener when nil.
func NewLauncher(opener URIOpener) *Launcher {
	if opener == nil {
		opener = SystemOpener()
	}
	return &Launcher{opener: opener}
}

// RunGameURI builds steam://rungameid/<appID>.
func RunGameURI(appID string) string {
	return runGameURIPrefix + url.PathEscape(appID)
}

// Launch asks Steam to run appID. It returns as soon as the handler has
// been spawned and never learns whether the game actually started.
func (l *Launcher) Launch(ctx context.Context, appID string) error {
	if appID == "" {
		return ErrEmptyAppID
	}
	uri := RunGameURI(appID)
	if err := l.opener.OpenURI(uri); err != nil {
		return fmt.Errorf("couldn't open %s: %w", uri, err)
	}
	ctxlog.FromContext(ctx).Info("launch requested", "app_id", appID, "uri", uri)
	return nil
}

// commandOpener runs an external handler with the URI as a separate
// argument, so nothing is ever interpreted by a shell.
type commandOpener struct {
	name  string
	args  []string
	start func(*exec.Cmd) error
}

func (o *commandOpener) command(uri string) *exec.Cmd {
	args := append(append([]string(nil), o.args...), uri)
	return exec.Command(o.name, args...)
}

func (o *commandOpener) OpenURI(uri string) error {
	start := o.start
	if start == nil {
		start = func(cmd *exec.Cmd) error { return startDetached(cmd, slog.Default()) }
	}
	return start(o.command(uri))
}

// startDetached starts cmd and reaps it in the background, logging a
// non-zero exit at debug level.
func startDetached(cmd *exec.Cmd, logger *slog.Logger) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debug("uri handler exited with error", "cmd", cmd.Path, "args", cmd.Args[1:], "error", err)
		}
	}()
	return nil
}
