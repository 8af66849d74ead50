package steam_util

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/ctxlog"
)

const (
	manifestPrefix = "appmanifest_"
	manifestSuffix = ".acf"

	// RedistributablesAppID is "Steamworks Common Redistributables", which
	// every library carries but nobody launches.
	RedistributablesAppID = "228980"
)

var ErrSteamNotFound = errors.New("steam not found")

// Scanner lists the games installed under one Steam library root.
// It holds no state between scans and is safe for concurrent use.
type Scanner struct {
	LibraryRoot string
	// FullParse decodes manifests with the vdf parser instead of scraping lines.
	FullParse bool
}

func NewScanner(libraryRoot string) *Scanner {
	return &Scanner{LibraryRoot: libraryRoot}
}

func (s *Scanner) steamAppsPath() string {
	return filepath.Join(s.LibraryRoot, "steamapps")
}

// IsManifestFileName reports whether name looks like appmanifest_<id>.acf.
func IsManifestFileName(name string) bool {
	return strings.HasPrefix(name, manifestPrefix) && strings.HasSuffix(name, manifestSuffix)
}

// Scan reads every app manifest in <root>/steamapps. Any read failure aborts
// the scan; manifests without an appid are skipped.
func (s *Scanner) Scan(ctx context.Context) ([]Game, error) {
	logger := ctxlog.FromContext(ctx)
	steamApps := s.steamAppsPath()

	if !pathExists(steamApps) {
		return nil, fmt.Errorf("%w at %s", ErrSteamNotFound, steamApps)
	}
	entries, err := os.ReadDir(steamApps)
	if err != nil {
		return nil, fmt.Errorf("couldn't list %s: %w", steamApps, err)
	}

	games := []Game{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileName := entry.Name()
		if !IsManifestFileName(fileName) {
			continue
		}
		manifestPath := filepath.Join(steamApps, fileName)
		content, err := os.ReadFile(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("couldn't read %s: %w", manifestPath, err)
		}

		var fields manifestFields
		if s.FullParse {
			fields, err = parseManifest(string(content), manifestPath)
			if err != nil {
				logger.Debug("skipping unparsable manifest", "file", fileName, "error", err)
				continue
			}
		} else {
			fields = scrapeManifest(string(content))
		}
		if fields.AppID == "" {
			logger.Debug("skipping manifest without appid", "file", fileName)
			continue
		}

		installDir := filepath.Join(steamApps, "common", fields.InstallDir)
		games = append(games, Game{
			AppID:      fields.AppID,
			Name:       fields.Name,
			InstallDir: installDir,
			Installed:  pathExists(installDir),
		})
	}
	logger.Debug("scanned steam library", "root", s.LibraryRoot, "games", len(games))
	return games, nil
}

// Manifest fully parses the manifest of a single app.
func (s *Scanner) Manifest(ctx context.Context, appID string) (*AppManifest, error) {
	if appID == "" {
		return nil, ErrEmptyAppID
	}
	if strings.ContainsAny(appID, `/\`) || appID == "." || appID == ".." {
		return nil, fmt.Errorf("invalid app id %q", appID)
	}
	steamApps := s.steamAppsPath()
	if !pathExists(steamApps) {
		return nil, fmt.Errorf("%w at %s", ErrSteamNotFound, steamApps)
	}
	manifestPath := filepath.Join(steamApps, manifestPrefix+appID+manifestSuffix)
	ctxlog.FromContext(ctx).Debug("loading app manifest", "path", manifestPath)
	return LoadAppManifest(manifestPath)
}

// FilterRedistributables drops the Steamworks redistributables entry.
func FilterRedistributables(games []Game) []Game {
	kept := make([]Game, 0, len(games))
	for _, g := range games {
		if g.AppID != RedistributablesAppID {
			kept = append(kept, g)
		}
	}
	return kept
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
