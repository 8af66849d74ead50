package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/config"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/steam_util"
)

const manifest440 = "\"AppState\"\n{\n\t\"appid\"\t\t\"440\"\n\t\"name\"\t\t\"Team Fortress 2\"\n\t\"StateFlags\"\t\t\"4\"\n\t\"installdir\"\t\t\"Team Fortress 2\"\n}\n"
const manifestRedist = "\"AppState\"\n{\n\t\"appid\"\t\t\"228980\"\n\t\"name\"\t\t\"Steamworks Common Redistributables\"\n\t\"installdir\"\t\t\"Steamworks Shared\"\n}\n"
const loginUsers = "\"users\"\n{\n\t\"76561197960287930\"\n\t{\n\t\t\"AccountName\"\t\t\"gaben\"\n\t\t\"PersonaName\"\t\t\"Gabe\"\n\t\t\"MostRecent\"\t\t\"1\"\n\t}\n}\n"

func fixtureConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	steamApps := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(steamApps, "common", "Team Fortress 2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(steamApps, "appmanifest_440.acf"), []byte(manifest440), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(steamApps, "appmanifest_228980.acf"), []byte(manifestRedist), 0o600))
	loginPath := filepath.Join(root, "config", "loginusers.vdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(loginPath), 0o755))
	require.NoError(t, os.WriteFile(loginPath, []byte(loginUsers), 0o600))

	cfg := config.Default()
	cfg.LibraryRoot = root
	cfg.LoginUsersPaths = []string{filepath.Join(root, "missing.vdf"), loginPath}
	return cfg
}

func runApp(t *testing.T, cfg config.Config, opener steam_util.URIOpener, req *Request) (string, error) {
	t.Helper()
	var out bytes.Buffer
	req.Config = cfg
	err := NewApp(&out, cfg, opener).Run(context.Background(), req)
	return out.String(), err
}

func TestRun_ScanJSONHidesRedistributables(t *testing.T) {
	cfg := fixtureConfig(t)
	out, err := runApp(t, cfg, nil, &Request{Command: CommandScan, Format: FormatJSON})
	require.NoError(t, err)

	var games []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "440", games[0]["app_id"])
	assert.Equal(t, "Team Fortress 2", games[0]["name"])
	assert.Equal(t, true, games[0]["installed"])
	assert.NotContains(t, games[0], "cover_url")
}

func TestRun_ScanAllWithCovers(t *testing.T) {
	cfg := fixtureConfig(t)
	out, err := runApp(t, cfg, nil, &Request{Command: CommandScan, Format: FormatText, AllGames: true, Covers: true})
	require.NoError(t, err)
	assert.Contains(t, out, "APP ID")
	assert.Contains(t, out, "228980")
	assert.Contains(t, out, "library_600x900.jpg")
}

func TestRun_ScanMissingSteam(t *testing.T) {
	cfg := config.Default()
	cfg.LibraryRoot = t.TempDir()
	_, err := runApp(t, cfg, nil, &Request{Command: CommandScan, Format: FormatJSON})
	assert.ErrorIs(t, err, steam_util.ErrSteamNotFound)
}

func TestRun_SteamID(t *testing.T) {
	cfg := fixtureConfig(t)
	out, err := runApp(t, cfg, nil, &Request{Command: CommandSteamID, Format: FormatText})
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930\n", out)

	out, err = runApp(t, cfg, nil, &Request{Command: CommandSteamID, Format: FormatJSON})
	require.NoError(t, err)
	assert.JSONEq(t, `{"steam_id":"76561197960287930"}`, out)
}

func TestRun_WhoAmIDump(t *testing.T) {
	cfg := fixtureConfig(t)
	out, err := runApp(t, cfg, nil, &Request{Command: CommandWhoAmI, Format: FormatDump})
	require.NoError(t, err)
	assert.Contains(t, out, "gaben")
	assert.Contains(t, out, "[U:1:22202]")
}

func TestRun_Manifest(t *testing.T) {
	cfg := fixtureConfig(t)
	out, err := runApp(t, cfg, nil, &Request{Command: CommandManifest, AppID: "440", Format: FormatJSON})
	require.NoError(t, err)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, true, view["fully_installed"])
	assert.Equal(t, "public", view["branch"])
	assert.Equal(t, "Team Fortress 2", view["install_dir"])
}

func TestRun_Launch(t *testing.T) {
	var uris []string
	opener := steam_util.URIOpenerFunc(func(uri string) error {
		uris = append(uris, uri)
		return nil
	})
	out, err := runApp(t, config.Default(), opener, &Request{Command: CommandLaunch, AppID: "440", Format: FormatText})
	require.NoError(t, err)
	assert.Equal(t, []string{"steam://rungameid/440"}, uris)
	assert.Equal(t, "launched steam://rungameid/440\n", out)
}

func TestRun_LaunchFailure(t *testing.T) {
	opener := steam_util.URIOpenerFunc(func(string) error { return errors.New("spawn failed") })
	out, err := runApp(t, config.Default(), opener, &Request{Command: CommandLaunch, AppID: "440", Format: FormatJSON})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn failed")
	assert.Empty(t, out)
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runApp(t, config.Default(), nil, &Request{Command: "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = config.LogFormatJSON
	cfg.LogLevel = "warn"

	logger := NewLogger(&buf, cfg)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
