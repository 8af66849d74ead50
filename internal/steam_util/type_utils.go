package steam_util

import "fmt"

// Types prefixed with "Vdf" mirror the top level of a particular vdf/acf file.
// Members are limited to what we actually read; the parsed tree is decoded
// into them by decodeVdfMap.

type VdfLoginUsers struct {
	Users map[uint64]SteamUser
}

// SteamUser is one entry of config/loginusers.vdf.
type SteamUser struct {
	SteamID64   uint64 `json:"steam_id64"`
	AccountID   uint32 `json:"account_id"`
	AccountName string `json:"account_name"`
	PersonaName string `json:"persona_name"`
	MostRecent  int    `json:"most_recent"`
	Timestamp   int64  `json:"timestamp"`
}

type VdfAppManifest struct {
	AppState AppManifest
}

// AppManifest is the AppState block of a steamapps/appmanifest_<id>.acf file.
type AppManifest struct {
	AppID       string `json:"app_id"`
	Name        string `json:"name"`
	InstallDir  string `json:"install_dir"`
	StateFlags  int    `json:"state_flags"`
	BuildID     int64  `json:"build_id"`
	SizeOnDisk  uint64 `json:"size_on_disk"`
	LastUpdated int64  `json:"last_updated"`
	UserConfig  struct {
		Language string `json:"language,omitempty"`
		BetaKey  string `json:"beta_key,omitempty"`
	} `json:"user_config"`
}

// StateFlags value of a game that is fully installed with no pending update.
const stateFullyInstalled = 4

// IsFullyInstalled reports whether Steam considers the app ready to play.
func (m *AppManifest) IsFullyInstalled() bool {
	return m.StateFlags == stateFullyInstalled
}

// Branch returns the beta branch the app is on.
func (m *AppManifest) Branch() string {
	if m.UserConfig.BetaKey != "" {
		return m.UserConfig.BetaKey
	}
	return "public"
}

// Game is one installed title found by a library scan.
type Game struct {
	AppID      string `json:"app_id"`
	Name       string `json:"name"`
	InstallDir string `json:"install_dir"`
	Installed  bool   `json:"installed"`
}

const coverURLFormat = "https://steamcdn-a.akamaihd.net/steam/apps/%s/library_600x900.jpg"

// CoverURL is the portrait library artwork Steam's CDN serves for the app.
func (g Game) CoverURL() string {
	return fmt.Sprintf(coverURLFormat, g.AppID)
}
