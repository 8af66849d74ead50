package steam_util

import (
	"context"
	"errors"
	"os"
	"regexp"
	"sort"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/ctxlog"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/steam_steamid"
)

var (
	ErrSteamIDNotFound = errors.New("steam id not found")
	ErrNoLoginUser     = errors.New("couldn't find last steam user")
)

// Any 17 digit run, anywhere in the file. Not anchored to a vdf key.
var steamID64InText = regexp.MustCompile(`[0-9]{17}`)

// Locator finds the logged-in account from Steam's login cache.
type Locator struct {
	// Paths are loginusers.vdf candidates, searched in order.
	Paths []string
}

func NewLocator(paths []string) *Locator {
	return &Locator{Paths: paths}
}

// FindSteamID64 returns the first 17 digit run in text, or "".
func FindSteamID64(text string) string {
	return steamID64InText.FindString(text)
}

// SteamID returns the first SteamID64 found in the existing candidates.
// Missing or unreadable candidates and ones without a match are passed over.
func (l *Locator) SteamID(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)
	for _, candidate := range l.Paths {
		if !pathExists(candidate) {
			logger.Debug("login users file absent", "path", candidate)
			continue
		}
		content, err := os.ReadFile(candidate)
		if err != nil {
			logger.Warn("couldn't read login users file", "path", candidate, "error", err)
			continue
		}
		if id := FindSteamID64(string(content)); id != "" {
			logger.Debug("found steam id", "path", candidate)
			if sid, err := steam_steamid.Parse(id); err != nil || !sid.IsValid() {
				logger.Warn("matched digits don't decode to a valid steam id", "path", candidate, "steam_id", id)
			}
			return id, nil
		}
		logger.Debug("no steam id in login users file", "path", candidate)
	}
	return "", ErrSteamIDNotFound
}

// LastLoginUser returns the account flagged MostRecent, or failing that the
// one with the newest Timestamp, from the first candidate that parses and
// lists at least one user. Other candidates are passed over like in SteamID.
func (l *Locator) LastLoginUser(ctx context.Context) (*SteamUser, error) {
	logger := ctxlog.FromContext(ctx)
	for _, candidate := range l.Paths {
		if !pathExists(candidate) {
			continue
		}
		logger.Debug("parsing login users", "path", candidate)
		loginUsers, err := GetLoginUsers(candidate)
		if err != nil {
			logger.Warn("couldn't parse login users file", "path", candidate, "error", err)
			continue
		}
		user, err := lastLoginUser(loginUsers)
		if err != nil {
			logger.Debug("no users in login users file", "path", candidate)
			continue
		}
		return user, nil
	}
	return nil, ErrNoLoginUser
}

func lastLoginUser(loginUsers *VdfLoginUsers) (*SteamUser, error) {
	ids := make([]uint64, 0, len(loginUsers.Users))
	for id := range loginUsers.Users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var lastSteamUser *SteamUser
	for _, id := range ids {
		steamUser := loginUsers.Users[id]
		steamUser.SteamID64 = id
		steamUser.AccountID = steam_steamid.FromUint64(id).AccountID

		if steamUser.MostRecent == 1 {
			return &steamUser, nil
		}
		if lastSteamUser == nil || steamUser.Timestamp > lastSteamUser.Timestamp {
			lastSteamUser = &steamUser
		}
	}
	if lastSteamUser == nil {
		return nil, ErrNoLoginUser
	}
	return lastSteamUser, nil
}
