package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sanity-io/litter"

	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/steam_steamid"
	"github.com/Aryanvirpsu/GamingUniversalHUB/internal/steam_util"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatDump = "dump"
)

type renderer struct {
	w      io.Writer
	format string
}

type gameRow struct {
	steam_util.Game
	CoverURL string `json:"cover_url,omitempty"`
}

type userView struct {
	*steam_util.SteamUser
	Steam3 string `json:"steam3"`
}

type manifestView struct {
	*steam_util.AppManifest
	FullyInstalled bool   `json:"fully_installed"`
	Branch         string `json:"branch"`
}

type launchView struct {
	AppID string `json:"app_id"`
	URI   string `json:"uri"`
}

// value writes v as JSON or a litter dump; text callers handle their own layout.
func (r renderer) value(v interface{}) error {
	if r.format == FormatDump {
		_, err := fmt.Fprintln(r.w, litter.Sdump(v))
		return err
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r renderer) steamID(id string) error {
	if r.format == FormatText {
		_, err := fmt.Fprintln(r.w, id)
		return err
	}
	return r.value(map[string]string{"steam_id": id})
}

func (r renderer) user(u *steam_util.SteamUser) error {
	view := userView{SteamUser: u, Steam3: steam_steamid.FromUint64(u.SteamID64).Steam3()}
	if r.format != FormatText {
		return r.value(view)
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SteamID64:\t%d\n", u.SteamID64)
	fmt.Fprintf(tw, "Steam3:\t%s\n", view.Steam3)
	fmt.Fprintf(tw, "Account:\t%s\n", u.AccountName)
	fmt.Fprintf(tw, "Persona:\t%s\n", u.PersonaName)
	return tw.Flush()
}

func (r renderer) games(games []steam_util.Game, covers bool) error {
	rows := make([]gameRow, 0, len(games))
	for _, g := range games {
		row := gameRow{Game: g}
		if covers {
			row.CoverURL = g.CoverURL()
		}
		rows = append(rows, row)
	}
	if r.format != FormatText {
		return r.value(rows)
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	header := "APP ID\tNAME\tINSTALLED\tINSTALL DIR"
	if covers {
		header += "\tCOVER"
	}
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		installed := "no"
		if row.Installed {
			installed = "yes"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s", row.AppID, row.Name, installed, row.InstallDir)
		if covers {
			line += "\t" + row.CoverURL
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func (r renderer) manifest(m *steam_util.AppManifest) error {
	view := manifestView{AppManifest: m, FullyInstalled: m.IsFullyInstalled(), Branch: m.Branch()}
	if r.format != FormatText {
		return r.value(view)
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "App ID:\t%s\n", m.AppID)
	fmt.Fprintf(tw, "Name:\t%s\n", m.Name)
	fmt.Fprintf(tw, "Install dir:\t%s\n", m.InstallDir)
	fmt.Fprintf(tw, "Build:\t%d\n", m.BuildID)
	fmt.Fprintf(tw, "Branch:\t%s\n", view.Branch)
	fmt.Fprintf(tw, "Size on disk:\t%d\n", m.SizeOnDisk)
	fmt.Fprintf(tw, "Fully installed:\t%t\n", view.FullyInstalled)
	return tw.Flush()
}

func (r renderer) launched(appID string) error {
	view := launchView{AppID: appID, URI: steam_util.RunGameURI(appID)}
	if r.format == FormatText {
		_, err := fmt.Fprintf(r.w, "launched %s\n", view.URI)
		return err
	}
	return r.value(view)
}
