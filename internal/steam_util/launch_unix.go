//go:build !windows && !darwin

package steam_util

// SystemOpener uses the freedesktop URI handler.
func SystemOpener() URIOpener {
	return &commandOpener{name: "xdg-open"}
}
