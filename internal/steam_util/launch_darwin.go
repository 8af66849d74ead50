package steam_util

// SystemOpener uses LaunchServices through open(1).
func SystemOpener() URIOpener {
	return &commandOpener{name: "open"}
}
