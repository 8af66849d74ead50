package steam_util

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type shellExecuteOpener struct{}

// SystemOpener hands URIs to ShellExecuteW, the same facility Explorer uses.
func SystemOpener() URIOpener {
	return shellExecuteOpener{}
}

func (shellExecuteOpener) OpenURI(uri string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(uri)
	if err != nil {
		return fmt.Errorf("invalid uri %q: %w", uri, err)
	}
	return windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL)
}
