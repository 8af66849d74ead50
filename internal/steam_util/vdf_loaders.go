package steam_util

import (
	"fmt"
	"io"
	"os"

	"github.com/andygrunwald/vdf"
)

func initVdfStructFromFile(vdfFilePath string, result interface{}) error {
	vdfFile, err := os.Open(vdfFilePath)
	if err != nil {
		return fmt.Errorf("couldn't open %s: %w", vdfFilePath, err)
	}
	defer vdfFile.Close()
	return initVdfStructFromReader(vdfFile, vdfFilePath, result)
}

func initVdfStructFromReader(r io.Reader, name string, result interface{}) error {
	parsed, err := vdf.NewParser(r).Parse()
	if err != nil {
		return fmt.Errorf("couldn't parse %s: %w", name, err)
	}
	return decodeVdfMap(parsed, result)
}

// GetLoginUsers reads a loginusers.vdf file.
func GetLoginUsers(loginUsersPath string) (*VdfLoginUsers, error) {
	var loginUsers VdfLoginUsers
	if err := initVdfStructFromFile(loginUsersPath, &loginUsers); err != nil {
		return nil, err
	}
	return &loginUsers, nil
}

// LoadAppManifest fully parses one appmanifest_<id>.acf file.
func LoadAppManifest(manifestPath string) (*AppManifest, error) {
	var manifest VdfAppManifest
	if err := initVdfStructFromFile(manifestPath, &manifest); err != nil {
		return nil, err
	}
	return &manifest.AppState, nil
}
