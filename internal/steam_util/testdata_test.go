package steam_util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const tf2Manifest = `"AppState"
{
	"appid"		"440"
	"universe"		"1"
	"name"		"Team Fortress 2"
	"StateFlags"		"4"
	"installdir"		"Team Fortress 2"
	"LastUpdated"		"1700000000"
	"SizeOnDisk"		"28000000000"
	"buildid"		"12345678"
	"UserConfig"
	{
		"language"		"english"
	}
	"InstalledDepots"
	{
		"441"
		{
			"manifest"		"7707612755534383178"
			"size"		"1027540345"
		}
	}
}
`

const loginUsersVdf = `"users"
{
	"76561197960287930"
	{
		"AccountName"		"gaben"
		"PersonaName"		"Gabe"
		"RememberPassword"		"1"
		"MostRecent"		"0"
		"Timestamp"		"1600000000"
	}
	"76561198000000001"
	{
		"AccountName"		"second"
		"PersonaName"		"Second"
		"MostRecent"		"1"
		"Timestamp"		"1500000000"
	}
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// newLibrary creates <tmp>/steamapps and returns the library root.
func newLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "steamapps"), 0o755))
	return root
}
