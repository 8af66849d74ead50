package steam_util

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/andygrunwald/vdf"
)

// ExtractAcfValue returns the value of the first `"key" "value"` line in an
// acf/vdf text. Only flat lines are recognised: nesting is ignored and
// lines that don't split into at least four quote-delimited parts are
// skipped.
func ExtractAcfValue(content, key string) (string, bool) {
	pattern := `"` + key + `"`
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), pattern) {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) >= 4 {
			return parts[3], true
		}
	}
	return "", false
}

type manifestFields struct {
	AppID      string
	Name       string
	InstallDir string
}

func scrapeManifest(content string) manifestFields {
	var f manifestFields
	f.AppID, _ = ExtractAcfValue(content, "appid")
	f.Name, _ = ExtractAcfValue(content, "name")
	f.InstallDir, _ = ExtractAcfValue(content, "installdir")
	return f
}

// parseManifest reads the same three keys as scrapeManifest from a fully
// parsed manifest. Keys are matched exactly, like the scraper does; only the
// top level of the AppState section is consulted.
func parseManifest(content, name string) (manifestFields, error) {
	parsed, err := vdf.NewParser(strings.NewReader(content)).Parse()
	if err != nil {
		return manifestFields{}, fmt.Errorf("couldn't parse %s: %w", name, err)
	}
	appState, ok := parsed["AppState"].(map[string]interface{})
	if !ok {
		return manifestFields{}, fmt.Errorf("%s has no AppState section", name)
	}
	value := func(key string) string {
		s, _ := appState[key].(string)
		return s
	}
	return manifestFields{
		AppID:      value("appid"),
		Name:       value("name"),
		InstallDir: value("installdir"),
	}, nil
}
