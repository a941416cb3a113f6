package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/rmohr/allergens/pkg/api/allergens"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

// RelPath is the location of the settings file below the XDG config directories.
const RelPath = "allergens/config.yaml"

// Find returns the first settings file in the XDG config directories, or an
// empty string if there is none.
func Find() string {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		logrus.Debugf("no settings file found: %v", err)
		return ""
	}
	return path
}

// Load reads the settings from path. An empty path yields the defaults.
func Load(path string) (*allergens.Settings, error) {
	settings := &allergens.Settings{}
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %v", path, err)
	}
	logrus.Debugf("loaded settings from %s", path)
	return settings, nil
}
