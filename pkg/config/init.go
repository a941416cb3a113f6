package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/rmohr/allergens/pkg/api/allergens"
	"sigs.k8s.io/yaml"
)

type Init struct {
	File     string
	Settings *allergens.Settings
}

// Init writes the settings file. Existing files are never overwritten.
func (i *Init) Init() error {
	file := i.File
	if file == "" {
		var err error
		file, err = xdg.ConfigFile(RelPath)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %v", err)
		}
	}
	_, err := os.Stat(file)
	if !os.IsNotExist(err) {
		return fmt.Errorf("settings file %s already exists.", file)
	}
	data, err := yaml.Marshal(i.Settings)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0640)
}

func NewInit(file string, settings *allergens.Settings) *Init {
	return &Init{
		File:     file,
		Settings: settings,
	}
}
