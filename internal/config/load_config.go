package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultProjectDir is the directory, relative to the working directory,
// that the Electron project is scaffolded into.
const DefaultProjectDir = "my_electron_app"

// Default returns the configuration used when no config file is given.
// On Windows the stock Node.js install location is searched first; elsewhere
// the usual Homebrew and /usr/local prefixes are.
func Default() Config {
	var nodeLocations, npmLocations []string
	if runtime.GOOS == "windows" {
		nodeLocations = []string{`C:\Program Files\nodejs\node.exe`}
		npmLocations = []string{`C:\Program Files\nodejs\npm.cmd`}
	} else {
		nodeLocations = []string{"/opt/homebrew/bin", "/usr/local/bin"}
		npmLocations = []string{"/opt/homebrew/bin", "/usr/local/bin"}
	}

	return Config{
		Runtime:        Tool{Name: "node", Locations: nodeLocations},
		PackageManager: Tool{Name: "npm", Locations: npmLocations},
		GlobalPackage:  "electron",
		ProjectDir:     DefaultProjectDir,
	}
}

// LoadConfig reads configFile and overlays it onto Default().
// An empty path returns the defaults untouched. Fields left out of the file
// keep their default values; a listed `locations` replaces the default list.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", configFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", configFile, err)
	}
	return cfg, nil
}

// Validate reports the first required field that is empty.
func (c Config) Validate() error {
	switch {
	case c.Runtime.Name == "":
		return fmt.Errorf("runtime.name is required")
	case c.PackageManager.Name == "":
		return fmt.Errorf("package_manager.name is required")
	case c.GlobalPackage == "":
		return fmt.Errorf("global_package is required")
	case c.ProjectDir == "":
		return fmt.Errorf("project_dir is required")
	}
	return nil
}
