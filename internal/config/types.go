package config

// Tool describes an executable the setup depends on.
// - Name: executable name looked up on PATH (e.g., node, npm).
// - Locations: places searched before PATH. An entry is either the executable itself
//   or a directory containing it.
type Tool struct {
	Name      string   `yaml:"name"`
	Locations []string `yaml:"locations"`
}

// Config is the top-level structure returned after loading the YAML configuration.
// It names the two tools to check, the global package to ensure and where to scaffold.
type Config struct {
	Runtime        Tool   `yaml:"runtime"`
	PackageManager Tool   `yaml:"package_manager"`
	GlobalPackage  string `yaml:"global_package"`
	ProjectDir     string `yaml:"project_dir"`
}
