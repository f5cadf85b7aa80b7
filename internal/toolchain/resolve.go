package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"setup-electron/internal/config"
	"setup-electron/internal/logger"
)

// ToolPaths holds the resolved executables for the runtime and its package manager.
type ToolPaths struct {
	Runtime        string
	PackageManager string
}

// ResolvePaths resolves both tools named in cfg.
func ResolvePaths(cfg config.Config) (ToolPaths, error) {
	runtimePath, err := Resolve(cfg.Runtime.Name, cfg.Runtime.Locations)
	if err != nil {
		return ToolPaths{}, err
	}
	pmPath, err := Resolve(cfg.PackageManager.Name, cfg.PackageManager.Locations)
	if err != nil {
		return ToolPaths{}, err
	}
	return ToolPaths{Runtime: runtimePath, PackageManager: pmPath}, nil
}

// Resolve finds the executable for name.
// Each location is tried in order, first as the executable itself and then as a
// directory containing name. If none match, PATH is searched.
func Resolve(name string, locations []string) (string, error) {
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		if path, ok := lookIn(loc, name); ok {
			logger.Debug("[DEBUG] Resolved %s to configured location %s\n", name, path)
			return path, nil
		}
		logger.Debug("[DEBUG] %s not found at %s\n", name, loc)
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", &PreconditionError{Tool: name, Err: fmt.Errorf("not found in configured locations or PATH: %w", err)}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	logger.Debug("[DEBUG] Resolved %s from PATH to %s\n", name, path)
	return path, nil
}

// lookIn checks loc as a file, then as a directory holding name.
// exec.LookPath is used for the directory case so PATHEXT applies on Windows.
func lookIn(loc, name string) (string, bool) {
	info, err := os.Stat(loc)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		return loc, true
	}

	path, err := exec.LookPath(filepath.Join(loc, name))
	if err != nil {
		return "", false
	}
	return path, true
}
