// Package scaffold writes the boilerplate Electron project to disk.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"setup-electron/internal/logger"
)

// File is one generated project file.
type File struct {
	Name    string
	Content string
}

// Files returns the project files in the order they are written.
func Files() []File {
	return []File{
		{Name: PackageJSONName, Content: PackageJSON},
		{Name: MainJSName, Content: MainJS},
		{Name: IndexHTMLName, Content: IndexHTML},
		{Name: RendererJSName, Content: RendererJS},
	}
}

// Write scaffolds the project into dir and returns its absolute path.
// An existing directory is reused without looking at what it holds;
// the four project files are always overwritten.
func Write(dir string) (string, error) {
	logger.Info("[INFO] Setting up Electron project...\n")

	projectPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path %s: %w", dir, err)
	}

	if _, err := os.Stat(projectPath); os.IsNotExist(err) {
		if err := os.MkdirAll(projectPath, 0755); err != nil {
			return "", fmt.Errorf("failed to create project directory %s: %w", projectPath, err)
		}
		logger.Info("[INFO] Created project directory at %s\n", projectPath)
	} else {
		logger.Info("[INFO] Project directory already exists. Continuing...\n")
	}

	for _, f := range Files() {
		target := filepath.Join(projectPath, f.Name)
		if err := os.WriteFile(target, []byte(f.Content), 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", target, err)
		}
		logger.Info("[INFO] %s has been created.\n", f.Name)
	}

	logger.Info("[INFO] Electron project has been successfully set up at %s.\n", projectPath)
	return projectPath, nil
}
