package installer

import (
	"context"
	"errors"

	"setup-electron/internal/logger"
	"setup-electron/internal/toolchain"
)

// InstallDependencies runs `install` with no arguments inside the project directory,
// so the package manager reads the generated manifest.
func InstallDependencies(ctx context.Context, r toolchain.Runner, paths toolchain.ToolPaths, projectPath string) error {
	logger.Info("[INFO] Installing project dependencies in %s...\n", projectPath)
	if err := r.Run(ctx, projectPath, paths.PackageManager, "install"); err != nil {
		return &toolchain.StepError{Step: "install", Err: err}
	}
	logger.Info("[INFO] Project dependencies have been installed successfully.\n")
	return nil
}

// Launch runs `start` inside the project directory and blocks until the app exits.
// The app's exit status is not inspected; only failing to start the command is an error.
func Launch(ctx context.Context, r toolchain.Runner, paths toolchain.ToolPaths, projectPath string) error {
	logger.Info("[INFO] Launching the Electron app...\n")

	err := r.Run(ctx, projectPath, paths.PackageManager, "start")
	var exitErr *toolchain.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		logger.Warn("[WARN] Electron app exited with status %d\n", exitErr.Code)
	default:
		return &toolchain.StepError{Step: "start", Err: err}
	}

	logger.Info("[INFO] Electron app has exited.\n")
	return nil
}
