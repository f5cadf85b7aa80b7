package installer

import (
	"context"

	"setup-electron/internal/logger"
	"setup-electron/internal/toolchain"
)

// EnsureGlobalPackage installs pkg into the package manager's global scope unless
// `list -g pkg` already finds it. The install is attempted once and not re-verified.
func EnsureGlobalPackage(ctx context.Context, r toolchain.Runner, paths toolchain.ToolPaths, pkg string) error {
	logger.Info("[INFO] Checking if %s is installed globally...\n", pkg)

	err := r.Run(ctx, "", paths.PackageManager, "list", "-g", pkg)
	if err == nil {
		logger.Info("[INFO] %s is already installed globally.\n", pkg)
		return nil
	}
	logger.Debug("[DEBUG] list -g %s: %v\n", pkg, err)

	logger.Warn("[WARN] %s is not installed. Installing %s globally...\n", pkg, pkg)
	if err = r.Run(ctx, "", paths.PackageManager, "install", "-g", pkg); err != nil {
		return &toolchain.StepError{Step: "install -g " + pkg, Err: err}
	}
	logger.Info("[INFO] %s has been installed globally.\n", pkg)
	return nil
}
