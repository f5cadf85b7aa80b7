package installer

import (
	"context"

	"setup-electron/internal/logger"
	"setup-electron/internal/toolchain"
)

// CheckEnvironment asks the runtime and then the package manager for their version.
// The first failure is returned as *toolchain.PreconditionError and nothing after it runs.
func CheckEnvironment(ctx context.Context, r toolchain.Runner, paths toolchain.ToolPaths) error {
	logger.Info("[INFO] Checking for runtime and package manager installation...\n")

	for _, tool := range []string{paths.Runtime, paths.PackageManager} {
		if err := r.Run(ctx, "", tool, "--version"); err != nil {
			logger.Error("[ERROR] %s did not report a version: %v\n", tool, err)
			return &toolchain.PreconditionError{Tool: tool, Err: err}
		}
		logger.Info("[INFO] %s is installed successfully.\n", tool)
	}
	return nil
}
