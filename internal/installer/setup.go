package installer

import (
	"context"

	"setup-electron/internal/config"
	"setup-electron/internal/logger"
	"setup-electron/internal/scaffold"
	"setup-electron/internal/toolchain"
)

// Setup sequences the stages: resolve tools, check them, ensure the global package,
// scaffold the project, install its dependencies, launch it.
// Each stage runs once and the first error stops the sequence. Nothing is rolled back.
type Setup struct {
	Runner toolchain.Runner
	Config config.Config

	// Resolve and Scaffold default to toolchain.ResolvePaths and scaffold.Write.
	Resolve  func(config.Config) (toolchain.ToolPaths, error)
	Scaffold func(dir string) (string, error)
}

// Run executes every stage in order.
func (s *Setup) Run(ctx context.Context) error {
	logger.Info("[INFO] Starting Electron app setup...\n")

	paths, err := s.Check(ctx)
	if err != nil {
		return err
	}

	if err := EnsureGlobalPackage(ctx, s.Runner, paths, s.Config.GlobalPackage); err != nil {
		return err
	}

	projectPath, err := s.scaffold()(s.Config.ProjectDir)
	if err != nil {
		return err
	}

	if err := s.installAndLaunch(ctx, paths, projectPath); err != nil {
		return err
	}

	logger.Info("[INFO] Setup complete. Enjoy your Electron app!\n")
	return nil
}

// Check resolves both tools and confirms they answer a version query.
func (s *Setup) Check(ctx context.Context) (toolchain.ToolPaths, error) {
	paths, err := s.resolve()(s.Config)
	if err != nil {
		return toolchain.ToolPaths{}, err
	}
	logger.Debug("[DEBUG] Using runtime %s and package manager %s\n", paths.Runtime, paths.PackageManager)

	if err := CheckEnvironment(ctx, s.Runner, paths); err != nil {
		return toolchain.ToolPaths{}, err
	}
	return paths, nil
}

// RunProject installs dependencies for, and launches, an already scaffolded project.
// The tools are resolved but not version-checked.
func (s *Setup) RunProject(ctx context.Context, projectPath string) error {
	paths, err := s.resolve()(s.Config)
	if err != nil {
		return err
	}
	return s.installAndLaunch(ctx, paths, projectPath)
}

func (s *Setup) installAndLaunch(ctx context.Context, paths toolchain.ToolPaths, projectPath string) error {
	if err := InstallDependencies(ctx, s.Runner, paths, projectPath); err != nil {
		return err
	}
	return Launch(ctx, s.Runner, paths, projectPath)
}

func (s *Setup) resolve() func(config.Config) (toolchain.ToolPaths, error) {
	if s.Resolve != nil {
		return s.Resolve
	}
	return toolchain.ResolvePaths
}

func (s *Setup) scaffold() func(string) (string, error) {
	if s.Scaffold != nil {
		return s.Scaffold
	}
	return scaffold.Write
}
