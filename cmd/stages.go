package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"setup-electron/internal/scaffold"
)

// checkCmd only verifies the runtime and package manager.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that node and npm are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		_, err = s.Check(cmd.Context())
		return err
	},
}

// scaffoldCmd only writes the project files.
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write the Electron project files without installing or launching",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		_, err = scaffold.Write(s.Config.ProjectDir)
		return err
	},
}

// runCmd installs dependencies for an existing project and launches it.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Install dependencies and launch an already scaffolded project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		dir, err := filepath.Abs(s.Config.ProjectDir)
		if err != nil {
			return err
		}
		return s.RunProject(cmd.Context(), dir)
	},
}
