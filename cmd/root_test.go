package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-electron/internal/config"
	"setup-electron/internal/logger"
	"setup-electron/internal/scaffold"
	"setup-electron/internal/toolchain"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		debug, configPath, projectDir = false, "", ""
		rootCmd.SetArgs(nil)
		logger.Init(false)
	})
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevOut, prevNoColor := logger.Output, color.NoColor
	buf := &bytes.Buffer{}
	logger.Output, color.NoColor = buf, true
	t.Cleanup(func() { logger.Output, color.NoColor = prevOut, prevNoColor })
	return buf
}

func TestScaffoldCommandWritesProject(t *testing.T) {
	resetFlags(t)
	captureLog(t)
	dir := filepath.Join(t.TempDir(), "app")

	rootCmd.SetArgs([]string{"scaffold", "--dir", dir})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	for _, f := range scaffold.Files() {
		assert.FileExists(t, filepath.Join(dir, f.Name))
	}
}

func TestNewSetupAppliesConfigAndDirOverride(t *testing.T) {
	resetFlags(t)
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("global_package: electron-forge\nproject_dir: from-config\n"), 0644))

	configPath = cfgFile
	s, err := newSetup()
	require.NoError(t, err)
	assert.Equal(t, "electron-forge", s.Config.GlobalPackage)
	assert.Equal(t, "from-config", s.Config.ProjectDir)

	projectDir = "from-flag"
	s, err = newSetup()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", s.Config.ProjectDir)
	assert.Equal(t, toolchain.ExecRunner{}, s.Runner)
}

func TestNewSetupDefaults(t *testing.T) {
	resetFlags(t)

	s, err := newSetup()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s.Config)
}

func TestReportErrorPrecondition(t *testing.T) {
	buf := captureLog(t)

	reportError(&toolchain.PreconditionError{Tool: "node", Err: errors.New("not found")})

	assert.Contains(t, buf.String(), "Node.js or npm is missing. Please install them first.")
	assert.Contains(t, buf.String(), "node is not available: not found")
}

func TestReportErrorStep(t *testing.T) {
	buf := captureLog(t)

	reportError(&toolchain.StepError{Step: "install", Err: errors.New("exit 1")})

	assert.Equal(t, "[ERROR] install failed: exit 1\n", buf.String())
}
