package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevOut, prevNoColor := Output, color.NoColor
	buf := &bytes.Buffer{}
	Output = buf
	color.NoColor = true
	t.Cleanup(func() {
		Output = prevOut
		color.NoColor = prevNoColor
		Init(false)
	})
	return buf
}

func TestLevelsWriteToOutput(t *testing.T) {
	buf := captureOutput(t)

	Info("[INFO] %s\n", "hello")
	Warn("[WARN] %d\n", 2)
	Error("[ERROR] boom\n")

	assert.Equal(t, "[INFO] hello\n[WARN] 2\n[ERROR] boom\n", buf.String())
}

func TestDebugIsSilentUntilEnabled(t *testing.T) {
	buf := captureOutput(t)

	Init(false)
	Debug("[DEBUG] hidden\n")
	assert.Empty(t, buf.String())

	Init(true)
	Debug("[DEBUG] shown\n")
	assert.Equal(t, "[DEBUG] shown\n", buf.String())
}
