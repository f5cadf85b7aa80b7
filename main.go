package main

import (
	"setup-electron/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// setup-electron bootstraps a minimal Electron desktop app:
//   - Verifies node and npm are callable and report a version
//   - Installs electron globally with npm when `npm list -g electron` does not find it
//   - Writes package.json, main.js, index.html and renderer.js into ./my_electron_app
//   - Runs `npm install` and then `npm start` inside that directory
//
// Error handling strategy:
//   - Every stage returns an error and the first one aborts the run with exit status 1
//   - Nothing is retried and partially written files are left in place
//   - The launched app's own exit status is logged but does not fail the run
func main() {
	cmd.Execute()
}
