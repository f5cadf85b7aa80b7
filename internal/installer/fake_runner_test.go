package installer

import (
	"context"
	"strings"

	"setup-electron/internal/toolchain"
)

type call struct {
	Dir  string
	Line string
}

// fakeRunner records every invocation and fails the ones listed in failures,
// keyed by "name arg1 arg2...".
type fakeRunner struct {
	calls    []call
	failures map[string]error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, call{Dir: dir, Line: line})
	return f.failures[line]
}

func (f *fakeRunner) lines() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Line)
	}
	return out
}

var testPaths = toolchain.ToolPaths{Runtime: "/bin/node", PackageManager: "/bin/npm"}
