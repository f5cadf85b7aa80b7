package toolchain

import "fmt"

// PreconditionError means a required tool is missing or does not answer a version query.
// The setup cannot continue and is not retried.
type PreconditionError struct {
	Tool string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s is not available: %v", e.Tool, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// StepError means an external command in a setup step returned non-zero.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// ExitError is returned by ExecRunner when a child process ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}
