package main

// Exit codes for CLI commands. Scripts rely on the three failure classes
// staying distinguishable.
const (
	exitSuccess        = 0
	exitError          = 1 // local/usage failure
	exitDaemonRejected = 2 // daemon reachable, request rejected
	exitTransport      = 3 // bus unreachable or exchange failed
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errEnableDisableConflict() *ExitError {
	return &ExitError{
		Code:    exitError,
		Message: "Only one of --enable and --disable may be given.",
	}
}

func errEnableDisableRequired() *ExitError {
	return &ExitError{
		Code:    exitError,
		Message: "One of --enable or --disable is required.",
	}
}

// errChildExit propagates a launched command's exit code without adding
// any message of our own.
func errChildExit(code int) *ExitError {
	return &ExitError{
		Code:    code,
		Message: "",
	}
}
