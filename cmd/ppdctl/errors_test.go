package main

import (
	"errors"
	"testing"
)

func TestExitErrorImplementsError(t *testing.T) {
	err := &ExitError{Code: 1, Message: "something failed"}

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
}

func TestExitErrorMatchesWithErrorsAs(t *testing.T) {
	var wrapped error = &ExitError{Code: 3, Message: "bus gone"}

	var exitErr *ExitError
	if !errors.As(wrapped, &exitErr) {
		t.Fatal("errors.As did not match ExitError")
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
}

func TestFailureClassesStayDistinguishable(t *testing.T) {
	codes := map[string]int{
		"success":         exitSuccess,
		"local":           exitError,
		"daemon rejected": exitDaemonRejected,
		"transport":       exitTransport,
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if prev, dup := seen[code]; dup {
			t.Errorf("%s and %s share exit code %d", prev, name, code)
		}
		seen[code] = name
	}
	if exitSuccess != 0 {
		t.Errorf("exitSuccess = %d, want 0", exitSuccess)
	}
}

func TestEnableDisableErrors(t *testing.T) {
	conflict := errEnableDisableConflict()
	if conflict.Code != exitError || conflict.Message == "" {
		t.Errorf("conflict = %+v, want local-failure code and a message", conflict)
	}

	required := errEnableDisableRequired()
	if required.Code != exitError || required.Message == "" {
		t.Errorf("required = %+v, want local-failure code and a message", required)
	}
}

func TestErrChildExit(t *testing.T) {
	err := errChildExit(42)

	if err.Code != 42 {
		t.Errorf("Code = %d, want the child's code", err.Code)
	}
	if err.Message != "" {
		t.Errorf("Message = %q, want empty (child already wrote its errors)", err.Message)
	}
}

func TestExactlyOne(t *testing.T) {
	if err := exactlyOne(true, false); err != nil {
		t.Errorf("exactlyOne(enable) error = %v", err)
	}
	if err := exactlyOne(false, true); err != nil {
		t.Errorf("exactlyOne(disable) error = %v", err)
	}
	if err := exactlyOne(true, true); err == nil {
		t.Error("exactlyOne(both) should fail")
	}
	if err := exactlyOne(false, false); err == nil {
		t.Error("exactlyOne(neither) should fail")
	}
}
