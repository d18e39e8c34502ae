package main

import (
	"errors"
	"testing"
)

func TestLaunchCmd_HoldsAroundChild(t *testing.T) {
	fake := &fakeProxy{holdCookie: 99}
	fake.install(t)

	cmd := &LaunchCmd{Profile: "performance", Reason: "benchmark", Command: []string{"true"}}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(fake.heldArgs) != 1 {
		t.Fatalf("heldArgs = %v, want one hold", fake.heldArgs)
	}
	if fake.heldArgs[0][0] != "performance" {
		t.Errorf("held profile = %q, want performance", fake.heldArgs[0][0])
	}
	if len(fake.released) != 1 || fake.released[0] != 99 {
		t.Errorf("released = %v, want the hold cookie", fake.released)
	}
}

func TestLaunchCmd_DefaultsAppIDToCommandName(t *testing.T) {
	fake := &fakeProxy{}
	fake.install(t)

	cmd := &LaunchCmd{Profile: "performance", Reason: "r", Command: []string{"/usr/bin/true"}}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := fake.heldArgs[0][2]; got != "true" {
		t.Errorf("app id = %q, want the command base name", got)
	}
}

func TestLaunchCmd_PropagatesChildExitCode(t *testing.T) {
	fake := &fakeProxy{holdCookie: 5}
	fake.install(t)

	cmd := &LaunchCmd{Profile: "performance", Reason: "r", Command: []string{"sh", "-c", "exit 7"}}
	err := cmd.Run()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want ExitError", err)
	}
	if exitErr.Code != 7 {
		t.Errorf("Code = %d, want the child's exit code 7", exitErr.Code)
	}
	if len(fake.released) != 1 {
		t.Error("hold must be released even when the child fails")
	}
}
