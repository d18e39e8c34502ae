package main

import (
	"errors"
	"testing"

	"github.com/varet/ppd"
)

func TestConfigureActionCmd_TogglesAction(t *testing.T) {
	fake := &fakeProxy{}
	fake.install(t)

	enable := &ConfigureActionCmd{Action: "trickle_charge", Enable: true}
	if err := enable.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !fake.actionState["trickle_charge"] {
		t.Error("action should be enabled")
	}

	disable := &ConfigureActionCmd{Action: "trickle_charge", Disable: true}
	if err := disable.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fake.actionState["trickle_charge"] {
		t.Error("action should be disabled")
	}
}

func TestConfigureActionCmd_RejectsFlagConflict(t *testing.T) {
	fake := &fakeProxy{}
	fake.install(t)

	cmd := &ConfigureActionCmd{Action: "trickle_charge", Enable: true, Disable: true}
	err := cmd.Run()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want ExitError", err)
	}
	if len(fake.actionState) != 0 {
		t.Error("no call should reach the daemon on a usage error")
	}
}

func TestConfigureActionCmd_RelaysUnknownActionRejection(t *testing.T) {
	rejection := &ppd.RemoteError{Message: "unknown action"}
	fake := &fakeProxy{err: rejection}
	fake.install(t)

	cmd := &ConfigureActionCmd{Action: "warp_drive", Enable: true}
	err := cmd.Run()

	var remote *ppd.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("Run() error = %v, want the RemoteError relayed", err)
	}
}
