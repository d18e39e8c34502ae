package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/varet/ppd"
	"github.com/varet/ppd/internal/ui"
)

// fakeProxy implements ppd.Proxy in memory and records mutations.
type fakeProxy struct {
	active       string
	profiles     []ppd.Profile
	actions      []ppd.Action
	holds        []ppd.Hold
	degraded     string
	batteryAware bool
	version      string
	holdCookie   uint32
	err          error // returned from every call when set

	setProfiles []string
	heldArgs    [][3]string // profile, reason, appID
	released    []uint32
	actionState map[string]bool
	closed      bool
}

func (f *fakeProxy) ActiveProfile(context.Context) (string, error) {
	return f.active, f.err
}

func (f *fakeProxy) SetActiveProfile(_ context.Context, profile string) error {
	if f.err != nil {
		return f.err
	}
	f.setProfiles = append(f.setProfiles, profile)
	f.active = profile
	return nil
}

func (f *fakeProxy) Profiles(context.Context) ([]ppd.Profile, error) {
	return f.profiles, f.err
}

func (f *fakeProxy) Actions(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.actions))
	for _, a := range f.actions {
		names = append(names, a.Name)
	}
	return names, nil
}

func (f *fakeProxy) ActionsInfo(context.Context) ([]ppd.Action, error) {
	return f.actions, f.err
}

func (f *fakeProxy) SetActionEnabled(_ context.Context, action string, enabled bool) error {
	if f.err != nil {
		return f.err
	}
	if f.actionState == nil {
		f.actionState = make(map[string]bool)
	}
	f.actionState[action] = enabled
	return nil
}

func (f *fakeProxy) ActiveProfileHolds(context.Context) ([]ppd.Hold, error) {
	return f.holds, f.err
}

func (f *fakeProxy) HoldProfile(_ context.Context, profile, reason, appID string) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.heldArgs = append(f.heldArgs, [3]string{profile, reason, appID})
	return f.holdCookie, nil
}

func (f *fakeProxy) ReleaseProfile(_ context.Context, cookie uint32) error {
	if f.err != nil {
		return f.err
	}
	f.released = append(f.released, cookie)
	return nil
}

func (f *fakeProxy) PerformanceDegraded(context.Context) (string, error) {
	return f.degraded, f.err
}

func (f *fakeProxy) BatteryAware(context.Context) (bool, error) {
	return f.batteryAware, f.err
}

func (f *fakeProxy) SetBatteryAware(_ context.Context, enabled bool) error {
	if f.err != nil {
		return f.err
	}
	f.batteryAware = enabled
	return nil
}

func (f *fakeProxy) Version(context.Context) (string, error) {
	return f.version, f.err
}

// install wires the fake in place of the real bus connection and captures
// UI output with colors off. Everything is restored on test cleanup.
func (f *fakeProxy) install(t *testing.T) *bytes.Buffer {
	t.Helper()

	prevNewProxy := newProxy
	newProxy = func() (ppd.Proxy, func(), error) {
		return f, func() { f.closed = true }, nil
	}

	prevNoColor := color.NoColor
	color.NoColor = true

	var buf bytes.Buffer
	ui.Output = &buf
	t.Cleanup(func() {
		newProxy = prevNewProxy
		ui.Output = os.Stdout
		color.NoColor = prevNoColor
	})
	return &buf
}

// installUnreachable makes every connection attempt fail with a transport
// error, as if the bus or daemon were gone, and captures UI output.
func installUnreachable(t *testing.T, err error) *bytes.Buffer {
	t.Helper()

	prevNewProxy := newProxy
	newProxy = func() (ppd.Proxy, func(), error) {
		return nil, nil, err
	}

	prevNoColor := color.NoColor
	color.NoColor = true

	var buf bytes.Buffer
	ui.Output = &buf
	t.Cleanup(func() {
		newProxy = prevNewProxy
		ui.Output = os.Stdout
		color.NoColor = prevNoColor
	})
	return &buf
}
