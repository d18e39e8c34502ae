package ppd

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// Proxy is a typed handle on the daemon's D-Bus object: one method per
// remote operation, decoded at the boundary. Two implementations exist,
// NewProxy (suspending) and NewBlockingProxy (blocking); they expose
// identical behavior and the same error taxonomy, only the call
// discipline differs.
type Proxy interface {
	// ActiveProfile reads the name of the currently active profile.
	ActiveProfile(ctx context.Context) (string, error)
	// SetActiveProfile switches the active profile. The name is sent
	// verbatim; the daemon validates it and rejects unknown names with a
	// RemoteError.
	SetActiveProfile(ctx context.Context, profile string) error
	// Profiles reads the profile catalog, in the daemon's order.
	Profiles(ctx context.Context) ([]Profile, error)
	// Actions reads the names of the available actions.
	Actions(ctx context.Context) ([]string, error)
	// ActionsInfo reads the available actions with description and state.
	ActionsInfo(ctx context.Context) ([]Action, error)
	// SetActionEnabled toggles a single action.
	SetActionEnabled(ctx context.Context, action string, enabled bool) error
	// ActiveProfileHolds reads the holds currently pinning a profile.
	ActiveProfileHolds(ctx context.Context) ([]Hold, error)
	// HoldProfile pins a profile on behalf of appID and returns the cookie
	// that releases it. The daemon also releases the hold when the
	// holder's bus connection closes.
	HoldProfile(ctx context.Context, profile, reason, appID string) (uint32, error)
	// ReleaseProfile releases a hold by its cookie.
	ReleaseProfile(ctx context.Context, cookie uint32) error
	// PerformanceDegraded reports why performance is degraded, or "" when
	// it is not.
	PerformanceDegraded(ctx context.Context) (string, error)
	// BatteryAware reports whether battery-aware profile switching is on.
	BatteryAware(ctx context.Context) (bool, error)
	// SetBatteryAware toggles battery-aware profile switching.
	SetBatteryAware(ctx context.Context, enabled bool) error
	// Version reads the daemon's version string.
	Version(ctx context.Context) (string, error)
}

// proxy is the suspending implementation: every call goes through
// CallWithContext, so an abandoned context cancels the in-flight call.
type proxy struct {
	obj dbus.BusObject
}

// NewProxy returns a Proxy bound to obj using the suspending call
// discipline.
func NewProxy(obj dbus.BusObject) Proxy {
	return &proxy{obj: obj}
}

func (p *proxy) getProperty(ctx context.Context, name string, dst interface{}) error {
	err := p.obj.CallWithContext(ctx, "org.freedesktop.DBus.Properties.Get", 0, InterfaceName, name).Store(dst)
	return wrapCallError("get "+name, err)
}

func (p *proxy) setProperty(ctx context.Context, name string, value interface{}) error {
	call := p.obj.CallWithContext(ctx, "org.freedesktop.DBus.Properties.Set", 0, InterfaceName, name, dbus.MakeVariant(value))
	return wrapCallError("set "+name, call.Err)
}

func (p *proxy) ActiveProfile(ctx context.Context) (string, error) {
	var profile string
	err := p.getProperty(ctx, "ActiveProfile", &profile)
	return profile, err
}

func (p *proxy) SetActiveProfile(ctx context.Context, profile string) error {
	return p.setProperty(ctx, "ActiveProfile", profile)
}

func (p *proxy) Profiles(ctx context.Context) ([]Profile, error) {
	var raw []map[string]dbus.Variant
	if err := p.getProperty(ctx, "Profiles", &raw); err != nil {
		return nil, err
	}
	return decodeProfiles(raw), nil
}

func (p *proxy) Actions(ctx context.Context) ([]string, error) {
	var actions []string
	err := p.getProperty(ctx, "Actions", &actions)
	return actions, err
}

func (p *proxy) ActionsInfo(ctx context.Context) ([]Action, error) {
	var raw []map[string]dbus.Variant
	if err := p.getProperty(ctx, "ActionsInfo", &raw); err != nil {
		return nil, err
	}
	return decodeActions(raw), nil
}

func (p *proxy) SetActionEnabled(ctx context.Context, action string, enabled bool) error {
	err := p.obj.CallWithContext(ctx, InterfaceName+".SetActionEnabled", 0, action, enabled).Store()
	return wrapCallError("SetActionEnabled", err)
}

func (p *proxy) ActiveProfileHolds(ctx context.Context) ([]Hold, error) {
	var raw []map[string]dbus.Variant
	if err := p.getProperty(ctx, "ActiveProfileHolds", &raw); err != nil {
		return nil, err
	}
	return decodeHolds(raw), nil
}

func (p *proxy) HoldProfile(ctx context.Context, profile, reason, appID string) (uint32, error) {
	var cookie uint32
	err := p.obj.CallWithContext(ctx, InterfaceName+".HoldProfile", 0, profile, reason, appID).Store(&cookie)
	return cookie, wrapCallError("HoldProfile", err)
}

func (p *proxy) ReleaseProfile(ctx context.Context, cookie uint32) error {
	err := p.obj.CallWithContext(ctx, InterfaceName+".ReleaseProfile", 0, cookie).Store()
	return wrapCallError("ReleaseProfile", err)
}

func (p *proxy) PerformanceDegraded(ctx context.Context) (string, error) {
	var reason string
	err := p.getProperty(ctx, "PerformanceDegraded", &reason)
	return reason, err
}

func (p *proxy) BatteryAware(ctx context.Context) (bool, error) {
	var enabled bool
	err := p.getProperty(ctx, "BatteryAware", &enabled)
	return enabled, err
}

func (p *proxy) SetBatteryAware(ctx context.Context, enabled bool) error {
	return p.setProperty(ctx, "BatteryAware", enabled)
}

func (p *proxy) Version(ctx context.Context) (string, error) {
	var version string
	err := p.getProperty(ctx, "Version", &version)
	return version, err
}
