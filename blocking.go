package ppd

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// blockingProxy is the blocking implementation: calls occupy the calling
// goroutine until the reply arrives or the bus call times out. The context
// argument is accepted for interface compatibility and ignored; callers
// that need cancellation use NewProxy instead.
type blockingProxy struct {
	obj dbus.BusObject
}

// NewBlockingProxy returns a Proxy bound to obj using the blocking call
// discipline.
func NewBlockingProxy(obj dbus.BusObject) Proxy {
	return &blockingProxy{obj: obj}
}

func (p *blockingProxy) getProperty(name string, dst interface{}) error {
	err := p.obj.StoreProperty(InterfaceName+"."+name, dst)
	return wrapCallError("get "+name, err)
}

func (p *blockingProxy) setProperty(name string, value interface{}) error {
	err := p.obj.SetProperty(InterfaceName+"."+name, dbus.MakeVariant(value))
	return wrapCallError("set "+name, err)
}

func (p *blockingProxy) ActiveProfile(_ context.Context) (string, error) {
	var profile string
	err := p.getProperty("ActiveProfile", &profile)
	return profile, err
}

func (p *blockingProxy) SetActiveProfile(_ context.Context, profile string) error {
	return p.setProperty("ActiveProfile", profile)
}

func (p *blockingProxy) Profiles(_ context.Context) ([]Profile, error) {
	var raw []map[string]dbus.Variant
	if err := p.getProperty("Profiles", &raw); err != nil {
		return nil, err
	}
	return decodeProfiles(raw), nil
}

func (p *blockingProxy) Actions(_ context.Context) ([]string, error) {
	var actions []string
	err := p.getProperty("Actions", &actions)
	return actions, err
}

func (p *blockingProxy) ActionsInfo(_ context.Context) ([]Action, error) {
	var raw []map[string]dbus.Variant
	if err := p.getProperty("ActionsInfo", &raw); err != nil {
		return nil, err
	}
	return decodeActions(raw), nil
}

func (p *blockingProxy) SetActionEnabled(_ context.Context, action string, enabled bool) error {
	err := p.obj.Call(InterfaceName+".SetActionEnabled", 0, action, enabled).Store()
	return wrapCallError("SetActionEnabled", err)
}

func (p *blockingProxy) ActiveProfileHolds(_ context.Context) ([]Hold, error) {
	var raw []map[string]dbus.Variant
	if err := p.getProperty("ActiveProfileHolds", &raw); err != nil {
		return nil, err
	}
	return decodeHolds(raw), nil
}

func (p *blockingProxy) HoldProfile(_ context.Context, profile, reason, appID string) (uint32, error) {
	var cookie uint32
	err := p.obj.Call(InterfaceName+".HoldProfile", 0, profile, reason, appID).Store(&cookie)
	return cookie, wrapCallError("HoldProfile", err)
}

func (p *blockingProxy) ReleaseProfile(_ context.Context, cookie uint32) error {
	err := p.obj.Call(InterfaceName+".ReleaseProfile", 0, cookie).Store()
	return wrapCallError("ReleaseProfile", err)
}

func (p *blockingProxy) PerformanceDegraded(_ context.Context) (string, error) {
	var reason string
	err := p.getProperty("PerformanceDegraded", &reason)
	return reason, err
}

func (p *blockingProxy) BatteryAware(_ context.Context) (bool, error) {
	var enabled bool
	err := p.getProperty("BatteryAware", &enabled)
	return enabled, err
}

func (p *blockingProxy) SetBatteryAware(_ context.Context, enabled bool) error {
	return p.setProperty("BatteryAware", enabled)
}

func (p *blockingProxy) Version(_ context.Context) (string, error) {
	var version string
	err := p.getProperty("Version", &version)
	return version, err
}
