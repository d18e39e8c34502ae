package ppd

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const propertiesChangedSignal = "org.freedesktop.DBus.Properties.PropertiesChanged"

// WatchActiveProfile subscribes to profile changes and delivers the new
// active profile name on the returned channel. The channel is closed when
// ctx is done or the bus connection drops; the subscription lives on the
// receiving Conn, so closing the Conn ends the watch too.
func (c *Conn) WatchActiveProfile(ctx context.Context) (<-chan string, error) {
	if err := c.bus.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
		dbus.WithMatchObjectPath(ObjectPath),
	); err != nil {
		return nil, &TransportError{Op: "subscribe to profile changes", Err: err}
	}

	signals := make(chan *dbus.Signal, 16)
	c.bus.Signal(signals)

	out := make(chan string, 1)
	go func() {
		defer close(out)
		defer c.bus.RemoveSignal(signals)
		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-signals:
				if !ok {
					return
				}
				name, ok := activeProfileFromSignal(sig)
				if !ok {
					continue
				}
				select {
				case out <- name:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// activeProfileFromSignal extracts the new ActiveProfile value from a
// PropertiesChanged signal, if the signal carries one.
func activeProfileFromSignal(sig *dbus.Signal) (string, bool) {
	if sig == nil || sig.Name != propertiesChangedSignal || len(sig.Body) < 2 {
		return "", false
	}
	if iface, ok := sig.Body[0].(string); !ok || iface != InterfaceName {
		return "", false
	}
	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return "", false
	}
	variant, ok := changed["ActiveProfile"]
	if !ok {
		return "", false
	}
	name, ok := variant.Value().(string)
	return name, ok
}
