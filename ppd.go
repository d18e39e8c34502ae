// Package ppd is a client for the Power Profiles Daemon D-Bus interface.
//
// It lets programs read and switch the system power profile, place and
// release profile holds, and toggle power-related actions such as
// battery-aware profile switching. The daemon is the single source of
// truth: nothing is cached client-side, every read is a fresh round-trip
// and every write is confirmed (or rejected) before the call returns.
package ppd

import (
	"github.com/godbus/dbus/v5"
)

// Well-known D-Bus coordinates of the Power Profiles Daemon.
const (
	BusName       = "org.freedesktop.UPower.PowerProfiles"
	InterfaceName = "org.freedesktop.UPower.PowerProfiles"

	ObjectPath dbus.ObjectPath = "/org/freedesktop/UPower/PowerProfiles"
)

// Conn is a connection to the system bus scoped to the daemon's object.
type Conn struct {
	bus *dbus.Conn
}

// Connect establishes a session to the system bus. It does not verify that
// the daemon is registered; an unregistered daemon surfaces as a
// TransportError on the first call.
func Connect() (*Conn, error) {
	bus, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, &TransportError{Op: "connect to system bus", Err: err}
	}
	return &Conn{bus: bus}, nil
}

// Close releases the underlying bus connection. Any profile holds placed
// through this connection are dropped by the daemon when it closes.
func (c *Conn) Close() error {
	return c.bus.Close()
}

// Object returns the bus object the proxies are bound to.
func (c *Conn) Object() dbus.BusObject {
	return c.bus.Object(BusName, ObjectPath)
}

// Proxy returns a proxy using the suspending call discipline: calls park
// the goroutine until the reply arrives and honor context cancellation.
func (c *Conn) Proxy() Proxy {
	return NewProxy(c.Object())
}

// BlockingProxy returns a proxy using the blocking call discipline: calls
// occupy the goroutine until the reply arrives or the bus call times out,
// ignoring the context argument.
func (c *Conn) BlockingProxy() Proxy {
	return NewBlockingProxy(c.Object())
}
