package ppd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

// The error taxonomy is closed: every failure surfaced by this package is
// either a TransportError or a RemoteError. Callers pick them apart with
// errors.As; the distinction matters for reporting (and exit codes), not
// for recovery — neither kind is retried here.

// TransportError reports that the daemon could not be reached or the bus
// exchange itself failed: connection refused, disconnection, timeout,
// malformed reply, daemon not registered on the bus.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports that the daemon was reached and rejected the request.
// Name is the D-Bus error name, Message the daemon's own message, passed
// through verbatim.
type RemoteError struct {
	Name    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Name
}

// dbusInfraErrorPrefix marks error names minted by the bus infrastructure
// rather than by the daemon (ServiceUnknown, NoReply, Disconnected, ...).
// Those count as transport failures: the daemon never saw the request.
const dbusInfraErrorPrefix = "org.freedesktop.DBus.Error."

// wrapCallError classifies an error returned by a bus call into the
// package taxonomy. Classification happens only here, at the proxy
// boundary.
func wrapCallError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		if strings.HasPrefix(dbusErr.Name, dbusInfraErrorPrefix) {
			return &TransportError{Op: op, Err: dbusErr}
		}
		return &RemoteError{Name: dbusErr.Name, Message: dbusErrorMessage(dbusErr)}
	}
	return &TransportError{Op: op, Err: err}
}

func dbusErrorMessage(err dbus.Error) string {
	if len(err.Body) > 0 {
		if msg, ok := err.Body[0].(string); ok {
			return msg
		}
	}
	return ""
}
