package main

import (
	"fmt"
	"log/slog"

	"github.com/varet/ppd"
	"github.com/varet/ppd/internal/config"
	"github.com/varet/ppd/internal/logging"
	"github.com/varet/ppd/internal/ui"
	"gopkg.in/yaml.v3"
)

// logger receives per-call debug traces. Off by default; --debug swaps in
// a rotating file logger.
var logger = logging.Discard()

// newProxy dials the system bus and returns the daemon proxy together
// with a cleanup that closes the connection. Replaceable for testing.
var newProxy = func() (ppd.Proxy, func(), error) {
	logger.Debug("connecting to system bus")
	conn, err := ppd.Connect()
	if err != nil {
		return nil, nil, err
	}
	return conn.Proxy(), func() { conn.Close() }, nil
}

// newConn dials the system bus for commands that need the raw connection
// (signal watching). Replaceable for testing.
var newConn = ppd.Connect

func enableDebugLogging() {
	paths, err := config.GetPaths()
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("debug logging disabled: %v", err))
		return
	}
	if err := paths.EnsureDirectories(); err != nil {
		ui.PrintWarning(fmt.Sprintf("debug logging disabled: %v", err))
		return
	}
	logger = logging.NewLogger(logging.NewRotatingWriter(logging.DefaultConfig(paths.LogFile)))
	logger.Debug("ppdctl start", slog.String("version", version))
}

// renderYAML writes v to the UI output as a YAML document.
func renderYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	fmt.Fprint(ui.Output, string(data))
	return nil
}

// exactlyOne reports whether exactly one of the enable/disable pair was
// given, returning the matching usage error otherwise.
func exactlyOne(enable, disable bool) error {
	if enable && disable {
		return errEnableDisableConflict()
	}
	if !enable && !disable {
		return errEnableDisableRequired()
	}
	return nil
}
