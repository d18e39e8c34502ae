package main

import (
	"context"
)

type ConfigureActionCmd struct {
	Action  string `arg:"" help:"Name of the action to configure."`
	Enable  bool   `help:"Enable the action."`
	Disable bool   `help:"Disable the action."`
}

func (c *ConfigureActionCmd) Run() error {
	if err := exactlyOne(c.Enable, c.Disable); err != nil {
		return err
	}

	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	// Unknown action names are the daemon's to reject.
	return proxy.SetActionEnabled(context.Background(), c.Action, c.Enable)
}
