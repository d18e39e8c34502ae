package main

import (
	"context"
)

type ConfigureBatteryAwareCmd struct {
	Enable  bool `help:"Enable battery-aware behavior."`
	Disable bool `help:"Disable battery-aware behavior."`
}

func (c *ConfigureBatteryAwareCmd) Run() error {
	if err := exactlyOne(c.Enable, c.Disable); err != nil {
		return err
	}

	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Debug("configuring battery-aware behavior", "enabled", c.Enable)
	return proxy.SetBatteryAware(context.Background(), c.Enable)
}
