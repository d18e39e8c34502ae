package main

import (
	"context"
	"fmt"

	"github.com/varet/ppd/internal/ui"
)

type QueryBatteryAwareCmd struct{}

func (c *QueryBatteryAwareCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	enabled, err := proxy.BatteryAware(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Output, "Dynamic changes from charger and battery events: %v\n", enabled)
	return nil
}
