package main

import (
	"context"
	"fmt"

	"github.com/varet/ppd/internal/ui"
)

type WatchCmd struct{}

func (c *WatchCmd) Run() error {
	conn, err := newConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := context.Background()
	proxy := conn.Proxy()

	active, err := proxy.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ui.Output, active)

	changes, err := conn.WatchActiveProfile(ctx)
	if err != nil {
		return err
	}
	// Runs until interrupted or the bus connection drops.
	for name := range changes {
		fmt.Fprintln(ui.Output, name)
	}
	return nil
}
