package main

import (
	"context"
	"fmt"

	"github.com/varet/ppd/internal/ui"
)

type GetCmd struct{}

func (c *GetCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	active, err := proxy.ActiveProfile(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintln(ui.Output, active)
	return nil
}
