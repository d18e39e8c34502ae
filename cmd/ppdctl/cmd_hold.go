package main

import (
	"context"
	"fmt"

	"github.com/varet/ppd/internal/ui"
)

type HoldCmd struct {
	AppID   string `arg:"" name:"app-id" help:"Application ID requesting the hold."`
	Reason  string `arg:"" help:"Reason for holding the profile."`
	Profile string `arg:"" predictor:"profile" help:"Profile to hold."`
}

func (c *HoldCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	cookie, err := proxy.HoldProfile(context.Background(), c.Profile, c.Reason, c.AppID)
	if err != nil {
		return err
	}
	logger.Debug("profile held", "profile", c.Profile, "cookie", cookie)

	fmt.Fprintln(ui.Output, cookie)
	return nil
}
