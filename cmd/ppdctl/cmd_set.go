package main

import (
	"context"
)

type SetCmd struct {
	Profile string `arg:"" predictor:"profile" help:"Name of the profile to activate."`
}

func (c *SetCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	// The name goes out verbatim; the daemon validates it and its
	// rejection is relayed as-is. Silent on success.
	logger.Debug("setting active profile", "profile", c.Profile)
	return proxy.SetActiveProfile(context.Background(), c.Profile)
}
