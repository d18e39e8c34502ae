package main

import (
	"context"
)

type ReleaseCmd struct {
	Cookie uint32 `arg:"" help:"Cookie returned by a previous hold."`
}

func (c *ReleaseCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	// Silent on success; the daemon's rejection of an unknown cookie is
	// relayed as-is.
	return proxy.ReleaseProfile(context.Background(), c.Cookie)
}
