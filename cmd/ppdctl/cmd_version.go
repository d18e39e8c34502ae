package main

import (
	"context"
	"fmt"

	"github.com/varet/ppd/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "ppdctl version %s (%s)\n", version, commit)

	// The daemon's version is best effort: the client version must print
	// even with no daemon around.
	proxy, cleanup, err := newProxy()
	if err != nil {
		return nil
	}
	defer cleanup()

	daemonVersion, err := proxy.Version(context.Background())
	if err != nil {
		return nil
	}
	fmt.Fprintf(ui.Output, "power-profiles-daemon version %s\n", daemonVersion)
	return nil
}
