package main

import (
	"context"

	"github.com/varet/ppd/internal/ui"
)

type ListHoldsCmd struct {
	Format string `help:"Output format." enum:"text,yaml" default:"text"`
}

func (c *ListHoldsCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	holds, err := proxy.ActiveProfileHolds(context.Background())
	if err != nil {
		return err
	}

	if c.Format == "yaml" {
		return renderYAML(holds)
	}

	infos := make([]ui.HoldInfo, 0, len(holds))
	for _, h := range holds {
		infos = append(infos, ui.HoldInfo{
			ApplicationID: h.ApplicationID,
			Reason:        h.Reason,
			Profile:       h.Profile,
		})
	}
	ui.PrintHoldList(infos)
	return nil
}
