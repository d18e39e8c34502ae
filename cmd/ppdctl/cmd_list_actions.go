package main

import (
	"context"

	"github.com/varet/ppd/internal/ui"
)

type ListActionsCmd struct {
	Format string `help:"Output format." enum:"text,yaml" default:"text"`
}

func (c *ListActionsCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	actions, err := proxy.ActionsInfo(context.Background())
	if err != nil {
		return err
	}

	if c.Format == "yaml" {
		return renderYAML(actions)
	}

	infos := make([]ui.ActionInfo, 0, len(actions))
	for _, a := range actions {
		infos = append(infos, ui.ActionInfo{
			Name:        a.Name,
			Description: a.Description,
			Enabled:     a.Enabled,
		})
	}
	ui.PrintActionList(infos)
	return nil
}
