package main

import (
	"context"

	"github.com/varet/ppd"
	"github.com/varet/ppd/internal/ui"
)

type ListCmd struct {
	Format string `help:"Output format." enum:"text,yaml" default:"text"`
}

// listYAML is the machine-readable shape of the catalog.
type listYAML struct {
	Active   string        `yaml:"active"`
	Degraded string        `yaml:"degraded,omitempty"`
	Profiles []ppd.Profile `yaml:"profiles"`
}

func (c *ListCmd) Run() error {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	profiles, err := proxy.Profiles(ctx)
	if err != nil {
		return err
	}
	active, err := proxy.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	degraded, err := proxy.PerformanceDegraded(ctx)
	if err != nil {
		return err
	}
	logger.Debug("profile catalog read", "profiles", len(profiles), "active", active)

	if c.Format == "yaml" {
		return renderYAML(listYAML{Active: active, Degraded: degraded, Profiles: profiles})
	}

	infos := make([]ui.ProfileInfo, 0, len(profiles))
	for _, p := range profiles {
		info := ui.ProfileInfo{
			Name:   p.Name,
			Driver: p.DriverName(),
			Active: p.Name == active,
		}
		// Degradation only ever concerns the performance profile.
		if p.Name == ppd.ProfilePerformance {
			info.Degraded = degraded
		}
		infos = append(infos, info)
	}
	ui.PrintProfileList(infos)
	return nil
}
