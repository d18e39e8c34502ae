package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/varet/ppd"
)

type LaunchCmd struct {
	Profile string   `short:"p" default:"performance" predictor:"profile" help:"Profile to hold while the command runs."`
	Reason  string   `short:"r" default:"Launched by ppdctl" help:"Reason recorded with the hold."`
	AppID   string   `short:"i" name:"appid" help:"Application ID recorded with the hold (defaults to the command name)."`
	Command []string `arg:"" passthrough:"" help:"Command to run."`
}

func (c *LaunchCmd) Run() error {
	appID := c.AppID
	if appID == "" {
		appID = filepath.Base(c.Command[0])
	}

	proxy, cleanup, err := newProxy()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	cookie, err := proxy.HoldProfile(ctx, c.Profile, c.Reason, appID)
	if err != nil {
		return err
	}
	logger.Debug("holding profile for child", "profile", c.Profile, "cookie", cookie, "command", c.Command[0])

	cmd := exec.Command(c.Command[0], c.Command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	// The hold also dies with our bus connection, but release explicitly
	// so the daemon logs a clean hand-back.
	releaseErr := proxy.ReleaseProfile(ctx, cookie)

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return errChildExit(exitErr.ExitCode())
		}
		return fmt.Errorf("launch %s: %w", c.Command[0], runErr)
	}

	// A transport failure here means the connection (and with it the
	// hold) is already gone; only a daemon rejection is worth reporting.
	var transport *ppd.TransportError
	if releaseErr != nil && !errors.As(releaseErr, &transport) {
		return releaseErr
	}
	return nil
}
