package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/varet/ppd"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "unknown"
)

type CLI struct {
	Debug bool `help:"Write debug traces to ~/.ppdctl/logs/ppdctl.log."`

	List                  ListCmd                  `cmd:"" default:"withargs" help:"List available power profiles"`
	Get                   GetCmd                   `cmd:"" help:"Print the currently active profile"`
	Set                   SetCmd                   `cmd:"" help:"Set the active power profile"`
	Hold                  HoldCmd                  `cmd:"" help:"Hold a profile and print the cookie"`
	Release               ReleaseCmd               `cmd:"" help:"Release a profile hold by cookie"`
	ListHolds             ListHoldsCmd             `cmd:"" name:"list-holds" help:"List active profile holds"`
	ListActions           ListActionsCmd           `cmd:"" name:"list-actions" help:"List power-related actions"`
	ConfigureAction       ConfigureActionCmd       `cmd:"" name:"configure-action" help:"Enable or disable an action"`
	ConfigureBatteryAware ConfigureBatteryAwareCmd `cmd:"" name:"configure-battery-aware" help:"Enable or disable battery-aware behavior"`
	QueryBatteryAware     QueryBatteryAwareCmd     `cmd:"" name:"query-battery-aware" help:"Show whether battery-aware behavior is enabled"`
	Launch                LaunchCmd                `cmd:"" help:"Run a command while holding a profile"`
	Watch                 WatchCmd                 `cmd:"" help:"Print the active profile and follow changes"`
	Version               VersionCmd               `cmd:"" help:"Show client and daemon versions"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("ppdctl"),
		kong.Description("Query and set power profiles through the Power Profiles Daemon"),
		kong.UsageOnError(),
	)
	kongplete.Complete(parser,
		kongplete.WithPredictor("profile", newProfilePredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if cli.Debug {
		enableDebugLogging()
	}

	if err := ctx.Run(); err != nil {
		exitWith(err)
	}
}

// exitWith maps an error to one of the script-stable exit code classes:
// local failure, daemon rejection, or transport failure.
func exitWith(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(os.Stderr, exitErr.Message)
		}
		os.Exit(exitErr.Code)
	}

	var remote *ppd.RemoteError
	if errors.As(err, &remote) {
		// The daemon's message passes through verbatim.
		fmt.Fprintf(os.Stderr, "Error: %v\n", remote)
		os.Exit(exitDaemonRejected)
	}

	var transport *ppd.TransportError
	if errors.As(err, &transport) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", transport)
		os.Exit(exitTransport)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(exitError)
}
