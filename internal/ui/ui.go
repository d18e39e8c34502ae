// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// ProfileInfo represents one profile catalog entry for display.
type ProfileInfo struct {
	Name     string
	Driver   string
	Active   bool
	Degraded string
}

// PrintProfileList prints the profile catalog, one line per profile, in
// the order given. The active profile is marked with an asterisk.
func PrintProfileList(profiles []ProfileInfo) {
	if len(profiles) == 0 {
		fmt.Fprintln(Output, "No profiles reported.")
		return
	}

	for _, p := range profiles {
		marker := " "
		name := p.Name
		if p.Active {
			marker = Green("*")
			name = Bold(p.Name)
		}

		line := fmt.Sprintf("%s %s", marker, name)
		if p.Driver != "" {
			line += " " + Dim(fmt.Sprintf("(driver: %s)", p.Driver))
		}
		if p.Degraded != "" {
			line += " " + Yellow(fmt.Sprintf("[degraded: %s]", p.Degraded))
		}
		fmt.Fprintln(Output, line)
	}
}

// ActionInfo represents one daemon action for display.
type ActionInfo struct {
	Name        string
	Description string
	Enabled     bool
}

// PrintActionList prints the daemon's actions, one line per action.
func PrintActionList(actions []ActionInfo) {
	if len(actions) == 0 {
		fmt.Fprintln(Output, "No actions available.")
		return
	}

	for _, a := range actions {
		state := Red("disabled")
		if a.Enabled {
			state = Green("enabled")
		}
		line := fmt.Sprintf("%s %s", Cyan(a.Name), state)
		if a.Description != "" {
			line += " " + Dim(a.Description)
		}
		fmt.Fprintln(Output, line)
	}
}

// HoldInfo represents one active profile hold for display.
type HoldInfo struct {
	ApplicationID string
	Reason        string
	Profile       string
}

// PrintHoldList prints the active profile holds, one line per hold.
func PrintHoldList(holds []HoldInfo) {
	if len(holds) == 0 {
		fmt.Fprintln(Output, "No active profile holds.")
		return
	}

	for _, h := range holds {
		fmt.Fprintf(Output, "%s held by %s %s\n",
			Bold(h.Profile),
			Cyan(h.ApplicationID),
			Dim(fmt.Sprintf("(%s)", h.Reason)),
		)
	}
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}
