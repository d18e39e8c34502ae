package ppd

import (
	"github.com/godbus/dbus/v5"
)

// Profile describes one entry of the daemon's profile catalog.
//
// Driver is filled by older daemons; newer daemons report PlatformDriver
// and CPUDriver separately. DriverName folds the three into one display
// string.
type Profile struct {
	Name           string `yaml:"profile"`
	Driver         string `yaml:"driver,omitempty"`
	PlatformDriver string `yaml:"platform-driver,omitempty"`
	CPUDriver      string `yaml:"cpu-driver,omitempty"`
}

// DriverName returns the driver description best suited for display.
func (p Profile) DriverName() string {
	switch {
	case p.Driver != "":
		return p.Driver
	case p.PlatformDriver != "" && p.CPUDriver != "":
		return p.PlatformDriver + "+" + p.CPUDriver
	case p.PlatformDriver != "":
		return p.PlatformDriver
	default:
		return p.CPUDriver
	}
}

// Action is a toggleable power-management behavior offered by the daemon,
// independent of the active profile.
type Action struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Enabled     bool   `yaml:"enabled"`
}

// Hold records a request by some process to pin a profile. The daemon
// drops a hold when it is released explicitly or when the holder's bus
// connection goes away.
type Hold struct {
	ApplicationID string `yaml:"application-id"`
	Reason        string `yaml:"reason"`
	Profile       string `yaml:"profile"`
}

// Well-known profile names. The daemon may define others; these are the
// ones every daemon ships.
const (
	ProfilePowerSaver  = "power-saver"
	ProfileBalanced    = "balanced"
	ProfilePerformance = "performance"
)

func stringField(dict map[string]dbus.Variant, key string) string {
	s, _ := dict[key].Value().(string)
	return s
}

func boolField(dict map[string]dbus.Variant, key string) bool {
	b, _ := dict[key].Value().(bool)
	return b
}

func profileFromDict(dict map[string]dbus.Variant) Profile {
	return Profile{
		Name:           stringField(dict, "Profile"),
		Driver:         stringField(dict, "Driver"),
		PlatformDriver: stringField(dict, "PlatformDriver"),
		CPUDriver:      stringField(dict, "CpuDriver"),
	}
}

func actionFromDict(dict map[string]dbus.Variant) Action {
	return Action{
		Name:        stringField(dict, "Name"),
		Description: stringField(dict, "Description"),
		Enabled:     boolField(dict, "Enabled"),
	}
}

func holdFromDict(dict map[string]dbus.Variant) Hold {
	return Hold{
		ApplicationID: stringField(dict, "ApplicationId"),
		Reason:        stringField(dict, "Reason"),
		Profile:       stringField(dict, "Profile"),
	}
}

func decodeProfiles(raw []map[string]dbus.Variant) []Profile {
	profiles := make([]Profile, 0, len(raw))
	for _, dict := range raw {
		profiles = append(profiles, profileFromDict(dict))
	}
	return profiles
}

func decodeActions(raw []map[string]dbus.Variant) []Action {
	actions := make([]Action, 0, len(raw))
	for _, dict := range raw {
		actions = append(actions, actionFromDict(dict))
	}
	return actions
}

func decodeHolds(raw []map[string]dbus.Variant) []Hold {
	holds := make([]Hold, 0, len(raw))
	for _, dict := range raw {
		holds = append(holds, holdFromDict(dict))
	}
	return holds
}
