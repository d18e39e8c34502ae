// Package config handles ppdctl path configuration.
//
// ppdctl keeps no configuration file and no state beyond its debug log;
// this package only decides where that log lives.
package config

import (
	"os"
	"path/filepath"
)

// Paths holds the per-user paths used by ppdctl.
type Paths struct {
	Home    string
	Logs    string
	LogFile string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	ppdctlHome := filepath.Join(home, ".ppdctl")
	logsDir := filepath.Join(ppdctlHome, "logs")
	return &Paths{
		Home:    ppdctlHome,
		Logs:    logsDir,
		LogFile: filepath.Join(logsDir, "ppdctl.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
