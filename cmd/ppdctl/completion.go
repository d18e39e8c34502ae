package main

import (
	"context"
	"strings"
	"time"

	"github.com/posener/complete"
)

// newProfilePredictor returns a predictor that completes profile name
// arguments from the daemon's catalog.
func newProfilePredictor() complete.Predictor {
	return &profilePredictor{}
}

type profilePredictor struct{}

// Predict implements complete.Predictor. Completion must never hang or
// error at the prompt, so any failure yields no suggestions.
func (p *profilePredictor) Predict(args complete.Args) []string {
	proxy, cleanup, err := newProxy()
	if err != nil {
		return nil
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	profiles, err := proxy.Profiles(ctx)
	if err != nil {
		return nil
	}

	results := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		if strings.HasPrefix(profile.Name, args.Last) {
			results = append(results, profile.Name)
		}
	}
	return results
}
