package ui

import "github.com/yourloops/basalviz/config"

// saveRateMax persists the pinned rate scale to disk; 0 means auto.
func saveRateMax(rateMax float64) error {
	cfg := config.Load()
	cfg.Chart.RateMax = rateMax
	return config.Save(cfg)
}
