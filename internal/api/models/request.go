package models

import "saas-forecast/internal/config"

// ForecastRequest represents the request body for running a forecast.
// Scenario names a preset under the scenario directory; Config overrides are
// applied on top of the preset (or the defaults when no scenario is named).
type ForecastRequest struct {
	Scenario string          `json:"scenario,omitempty"`
	Config   config.Config   `json:"config,omitempty"`
	Options  ForecastOptions `json:"options,omitempty"`
}

// ForecastOptions contains optional forecast parameters.
type ForecastOptions struct {
	// Metrics selects which percentile bands to return. Empty means the
	// headline set (revenue, cost, customers, headcount, cumulative earnings).
	Metrics []string `json:"metrics,omitempty"`

	// IncludeRuns returns every per-trial trajectory. Large; default false.
	IncludeRuns bool `json:"include_runs,omitempty"`
}
