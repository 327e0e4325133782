package models

import (
	"saas-forecast/internal/analysis"
	"saas-forecast/internal/model"
)

// ForecastResponse represents the response from a forecast run.
type ForecastResponse struct {
	ID      string           `json:"id"`
	Status  string           `json:"status"`
	Summary analysis.Summary `json:"summary"`
	Bands   []analysis.Bands `json:"bands"`
	Runs    []model.Run      `json:"runs,omitempty"`
}

// RunsResponse carries the per-trial trajectories of a cached forecast.
type RunsResponse struct {
	ID     string      `json:"id"`
	Months int         `json:"months"`
	Trials int         `json:"trials"`
	Runs   []model.Run `json:"runs"`
}

// BandsResponse carries one metric's percentile bands for a cached forecast.
type BandsResponse struct {
	ID    string         `json:"id"`
	Bands analysis.Bands `json:"bands"`
}

// ScenarioInfo represents information about a scenario preset.
type ScenarioInfo struct {
	ID      string `json:"id"`
	File    string `json:"file"`
	Months  int    `json:"months"`
	Trials  int    `json:"trials"`
}

// MetricInfo describes one extractable metric.
type MetricInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
