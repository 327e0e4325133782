package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"saas-forecast/internal/analysis"
	"saas-forecast/internal/api/models"
	"saas-forecast/internal/config"
	"saas-forecast/internal/model"
	"saas-forecast/internal/sim"
	"saas-forecast/internal/store"

	"github.com/gin-gonic/gin"
)

// defaultBandMetrics are the bands returned when a request does not choose
// its own.
var defaultBandMetrics = []model.Metric{
	model.MetricTotalRevenue,
	model.MetricTotalCost,
	model.MetricCustomers,
	model.MetricHeadcount,
	model.MetricCumulativeEarnings,
}

// ForecastHandler handles forecast-related requests.
type ForecastHandler struct {
	scenarioDir string
	results     *store.ResultCache
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(results *store.ResultCache) *ForecastHandler {
	return &ForecastHandler{
		scenarioDir: resolveScenarioDir(),
		results:     results,
	}
}

// RunForecast handles POST /api/v1/forecast
func (h *ForecastHandler) RunForecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.buildConfig(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine, err := sim.New(cfg.Revenue.ToModelParams(), cfg.Costs.ToModelParams())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	batch, err := engine.RunBatch(cfg.Simulation.Months, cfg.Simulation.Trials, sim.BatchOptions{
		Seed:    cfg.Simulation.Seed,
		Workers: cfg.Simulation.Workers,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "FORECAST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	bands, err := bandsForMetrics(batch, req.Options.Metrics)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_METRIC",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.ForecastResponse{
		ID:      h.results.Put(batch),
		Status:  "completed",
		Summary: analysis.Summarize(batch),
		Bands:   bands,
	}
	if req.Options.IncludeRuns {
		response.Runs = batch.Runs
	}

	c.JSON(http.StatusOK, response)
}

// GetRuns handles GET /api/v1/forecast/:id/runs
func (h *ForecastHandler) GetRuns(c *gin.Context) {
	id := c.Param("id")
	batch, ok := h.results.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("no forecast with id %q (results expire; re-run the forecast)", id),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.RunsResponse{
		ID:     id,
		Months: batch.Months,
		Trials: len(batch.Runs),
		Runs:   batch.Runs,
	})
}

// GetBands handles GET /api/v1/forecast/:id/bands?metric=total_revenue
func (h *ForecastHandler) GetBands(c *gin.Context) {
	id := c.Param("id")
	metric := c.Query("metric")
	if metric == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_PARAM",
				Message: "metric query parameter is required",
			},
		})
		return
	}

	batch, ok := h.results.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("no forecast with id %q (results expire; re-run the forecast)", id),
			},
		})
		return
	}

	bands, err := analysis.MetricBands(batch, model.Metric(metric))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_METRIC",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.BandsResponse{ID: id, Bands: bands})
}

// buildConfig layers defaults, the named scenario preset (if any), and the
// request's inline overrides, then validates the result.
func (h *ForecastHandler) buildConfig(req models.ForecastRequest) (*config.Config, error) {
	cfg := config.Default()

	if req.Scenario != "" {
		// Scenario is just the preset name; files always live in the
		// scenario directory.
		name := filepath.Base(req.Scenario)
		path := filepath.Join(h.scenarioDir, name+".yaml")
		preset, err := config.LoadUnchecked(path)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", req.Scenario, err)
		}
		cfg = config.Merge(cfg, *preset)
	}

	cfg = config.Merge(cfg, req.Config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func bandsForMetrics(batch *model.Batch, names []string) ([]analysis.Bands, error) {
	metrics := defaultBandMetrics
	if len(names) > 0 {
		metrics = make([]model.Metric, len(names))
		for i, n := range names {
			metrics[i] = model.Metric(n)
		}
	}

	out := make([]analysis.Bands, 0, len(metrics))
	for _, m := range metrics {
		b, err := analysis.MetricBands(batch, m)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
