package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"saas-forecast/internal/api/models"
	"saas-forecast/internal/config"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario-preset requests.
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a new scenario handler.
func NewScenarioHandler() *ScenarioHandler {
	dir := resolveScenarioDir()
	log.Printf("ScenarioHandler: using scenario directory: %s", dir)
	return &ScenarioHandler{scenarioDir: dir}
}

// resolveScenarioDir locates the preset directory: SCENARIO_DIR if set,
// otherwise examples/scenarios relative to the working directory.
func resolveScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenarioHandler: failed to read scenario directory %s: %v", h.scenarioDir, err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.scenarioDir, entry.Name())
		cfg, err := config.LoadUnchecked(path)
		if err != nil {
			log.Printf("ScenarioHandler: skipping %s: %v", path, err)
			continue
		}

		months := cfg.Simulation.Months
		if months == 0 {
			months = config.Default().Simulation.Months
		}
		trials := cfg.Simulation.Trials
		if trials == 0 {
			trials = config.Default().Simulation.Trials
		}

		scenarios = append(scenarios, models.ScenarioInfo{
			ID:     strings.TrimSuffix(entry.Name(), ".yaml"),
			File:   entry.Name(),
			Months: months,
			Trials: trials,
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
