package handlers

import (
	"net/http"

	"saas-forecast/internal/api/models"
	"saas-forecast/internal/model"

	"github.com/gin-gonic/gin"
)

var metricDescriptions = map[model.Metric]string{
	model.MetricTotalRevenue:       "Seat plus usage revenue for the month ($)",
	model.MetricSeatRevenue:        "Subscription revenue from seats ($)",
	model.MetricUsageRevenue:       "Usage-based revenue ($)",
	model.MetricCustomers:          "Active customers at month end",
	model.MetricChurn:              "Customers lost during the month",
	model.MetricUsageUnits:         "Simulation-years consumed during the month",
	model.MetricTotalCost:          "Fixed plus variable cost for the month ($)",
	model.MetricFixedCost:          "Hosting, software, admin, conference and salary cost ($)",
	model.MetricVariableCost:       "Compute and support cost ($)",
	model.MetricSalaryCost:         "Headcount times salary per head ($)",
	model.MetricHostingCost:        "Hosting cost with annual step growth ($)",
	model.MetricSoftwareCost:       "Software subscriptions with annual step growth ($)",
	model.MetricAdminCost:          "Flat monthly admin and legal cost ($)",
	model.MetricConferenceCost:     "Flat monthly conference cost ($)",
	model.MetricComputeCost:        "Base compute plus usage-driven compute ($)",
	model.MetricSupportCost:        "Per-customer support cost ($)",
	model.MetricHeadcount:          "Employees at month end",
	model.MetricEarnings:           "Revenue minus cost for the month ($)",
	model.MetricCumulativeEarnings: "Running sum of monthly earnings ($)",
}

// ListMetrics handles GET /api/v1/metrics
func ListMetrics(c *gin.Context) {
	metrics := make([]models.MetricInfo, 0, len(metricDescriptions))
	for _, m := range model.Metrics() {
		metrics = append(metrics, models.MetricInfo{
			Name:        string(m),
			Description: metricDescriptions[m],
		})
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
