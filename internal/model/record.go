package model

import "fmt"

// MonthlyRecord is one row of per-month output.
// This is the primary artifact for "what happened" in a projection run.
// Rows are append-only; a row is never revised after the month completes.
type MonthlyRecord struct {
	Month int `json:"month"`

	TotalRevenue float64 `json:"total_revenue"`
	SeatRevenue  float64 `json:"seat_revenue"`
	UsageRevenue float64 `json:"usage_revenue"`

	Customers  int     `json:"customers"`
	Churn      int     `json:"churn"`
	UsageUnits float64 `json:"usage_units"`

	TotalCost    float64 `json:"total_cost"`
	FixedCost    float64 `json:"fixed_cost"`
	VariableCost float64 `json:"variable_cost"`

	SalaryCost     float64 `json:"salary_cost"`
	HostingCost    float64 `json:"hosting_cost"`
	SoftwareCost   float64 `json:"software_cost"`
	AdminCost      float64 `json:"admin_cost"`
	ConferenceCost float64 `json:"conference_cost"`
	ComputeCost    float64 `json:"compute_cost"`
	SupportCost    float64 `json:"support_cost"`

	Headcount int `json:"headcount"`
}

// Run is one full trajectory: one MonthlyRecord per month, in order.
type Run []MonthlyRecord

// Batch holds every trial of a Monte Carlo projection. Read-only once built;
// aggregation and export consume it without copying.
type Batch struct {
	Months int
	Runs   []Run
}

// Metric names a per-month series that can be pulled out of a batch.
// Keep these values stable; they appear in CSV headers and API requests.
type Metric string

const (
	MetricTotalRevenue Metric = "total_revenue"
	MetricSeatRevenue  Metric = "seat_revenue"
	MetricUsageRevenue Metric = "usage_revenue"

	MetricCustomers  Metric = "customers"
	MetricChurn      Metric = "churn"
	MetricUsageUnits Metric = "usage_units"

	MetricTotalCost    Metric = "total_cost"
	MetricFixedCost    Metric = "fixed_cost"
	MetricVariableCost Metric = "variable_cost"

	MetricSalaryCost     Metric = "salary_cost"
	MetricHostingCost    Metric = "hosting_cost"
	MetricSoftwareCost   Metric = "software_cost"
	MetricAdminCost      Metric = "admin_cost"
	MetricConferenceCost Metric = "conference_cost"
	MetricComputeCost    Metric = "compute_cost"
	MetricSupportCost    Metric = "support_cost"

	MetricHeadcount Metric = "headcount"

	// Derived from revenue and cost, not stored on the record.
	MetricEarnings           Metric = "earnings"
	MetricCumulativeEarnings Metric = "cumulative_earnings"
)

// Metrics lists every extractable metric in report order.
func Metrics() []Metric {
	return []Metric{
		MetricTotalRevenue, MetricSeatRevenue, MetricUsageRevenue,
		MetricCustomers, MetricChurn, MetricUsageUnits,
		MetricTotalCost, MetricFixedCost, MetricVariableCost,
		MetricSalaryCost, MetricHostingCost, MetricSoftwareCost,
		MetricAdminCost, MetricConferenceCost, MetricComputeCost, MetricSupportCost,
		MetricHeadcount,
		MetricEarnings, MetricCumulativeEarnings,
	}
}

func metricValue(r MonthlyRecord, m Metric) (float64, bool) {
	switch m {
	case MetricTotalRevenue:
		return r.TotalRevenue, true
	case MetricSeatRevenue:
		return r.SeatRevenue, true
	case MetricUsageRevenue:
		return r.UsageRevenue, true
	case MetricCustomers:
		return float64(r.Customers), true
	case MetricChurn:
		return float64(r.Churn), true
	case MetricUsageUnits:
		return r.UsageUnits, true
	case MetricTotalCost:
		return r.TotalCost, true
	case MetricFixedCost:
		return r.FixedCost, true
	case MetricVariableCost:
		return r.VariableCost, true
	case MetricSalaryCost:
		return r.SalaryCost, true
	case MetricHostingCost:
		return r.HostingCost, true
	case MetricSoftwareCost:
		return r.SoftwareCost, true
	case MetricAdminCost:
		return r.AdminCost, true
	case MetricConferenceCost:
		return r.ConferenceCost, true
	case MetricComputeCost:
		return r.ComputeCost, true
	case MetricSupportCost:
		return r.SupportCost, true
	case MetricHeadcount:
		return float64(r.Headcount), true
	case MetricEarnings:
		return r.TotalRevenue - r.TotalCost, true
	default:
		return 0, false
	}
}

// Series builds the [trial][month] table for one metric.
// MetricCumulativeEarnings is the running sum of earnings within each run.
func (b *Batch) Series(m Metric) ([][]float64, error) {
	out := make([][]float64, len(b.Runs))
	for i, run := range b.Runs {
		row := make([]float64, len(run))
		if m == MetricCumulativeEarnings {
			cum := 0.0
			for j, rec := range run {
				cum += rec.TotalRevenue - rec.TotalCost
				row[j] = cum
			}
		} else {
			for j, rec := range run {
				v, ok := metricValue(rec, m)
				if !ok {
					return nil, fmt.Errorf("unknown metric %q", m)
				}
				row[j] = v
			}
		}
		out[i] = row
	}
	return out, nil
}
