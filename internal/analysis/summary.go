package analysis

import (
	"saas-forecast/internal/model"
)

// Summary is the headline statistics of a completed batch, for reporting.
// Ratios are fractions, not percentages. Per-employee figures are medians of
// per-run ratios; revenue per customer is the ratio of final-month medians.
type Summary struct {
	Trials int `json:"trials"`
	Months int `json:"months"`

	// MedianBreakEvenMonth is the median (across trials) of the first month
	// index with positive cumulative earnings; a trial that never breaks even
	// counts as the full horizon.
	MedianBreakEvenMonth   float64 `json:"median_break_even_month"`
	MedianProfitableMonths float64 `json:"median_profitable_months"`

	FinalMonthMedianRevenue   float64 `json:"final_month_median_revenue"`
	FinalMonthMedianCustomers float64 `json:"final_month_median_customers"`
	FinalRevenuePerCustomer   float64 `json:"final_revenue_per_customer"`

	FinalMonthMedianCost      float64 `json:"final_month_median_cost"`
	FinalMonthMedianHeadcount float64 `json:"final_month_median_headcount"`
	FinalMonthMedianEarnings  float64 `json:"final_month_median_earnings"`

	MedianFinalCumulativeEarnings float64 `json:"median_final_cumulative_earnings"`
	MedianMaxDrawdown             float64 `json:"median_max_drawdown"`

	FinalRevenuePerEmployee  float64 `json:"final_revenue_per_employee"`
	FinalEarningsPerEmployee float64 `json:"final_earnings_per_employee"`
	FinalCostPerEmployee     float64 `json:"final_cost_per_employee"`

	FinalSalaryShareOfCost float64 `json:"final_salary_share_of_cost"`
	CostGrowthMultiple     float64 `json:"cost_growth_multiple"`
}

// Summarize derives the headline statistics from a completed batch.
// Pure function of the batch; safe to call repeatedly.
func Summarize(batch *model.Batch) Summary {
	if batch == nil {
		return Summary{}
	}
	s := Summary{Months: batch.Months}
	if len(batch.Runs) == 0 {
		return s
	}
	n := len(batch.Runs)
	s.Trials = n

	breakEven := make([]float64, 0, n)
	profitable := make([]float64, 0, n)
	finalRevenue := make([]float64, 0, n)
	finalCustomers := make([]float64, 0, n)
	finalCost := make([]float64, 0, n)
	finalHeadcount := make([]float64, 0, n)
	finalEarnings := make([]float64, 0, n)
	finalCumulative := make([]float64, 0, n)
	maxDrawdown := make([]float64, 0, n)
	revenuePerEmployee := make([]float64, 0, n)
	earningsPerEmployee := make([]float64, 0, n)
	costPerEmployee := make([]float64, 0, n)
	salaryShare := make([]float64, 0, n)
	costMultiple := make([]float64, 0, n)

	for _, run := range batch.Runs {
		if len(run) == 0 {
			continue
		}

		cum := 0.0
		minCum := 0.0
		be := batch.Months
		broke := false
		positive := 0
		for _, rec := range run {
			earn := rec.TotalRevenue - rec.TotalCost
			cum += earn
			if cum < minCum {
				minCum = cum
			}
			if !broke && cum > 0 {
				be = rec.Month
				broke = true
			}
			if earn > 0 {
				positive++
			}
		}

		last := run[len(run)-1]
		first := run[0]
		heads := float64(last.Headcount)
		if heads < 1 {
			heads = 1
		}
		lastEarn := last.TotalRevenue - last.TotalCost

		breakEven = append(breakEven, float64(be))
		profitable = append(profitable, float64(positive))
		finalRevenue = append(finalRevenue, last.TotalRevenue)
		finalCustomers = append(finalCustomers, float64(last.Customers))
		finalCost = append(finalCost, last.TotalCost)
		finalHeadcount = append(finalHeadcount, float64(last.Headcount))
		finalEarnings = append(finalEarnings, lastEarn)
		finalCumulative = append(finalCumulative, cum)
		maxDrawdown = append(maxDrawdown, minCum)
		revenuePerEmployee = append(revenuePerEmployee, last.TotalRevenue/heads)
		earningsPerEmployee = append(earningsPerEmployee, lastEarn/heads)
		costPerEmployee = append(costPerEmployee, last.TotalCost/heads)
		if last.TotalCost > 0 {
			salaryShare = append(salaryShare, last.SalaryCost/last.TotalCost)
		}
		if first.TotalCost > 0 {
			costMultiple = append(costMultiple, last.TotalCost/first.TotalCost)
		}
	}

	s.MedianBreakEvenMonth = medianOf(breakEven)
	s.MedianProfitableMonths = medianOf(profitable)
	s.FinalMonthMedianRevenue = medianOf(finalRevenue)
	s.FinalMonthMedianCustomers = medianOf(finalCustomers)
	s.FinalMonthMedianCost = medianOf(finalCost)
	s.FinalMonthMedianHeadcount = medianOf(finalHeadcount)
	s.FinalMonthMedianEarnings = medianOf(finalEarnings)
	s.MedianFinalCumulativeEarnings = medianOf(finalCumulative)
	s.MedianMaxDrawdown = medianOf(maxDrawdown)
	s.FinalRevenuePerEmployee = medianOf(revenuePerEmployee)
	s.FinalEarningsPerEmployee = medianOf(earningsPerEmployee)
	s.FinalCostPerEmployee = medianOf(costPerEmployee)
	s.FinalSalaryShareOfCost = medianOf(salaryShare)
	s.CostGrowthMultiple = medianOf(costMultiple)

	custs := s.FinalMonthMedianCustomers
	if custs < 1 {
		custs = 1
	}
	s.FinalRevenuePerCustomer = s.FinalMonthMedianRevenue / custs

	return s
}
