package sim

import "saas-forecast/internal/model"

// RevenueBreakdown captures one month of revenue, split by stream.
// UsageUnits is exposed because compute cost scales with it.
type RevenueBreakdown struct {
	Total      float64
	Seat       float64
	Usage      float64
	UsageUnits float64
}

// MonthRevenue computes this month's revenue from the post-churn customer
// count. Usage is drawn once per customer rather than in aggregate: with a
// small customer base the heavy tail of individual usage dominates the month,
// and an aggregate draw would smooth that away.
func MonthRevenue(s Sampler, p model.RevenueParams, customers int) RevenueBreakdown {
	out := RevenueBreakdown{
		Seat: float64(customers) * float64(p.AvgSeats) * p.SeatFee,
	}

	for i := 0; i < customers; i++ {
		out.UsageUnits += s.LognormalValue(p.UsageMedian, p.UsageSigma)
	}
	out.Usage = out.UsageUnits * p.RevenuePerUsageUnit

	out.Total = out.Seat + out.Usage
	return out
}
