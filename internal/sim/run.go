package sim

import (
	"fmt"
	"math"

	"saas-forecast/internal/model"
)

// Engine runs month-by-month projections for one scenario. Parameters are
// validated once at construction and never mutated afterwards.
type Engine struct {
	Revenue model.RevenueParams
	Cost    model.CostParams
}

func New(rev model.RevenueParams, cost model.CostParams) (*Engine, error) {
	if err := rev.Validate(); err != nil {
		return nil, fmt.Errorf("revenue params invalid: %w", err)
	}
	if err := cost.Validate(); err != nil {
		return nil, fmt.Errorf("cost params invalid: %w", err)
	}
	return &Engine{Revenue: rev, Cost: cost}, nil
}

// RunOnce executes a single trajectory of `months` months, drawing from s.
//
// Each month runs customers -> revenue -> headcount -> costs, in that order.
// Revenue sees the post-churn customer count; costs see the same month's
// post-hire headcount. The ordering is fixed so a seeded sampler reproduces
// the same trajectory bit for bit.
func (e *Engine) RunOnce(s Sampler, months int) (model.Run, error) {
	if s == nil {
		return nil, fmt.Errorf("sampler is nil")
	}
	if months <= 0 {
		return nil, fmt.Errorf("months must be > 0, got %d", months)
	}
	if e.Revenue.CustomerDelayMonths > months {
		return nil, fmt.Errorf("customer delay %d exceeds horizon %d", e.Revenue.CustomerDelayMonths, months)
	}
	if e.Cost.HeadcountDelayMonths > months {
		return nil, fmt.Errorf("headcount delay %d exceeds horizon %d", e.Cost.HeadcountDelayMonths, months)
	}

	st := model.NewRunState(e.Revenue, e.Cost)
	run := make(model.Run, 0, months)

	for m := 0; m < months; m++ {
		_, churned := StepCustomers(s, st, e.Revenue, m)
		rev := MonthRevenue(s, e.Revenue, st.Customers)
		StepHeadcount(s, st, e.Cost, m)
		costs := MonthCosts(e.Cost, m, st.Customers, rev.UsageUnits, st.Headcount)

		rec := model.MonthlyRecord{
			Month: m,

			TotalRevenue: rev.Total,
			SeatRevenue:  rev.Seat,
			UsageRevenue: rev.Usage,

			Customers:  st.Customers,
			Churn:      churned,
			UsageUnits: rev.UsageUnits,

			TotalCost:    costs.Total,
			FixedCost:    costs.Fixed,
			VariableCost: costs.Variable,

			SalaryCost:     costs.Salary,
			HostingCost:    costs.Hosting,
			SoftwareCost:   costs.Software,
			AdminCost:      costs.Admin,
			ConferenceCost: costs.Conference,
			ComputeCost:    costs.Compute,
			SupportCost:    costs.Support,

			Headcount: st.Headcount,
		}

		// Unbounded compounding can escape float64 range under extreme
		// parameters. Fail loudly instead of letting Inf/NaN reach the
		// percentile outputs.
		if !finite(rec.TotalRevenue) || !finite(rec.TotalCost) {
			return nil, fmt.Errorf("month %d: projection exceeded float64 range, check growth parameters", m)
		}

		run = append(run, rec)
	}

	return run, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
