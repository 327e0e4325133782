package sim

import (
	"math"

	"saas-forecast/internal/model"
)

// CostBreakdown captures one month of cost, split by line item.
type CostBreakdown struct {
	Total    float64
	Fixed    float64
	Variable float64

	Salary     float64
	Hosting    float64
	Software   float64
	Admin      float64
	Conference float64
	Compute    float64
	Support    float64
}

// MonthCosts computes this month's cost breakdown. Purely deterministic: all
// randomness is already resolved in the customer count, usage units, and
// headcount passed in. Annual growth is a step function of completed
// 12-month periods, not monthly compounding.
func MonthCosts(p model.CostParams, month, customers int, usageUnits float64, headcount int) CostBreakdown {
	yearFactor := float64(month / 12)

	out := CostBreakdown{
		Hosting:    p.HostingInitial * math.Pow(1+p.HostingGrowth, yearFactor),
		Software:   p.SoftwareInitial * math.Pow(1+p.SoftwareGrowth, yearFactor),
		Admin:      p.AdminMonthly,
		Conference: p.ConferenceMonthly,
		Salary:     float64(headcount) * p.SalaryPerHead,
	}

	out.Compute = p.ComputeInitial*math.Pow(1+p.ComputeGrowth, yearFactor) + usageUnits*p.ComputePerUsageUnit
	out.Support = p.SupportPerCustomerInitial * math.Pow(1+p.SupportGrowth, yearFactor) * float64(customers)

	out.Fixed = out.Hosting + out.Software + out.Admin + out.Conference + out.Salary
	out.Variable = out.Compute + out.Support
	out.Total = out.Fixed + out.Variable
	return out
}
