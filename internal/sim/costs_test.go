package sim

import (
	"testing"

	"saas-forecast/internal/model"

	"github.com/stretchr/testify/assert"
)

func baseCostParams() model.CostParams {
	return model.CostParams{
		HostingInitial:  1500,
		HostingGrowth:   0.15,
		SoftwareInitial: 2000,
		SoftwareGrowth:  0.15,

		AdminMonthly:      1250,
		ConferenceMonthly: 416.67,

		SalaryPerHead: 20000,

		SupportPerCustomerInitial: 400,
		SupportGrowth:             0.5,
		ComputeInitial:            2000,
		ComputeGrowth:             1.0,
		ComputePerUsageUnit:       5,
	}
}

func TestMonthCostsAnnualStep(t *testing.T) {
	p := baseCostParams()

	// Growth steps at each completed year, flat within it.
	for _, m := range []int{0, 5, 11} {
		out := MonthCosts(p, m, 0, 0, 0)
		assert.InDelta(t, 1500.0, out.Hosting, 1e-9, "month %d", m)
	}
	for _, m := range []int{12, 18, 23} {
		out := MonthCosts(p, m, 0, 0, 0)
		assert.InDelta(t, 1500*1.15, out.Hosting, 1e-9, "month %d", m)
	}
	out := MonthCosts(p, 24, 0, 0, 0)
	assert.InDelta(t, 1500*1.15*1.15, out.Hosting, 1e-9)
}

func TestMonthCostsBreakdown(t *testing.T) {
	p := baseCostParams()
	out := MonthCosts(p, 0, 10, 100, 5)

	assert.InDelta(t, 5*20000.0, out.Salary, 1e-9)
	assert.InDelta(t, 1500.0, out.Hosting, 1e-9)
	assert.InDelta(t, 2000.0, out.Software, 1e-9)
	assert.InDelta(t, 1250.0, out.Admin, 1e-9)
	assert.InDelta(t, 416.67, out.Conference, 1e-9)

	// compute = base + usage-driven; support scales with customers.
	assert.InDelta(t, 2000+100*5.0, out.Compute, 1e-9)
	assert.InDelta(t, 400*10.0, out.Support, 1e-9)

	assert.InDelta(t, out.Salary+out.Hosting+out.Software+out.Admin+out.Conference, out.Fixed, 1e-9)
	assert.InDelta(t, out.Compute+out.Support, out.Variable, 1e-9)
	assert.InDelta(t, out.Fixed+out.Variable, out.Total, 1e-9)
}

func TestMonthCostsSupportRateGrowsAnnually(t *testing.T) {
	p := baseCostParams()

	y0 := MonthCosts(p, 0, 1, 0, 0)
	y1 := MonthCosts(p, 12, 1, 0, 0)

	assert.InDelta(t, 400.0, y0.Support, 1e-9)
	assert.InDelta(t, 400*1.5, y1.Support, 1e-9)
}

func TestMonthCostsDeterministic(t *testing.T) {
	p := baseCostParams()
	a := MonthCosts(p, 7, 42, 1234.5, 9)
	b := MonthCosts(p, 7, 42, 1234.5, 9)
	assert.Equal(t, a, b)
}
