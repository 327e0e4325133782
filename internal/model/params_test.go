package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRevenueParams() RevenueParams {
	return RevenueParams{
		SeatFee:             1000,
		AvgSeats:            1,
		UsageMedian:         250,
		UsageSigma:          1,
		RevenuePerUsageUnit: 80,

		CustomerDelayMonths:  3,
		CustomerGrowthMedian: 0.7,
		CustomerGrowthSigma:  1.1,
		CustomerGrowthAccel:  0.05,

		MonthlyChurnMedian: 0.05,
		MonthlyChurnSigma:  1,
	}
}

func validCostParams() CostParams {
	return CostParams{
		HostingInitial:  1500,
		HostingGrowth:   0.15,
		SoftwareInitial: 2000,
		SoftwareGrowth:  0.15,

		AdminMonthly:      1250,
		ConferenceMonthly: 416,

		SalaryPerHead:              20000,
		InitialHeadcount:           5,
		HeadcountGrowthMedian:      1,
		HeadcountGrowthSigma:       0.2,
		HeadcountGrowthAccel:       0.01,
		HeadcountSlowdownThreshold: 10,
		HeadcountSlowdownFactor:    0.8,

		SupportPerCustomerInitial: 400,
		SupportGrowth:             0.5,
		ComputeInitial:            2000,
		ComputeGrowth:             1,
		ComputePerUsageUnit:       5,
	}
}

func TestRevenueParamsValidate(t *testing.T) {
	require.NoError(t, validRevenueParams().Validate())

	cases := []struct {
		name   string
		mutate func(*RevenueParams)
	}{
		{"negative seat fee", func(p *RevenueParams) { p.SeatFee = -1 }},
		{"negative seats", func(p *RevenueParams) { p.AvgSeats = -1 }},
		{"negative usage median", func(p *RevenueParams) { p.UsageMedian = -1 }},
		{"negative usage sigma", func(p *RevenueParams) { p.UsageSigma = -0.1 }},
		{"negative delay", func(p *RevenueParams) { p.CustomerDelayMonths = -1 }},
		{"negative growth", func(p *RevenueParams) { p.CustomerGrowthMedian = -1 }},
		{"negative churn", func(p *RevenueParams) { p.MonthlyChurnMedian = -0.01 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validRevenueParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestCostParamsValidate(t *testing.T) {
	require.NoError(t, validCostParams().Validate())

	cases := []struct {
		name   string
		mutate func(*CostParams)
	}{
		{"negative salary", func(p *CostParams) { p.SalaryPerHead = -1 }},
		{"negative headcount", func(p *CostParams) { p.InitialHeadcount = -1 }},
		{"negative hosting", func(p *CostParams) { p.HostingInitial = -1 }},
		{"slowdown factor above one", func(p *CostParams) { p.HeadcountSlowdownFactor = 1.1 }},
		{"slowdown factor negative", func(p *CostParams) { p.HeadcountSlowdownFactor = -0.1 }},
		{"negative compute rate", func(p *CostParams) { p.ComputePerUsageUnit = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validCostParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestNewRunState(t *testing.T) {
	rev := validRevenueParams()
	cost := validCostParams()

	st := NewRunState(rev, cost)
	assert.Zero(t, st.Customers)
	assert.Equal(t, cost.InitialHeadcount, st.Headcount)
	assert.InDelta(t, rev.CustomerGrowthMedian, st.CustomerGrowth, 1e-9)
	assert.InDelta(t, cost.HeadcountGrowthMedian, st.HeadcountGrowth, 1e-9)
}
