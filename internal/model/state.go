package model

// RunState captures the mutable per-run state carried across months.
// One RunState per trial; never shared between trials.
type RunState struct {
	Customers       int
	CustomerGrowth  float64
	Headcount       int
	HeadcountGrowth float64
}

// NewRunState seeds the state for month 0: no customers yet, the configured
// initial team, and both growth rates at their median defaults.
func NewRunState(rev RevenueParams, cost CostParams) *RunState {
	return &RunState{
		Customers:       0,
		CustomerGrowth:  rev.CustomerGrowthMedian,
		Headcount:       cost.InitialHeadcount,
		HeadcountGrowth: cost.HeadcountGrowthMedian,
	}
}
