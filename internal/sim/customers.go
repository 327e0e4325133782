package sim

import "saas-forecast/internal/model"

// StepCustomers advances one month of customer state: acquisition (after the
// delay window), churn on the post-acquisition population, and growth-rate
// compounding. The growth rate compounds every month, including during the
// delay window, so delayed cohorts catch up once acquisition starts.
// The customer count never goes negative.
func StepCustomers(s Sampler, st *model.RunState, p model.RevenueParams, month int) (added, churned int) {
	if month >= p.CustomerDelayMonths {
		added = s.LognormalCount(st.CustomerGrowth, p.CustomerGrowthSigma)
	}
	st.Customers += added

	churned = s.ChurnCount(st.Customers, p.MonthlyChurnMedian, p.MonthlyChurnSigma)
	st.Customers -= churned
	if st.Customers < 0 {
		st.Customers = 0
	}

	st.CustomerGrowth *= 1 + p.CustomerGrowthAccel
	return added, churned
}
