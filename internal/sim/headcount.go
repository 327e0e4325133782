package sim

import "saas-forecast/internal/model"

// StepHeadcount advances one month of headcount state. Structurally the same
// as StepCustomers but without churn. Once the pre-hire headcount reaches the
// slowdown threshold, the hiring draw uses a reduced growth rate, modeling
// organizational friction at scale. The growth rate itself still compounds
// unconditionally, delay window included.
func StepHeadcount(s Sampler, st *model.RunState, p model.CostParams, month int) (hired int) {
	if month >= p.HeadcountDelayMonths {
		growth := st.HeadcountGrowth
		if st.Headcount >= p.HeadcountSlowdownThreshold {
			growth *= p.HeadcountSlowdownFactor
		}
		hired = s.LognormalCount(growth, p.HeadcountGrowthSigma)
	}
	st.Headcount += hired

	st.HeadcountGrowth *= 1 + p.HeadcountGrowthAccel
	return hired
}
