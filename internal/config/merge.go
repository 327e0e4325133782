package config

// Merge overlays non-zero fields from override onto base. This is used when a
// scenario references a preset file, and when the API applies request
// overrides onto a named scenario.
//
// Note: zero is a meaningful value for several rates (a churn-free scenario,
// say), but overlay semantics treat zero as "not set". Scenarios that need an
// explicit zero should set it in the base file rather than via an override.
func Merge(base, override Config) Config {
	out := base
	out.Simulation = mergeSimulation(base.Simulation, override.Simulation)
	out.Revenue = mergeRevenue(base.Revenue, override.Revenue)
	out.Costs = mergeCosts(base.Costs, override.Costs)
	return out
}

func mergeSimulation(base, override SimulationConfig) SimulationConfig {
	out := base
	if override.Months != 0 {
		out.Months = override.Months
	}
	if override.Trials != 0 {
		out.Trials = override.Trials
	}
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.Workers != 0 {
		out.Workers = override.Workers
	}
	return out
}

func mergeRevenue(base, override RevenueConfig) RevenueConfig {
	out := base
	if override.SeatFee != 0 {
		out.SeatFee = override.SeatFee
	}
	if override.AvgSeats != 0 {
		out.AvgSeats = override.AvgSeats
	}
	if override.UsageMedian != 0 {
		out.UsageMedian = override.UsageMedian
	}
	if override.UsageSigma != 0 {
		out.UsageSigma = override.UsageSigma
	}
	if override.RevenuePerUsageUnit != 0 {
		out.RevenuePerUsageUnit = override.RevenuePerUsageUnit
	}
	if override.CustomerDelayMonths != 0 {
		out.CustomerDelayMonths = override.CustomerDelayMonths
	}
	if override.CustomerGrowthMedian != 0 {
		out.CustomerGrowthMedian = override.CustomerGrowthMedian
	}
	if override.CustomerGrowthSigma != 0 {
		out.CustomerGrowthSigma = override.CustomerGrowthSigma
	}
	if override.CustomerGrowthAccel != 0 {
		out.CustomerGrowthAccel = override.CustomerGrowthAccel
	}
	if override.MonthlyChurnMedian != 0 {
		out.MonthlyChurnMedian = override.MonthlyChurnMedian
	}
	if override.MonthlyChurnSigma != 0 {
		out.MonthlyChurnSigma = override.MonthlyChurnSigma
	}
	return out
}

func mergeCosts(base, override CostConfig) CostConfig {
	out := base
	if override.HostingInitial != 0 {
		out.HostingInitial = override.HostingInitial
	}
	if override.HostingGrowth != 0 {
		out.HostingGrowth = override.HostingGrowth
	}
	if override.SoftwareInitial != 0 {
		out.SoftwareInitial = override.SoftwareInitial
	}
	if override.SoftwareGrowth != 0 {
		out.SoftwareGrowth = override.SoftwareGrowth
	}
	if override.AdminMonthly != 0 {
		out.AdminMonthly = override.AdminMonthly
	}
	if override.ConferenceMonthly != 0 {
		out.ConferenceMonthly = override.ConferenceMonthly
	}
	if override.SalaryPerHead != 0 {
		out.SalaryPerHead = override.SalaryPerHead
	}
	if override.InitialHeadcount != 0 {
		out.InitialHeadcount = override.InitialHeadcount
	}
	if override.HeadcountDelayMonths != 0 {
		out.HeadcountDelayMonths = override.HeadcountDelayMonths
	}
	if override.HeadcountGrowthMedian != 0 {
		out.HeadcountGrowthMedian = override.HeadcountGrowthMedian
	}
	if override.HeadcountGrowthSigma != 0 {
		out.HeadcountGrowthSigma = override.HeadcountGrowthSigma
	}
	if override.HeadcountGrowthAccel != 0 {
		out.HeadcountGrowthAccel = override.HeadcountGrowthAccel
	}
	if override.HeadcountSlowdownThreshold != 0 {
		out.HeadcountSlowdownThreshold = override.HeadcountSlowdownThreshold
	}
	if override.HeadcountSlowdownFactor != 0 {
		out.HeadcountSlowdownFactor = override.HeadcountSlowdownFactor
	}
	if override.SupportPerCustomerInitial != 0 {
		out.SupportPerCustomerInitial = override.SupportPerCustomerInitial
	}
	if override.SupportGrowth != 0 {
		out.SupportGrowth = override.SupportGrowth
	}
	if override.ComputeInitial != 0 {
		out.ComputeInitial = override.ComputeInitial
	}
	if override.ComputeGrowth != 0 {
		out.ComputeGrowth = override.ComputeGrowth
	}
	if override.ComputePerUsageUnit != 0 {
		out.ComputePerUsageUnit = override.ComputePerUsageUnit
	}
	return out
}
