package model

import (
	"errors"
)

// RevenueParams defines the revenue side of a projection scenario.
// Units:
// - SeatFee: $/seat/month
// - UsageMedian: simulation-years per customer per month (lognormal median)
// - RevenuePerUsageUnit: $/simulation-year
// - Growth medians: expected adds per month; accel: fraction per month
// - ChurnMedian: fraction of customers per month (lognormal median, capped at 0.5 downstream)
type RevenueParams struct {
	SeatFee             float64
	AvgSeats            int
	UsageMedian         float64
	UsageSigma          float64
	RevenuePerUsageUnit float64

	CustomerDelayMonths  int
	CustomerGrowthMedian float64
	CustomerGrowthSigma  float64
	CustomerGrowthAccel  float64

	MonthlyChurnMedian float64
	MonthlyChurnSigma  float64
}

func (p RevenueParams) Validate() error {
	if p.SeatFee < 0 {
		return errors.New("SeatFee must be >= 0")
	}
	if p.AvgSeats < 0 {
		return errors.New("AvgSeats must be >= 0")
	}
	if p.UsageMedian < 0 {
		return errors.New("UsageMedian must be >= 0")
	}
	if p.UsageSigma < 0 {
		return errors.New("UsageSigma must be >= 0")
	}
	if p.RevenuePerUsageUnit < 0 {
		return errors.New("RevenuePerUsageUnit must be >= 0")
	}
	if p.CustomerDelayMonths < 0 {
		return errors.New("CustomerDelayMonths must be >= 0")
	}
	if p.CustomerGrowthMedian < 0 {
		return errors.New("CustomerGrowthMedian must be >= 0")
	}
	if p.CustomerGrowthSigma < 0 {
		return errors.New("CustomerGrowthSigma must be >= 0")
	}
	if p.CustomerGrowthAccel < 0 {
		return errors.New("CustomerGrowthAccel must be >= 0")
	}
	if p.MonthlyChurnMedian < 0 {
		return errors.New("MonthlyChurnMedian must be >= 0")
	}
	if p.MonthlyChurnSigma < 0 {
		return errors.New("MonthlyChurnSigma must be >= 0")
	}
	return nil
}

// CostParams defines the cost side of a projection scenario.
// Initial amounts are $/month in year 0; growth rates are annual fractions
// applied as a step function at each completed 12-month boundary.
type CostParams struct {
	HostingInitial  float64
	HostingGrowth   float64
	SoftwareInitial float64
	SoftwareGrowth  float64

	AdminMonthly      float64
	ConferenceMonthly float64

	SalaryPerHead              float64
	InitialHeadcount           int
	HeadcountDelayMonths       int
	HeadcountGrowthMedian      float64
	HeadcountGrowthSigma       float64
	HeadcountGrowthAccel       float64
	HeadcountSlowdownThreshold int
	HeadcountSlowdownFactor    float64

	SupportPerCustomerInitial float64
	SupportGrowth             float64
	ComputeInitial            float64
	ComputeGrowth             float64
	ComputePerUsageUnit       float64
}

func (p CostParams) Validate() error {
	if p.HostingInitial < 0 {
		return errors.New("HostingInitial must be >= 0")
	}
	if p.HostingGrowth < 0 {
		return errors.New("HostingGrowth must be >= 0")
	}
	if p.SoftwareInitial < 0 {
		return errors.New("SoftwareInitial must be >= 0")
	}
	if p.SoftwareGrowth < 0 {
		return errors.New("SoftwareGrowth must be >= 0")
	}
	if p.AdminMonthly < 0 {
		return errors.New("AdminMonthly must be >= 0")
	}
	if p.ConferenceMonthly < 0 {
		return errors.New("ConferenceMonthly must be >= 0")
	}
	if p.SalaryPerHead < 0 {
		return errors.New("SalaryPerHead must be >= 0")
	}
	if p.InitialHeadcount < 0 {
		return errors.New("InitialHeadcount must be >= 0")
	}
	if p.HeadcountDelayMonths < 0 {
		return errors.New("HeadcountDelayMonths must be >= 0")
	}
	if p.HeadcountGrowthMedian < 0 {
		return errors.New("HeadcountGrowthMedian must be >= 0")
	}
	if p.HeadcountGrowthSigma < 0 {
		return errors.New("HeadcountGrowthSigma must be >= 0")
	}
	if p.HeadcountGrowthAccel < 0 {
		return errors.New("HeadcountGrowthAccel must be >= 0")
	}
	if p.HeadcountSlowdownThreshold < 0 {
		return errors.New("HeadcountSlowdownThreshold must be >= 0")
	}
	if p.HeadcountSlowdownFactor < 0 || p.HeadcountSlowdownFactor > 1 {
		return errors.New("HeadcountSlowdownFactor must be in [0, 1]")
	}
	if p.SupportPerCustomerInitial < 0 {
		return errors.New("SupportPerCustomerInitial must be >= 0")
	}
	if p.SupportGrowth < 0 {
		return errors.New("SupportGrowth must be >= 0")
	}
	if p.ComputeInitial < 0 {
		return errors.New("ComputeInitial must be >= 0")
	}
	if p.ComputeGrowth < 0 {
		return errors.New("ComputeGrowth must be >= 0")
	}
	if p.ComputePerUsageUnit < 0 {
		return errors.New("ComputePerUsageUnit must be >= 0")
	}
	return nil
}
