package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"saas-forecast/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML). The same structs serve as the
// API override payload, so fields carry both tag sets.
type Config struct {
	// Optional: load a scenario preset from a separate YAML (e.g.
	// examples/scenarios/*.yaml). Inline fields override the preset.
	ScenarioFile string           `yaml:"scenario_file" json:"scenario_file,omitempty"`
	Simulation   SimulationConfig `yaml:"simulation" json:"simulation,omitempty"`
	Revenue      RevenueConfig    `yaml:"revenue" json:"revenue,omitempty"`
	Costs        CostConfig       `yaml:"costs" json:"costs,omitempty"`
}

type SimulationConfig struct {
	Months  int   `yaml:"months" json:"months,omitempty"`
	Trials  int   `yaml:"trials" json:"trials,omitempty"`
	Seed    int64 `yaml:"seed" json:"seed,omitempty"`
	Workers int   `yaml:"workers" json:"workers,omitempty"`
}

// RevenueConfig mirrors model.RevenueParams with serialization tags.
// Rates are fractions per month (0.05 = 5%).
type RevenueConfig struct {
	SeatFee             float64 `yaml:"seat_fee" json:"seat_fee,omitempty"`
	AvgSeats            int     `yaml:"avg_seats" json:"avg_seats,omitempty"`
	UsageMedian         float64 `yaml:"usage_median" json:"usage_median,omitempty"`
	UsageSigma          float64 `yaml:"usage_sigma" json:"usage_sigma,omitempty"`
	RevenuePerUsageUnit float64 `yaml:"revenue_per_usage_unit" json:"revenue_per_usage_unit,omitempty"`

	CustomerDelayMonths  int     `yaml:"customer_delay_months" json:"customer_delay_months,omitempty"`
	CustomerGrowthMedian float64 `yaml:"customer_growth_median" json:"customer_growth_median,omitempty"`
	CustomerGrowthSigma  float64 `yaml:"customer_growth_sigma" json:"customer_growth_sigma,omitempty"`
	CustomerGrowthAccel  float64 `yaml:"customer_growth_accel" json:"customer_growth_accel,omitempty"`

	MonthlyChurnMedian float64 `yaml:"monthly_churn_median" json:"monthly_churn_median,omitempty"`
	MonthlyChurnSigma  float64 `yaml:"monthly_churn_sigma" json:"monthly_churn_sigma,omitempty"`
}

// CostConfig mirrors model.CostParams. Growth rates are annual fractions.
type CostConfig struct {
	HostingInitial  float64 `yaml:"hosting_initial" json:"hosting_initial,omitempty"`
	HostingGrowth   float64 `yaml:"hosting_growth" json:"hosting_growth,omitempty"`
	SoftwareInitial float64 `yaml:"software_initial" json:"software_initial,omitempty"`
	SoftwareGrowth  float64 `yaml:"software_growth" json:"software_growth,omitempty"`

	AdminMonthly      float64 `yaml:"admin_monthly" json:"admin_monthly,omitempty"`
	ConferenceMonthly float64 `yaml:"conference_monthly" json:"conference_monthly,omitempty"`

	SalaryPerHead              float64 `yaml:"salary_per_head" json:"salary_per_head,omitempty"`
	InitialHeadcount           int     `yaml:"initial_headcount" json:"initial_headcount,omitempty"`
	HeadcountDelayMonths       int     `yaml:"headcount_delay_months" json:"headcount_delay_months,omitempty"`
	HeadcountGrowthMedian      float64 `yaml:"headcount_growth_median" json:"headcount_growth_median,omitempty"`
	HeadcountGrowthSigma       float64 `yaml:"headcount_growth_sigma" json:"headcount_growth_sigma,omitempty"`
	HeadcountGrowthAccel       float64 `yaml:"headcount_growth_accel" json:"headcount_growth_accel,omitempty"`
	HeadcountSlowdownThreshold int     `yaml:"headcount_slowdown_threshold" json:"headcount_slowdown_threshold,omitempty"`
	HeadcountSlowdownFactor    float64 `yaml:"headcount_slowdown_factor" json:"headcount_slowdown_factor,omitempty"`

	SupportPerCustomerInitial float64 `yaml:"support_per_customer_initial" json:"support_per_customer_initial,omitempty"`
	SupportGrowth             float64 `yaml:"support_growth" json:"support_growth,omitempty"`
	ComputeInitial            float64 `yaml:"compute_initial" json:"compute_initial,omitempty"`
	ComputeGrowth             float64 `yaml:"compute_growth" json:"compute_growth,omitempty"`
	ComputePerUsageUnit       float64 `yaml:"compute_per_usage_unit" json:"compute_per_usage_unit,omitempty"`
}

// Default returns the base-case scenario: the canonical defaults of the
// single-segment, usage-revenue model, with percent sliders converted to
// fractions.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Months: 24,
			Trials: 500,
		},
		Revenue: RevenueConfig{
			SeatFee:             1000,
			AvgSeats:            1,
			UsageMedian:         250,
			UsageSigma:          1.0,
			RevenuePerUsageUnit: 87.60,

			CustomerDelayMonths:  3,
			CustomerGrowthMedian: 0.7,
			CustomerGrowthSigma:  1.1,
			CustomerGrowthAccel:  0.05,

			MonthlyChurnMedian: 0.05,
			MonthlyChurnSigma:  1.0,
		},
		Costs: CostConfig{
			HostingInitial:  1500,
			HostingGrowth:   0.15,
			SoftwareInitial: 2000,
			SoftwareGrowth:  0.15,

			AdminMonthly:      15000.0 / 12,
			ConferenceMonthly: 5000.0 / 12,

			SalaryPerHead:              20000,
			InitialHeadcount:           5,
			HeadcountDelayMonths:       0,
			HeadcountGrowthMedian:      1.0,
			HeadcountGrowthSigma:       0.2,
			HeadcountGrowthAccel:       0.01,
			HeadcountSlowdownThreshold: 10,
			HeadcountSlowdownFactor:    0.8,

			SupportPerCustomerInitial: 400,
			SupportGrowth:             0.5,
			ComputeInitial:            2000,
			ComputeGrowth:             1.0,
			ComputePerUsageUnit:       5.0,
		},
	}
}

// Load reads a scenario, resolves any scenario_file reference, applies the
// horizon/trial defaults, and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If months/trials are not provided, default them. This keeps scenario
	// files concise: most presets only vary model parameters.
	if c.Simulation.Months == 0 {
		c.Simulation.Months = Default().Simulation.Months
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = Default().Simulation.Trials
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges a scenario, but does not validate it.
// Useful for debugging/printing partial scenarios.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge explicit overrides onto it.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		base, err := LoadUnchecked(scenarioPath)
		if err != nil {
			return nil, err
		}
		c = Merge(*base, c)
		c.ScenarioFile = ""
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Simulation.Months <= 0 {
		return errors.New("simulation.months must be > 0")
	}
	if c.Simulation.Trials <= 0 {
		return errors.New("simulation.trials must be > 0")
	}
	if c.Simulation.Workers < 0 {
		return errors.New("simulation.workers must be >= 0")
	}
	if c.Revenue.CustomerDelayMonths > c.Simulation.Months {
		return fmt.Errorf("revenue.customer_delay_months %d exceeds horizon %d",
			c.Revenue.CustomerDelayMonths, c.Simulation.Months)
	}
	if c.Costs.HeadcountDelayMonths > c.Simulation.Months {
		return fmt.Errorf("costs.headcount_delay_months %d exceeds horizon %d",
			c.Costs.HeadcountDelayMonths, c.Simulation.Months)
	}
	if err := c.Revenue.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("revenue config invalid: %w", err)
	}
	if err := c.Costs.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("cost config invalid: %w", err)
	}
	return nil
}

func (r RevenueConfig) ToModelParams() model.RevenueParams {
	return model.RevenueParams{
		SeatFee:             r.SeatFee,
		AvgSeats:            r.AvgSeats,
		UsageMedian:         r.UsageMedian,
		UsageSigma:          r.UsageSigma,
		RevenuePerUsageUnit: r.RevenuePerUsageUnit,

		CustomerDelayMonths:  r.CustomerDelayMonths,
		CustomerGrowthMedian: r.CustomerGrowthMedian,
		CustomerGrowthSigma:  r.CustomerGrowthSigma,
		CustomerGrowthAccel:  r.CustomerGrowthAccel,

		MonthlyChurnMedian: r.MonthlyChurnMedian,
		MonthlyChurnSigma:  r.MonthlyChurnSigma,
	}
}

func (c CostConfig) ToModelParams() model.CostParams {
	return model.CostParams{
		HostingInitial:  c.HostingInitial,
		HostingGrowth:   c.HostingGrowth,
		SoftwareInitial: c.SoftwareInitial,
		SoftwareGrowth:  c.SoftwareGrowth,

		AdminMonthly:      c.AdminMonthly,
		ConferenceMonthly: c.ConferenceMonthly,

		SalaryPerHead:              c.SalaryPerHead,
		InitialHeadcount:           c.InitialHeadcount,
		HeadcountDelayMonths:       c.HeadcountDelayMonths,
		HeadcountGrowthMedian:      c.HeadcountGrowthMedian,
		HeadcountGrowthSigma:       c.HeadcountGrowthSigma,
		HeadcountGrowthAccel:       c.HeadcountGrowthAccel,
		HeadcountSlowdownThreshold: c.HeadcountSlowdownThreshold,
		HeadcountSlowdownFactor:    c.HeadcountSlowdownFactor,

		SupportPerCustomerInitial: c.SupportPerCustomerInitial,
		SupportGrowth:             c.SupportGrowth,
		ComputeInitial:            c.ComputeInitial,
		ComputeGrowth:             c.ComputeGrowth,
		ComputePerUsageUnit:       c.ComputePerUsageUnit,
	}
}
