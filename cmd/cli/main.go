package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"saas-forecast/internal/analysis"
	"saas-forecast/internal/config"
	"saas-forecast/internal/model"
	"saas-forecast/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "forecast":
		cmdForecast(os.Args[2:])
	case "bands":
		cmdBands(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli forecast --config examples/scenarios/base_case.yaml --out results/summary.csv")
	fmt.Println("  cli bands --config examples/scenarios/base_case.yaml --metric total_revenue")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - forecast writes the p10/median/p90 revenue summary CSV and prints headline stats")
	fmt.Println("  - bands prints the monthly percentile band for any metric (see /api/v1/metrics)")
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to scenario YAML (empty = defaults)")
	outPath := fs.String("out", "results/summary.csv", "Output summary CSV path")
	runOut := fs.String("run-out", "", "Optional: write the first trial's monthly ledger CSV")
	trials := fs.Int("trials", 0, "Optional: override number of trials")
	months := fs.Int("months", 0, "Optional: override horizon in months")
	seed := fs.Int64("seed", 0, "Optional: fixed RNG seed for reproducible batches")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *trials > 0 {
		cfg.Simulation.Trials = *trials
	}
	if *months > 0 {
		cfg.Simulation.Months = *months
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	batch := runBatch(cfg)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := analysis.WriteSummaryCSV(*outPath, batch); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d-month summary for %d trials to %s\n", batch.Months, len(batch.Runs), *outPath)

	if *runOut != "" {
		if err := os.MkdirAll(filepath.Dir(*runOut), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteRunCSV(*runOut, batch.Runs[0]); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote trial 0 ledger to %s\n", *runOut)
	}

	s := analysis.Summarize(batch)
	fmt.Printf("Median break-even month: %.0f of %d\n", s.MedianBreakEvenMonth, s.Months)
	fmt.Printf("Final month median: revenue=$%.0f cost=$%.0f customers=%.0f headcount=%.0f\n",
		s.FinalMonthMedianRevenue, s.FinalMonthMedianCost, s.FinalMonthMedianCustomers, s.FinalMonthMedianHeadcount)
	fmt.Printf("Median final cumulative earnings: $%.0f (max drawdown $%.0f)\n",
		s.MedianFinalCumulativeEarnings, s.MedianMaxDrawdown)
	fmt.Printf("Per employee (final month): revenue=$%.0f earnings=$%.0f\n",
		s.FinalRevenuePerEmployee, s.FinalEarningsPerEmployee)
}

func cmdBands(args []string) {
	fs := flag.NewFlagSet("bands", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to scenario YAML (empty = defaults)")
	metric := fs.String("metric", string(model.MetricTotalRevenue), "Metric to aggregate")
	trials := fs.Int("trials", 0, "Optional: override number of trials")
	seed := fs.Int64("seed", 0, "Optional: fixed RNG seed for reproducible batches")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *trials > 0 {
		cfg.Simulation.Trials = *trials
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	batch := runBatch(cfg)

	bands, err := analysis.MetricBands(batch, model.Metric(*metric))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-6s %-16s %-16s %-16s\n", "month", "p10", "median", "p90")
	for m := range bands.Median {
		fmt.Printf("%-6d %-16.2f %-16.2f %-16.2f\n", m+1, bands.P10[m], bands.Median[m], bands.P90[m])
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		cfg := config.Default()
		return &cfg
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func runBatch(cfg *config.Config) *model.Batch {
	engine, err := sim.New(cfg.Revenue.ToModelParams(), cfg.Costs.ToModelParams())
	if err != nil {
		panic(err)
	}
	batch, err := engine.RunBatch(cfg.Simulation.Months, cfg.Simulation.Trials, sim.BatchOptions{
		Seed:    cfg.Simulation.Seed,
		Workers: cfg.Simulation.Workers,
	})
	if err != nil {
		panic(err)
	}
	return batch
}
