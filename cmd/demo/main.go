package main

import (
	"flag"
	"fmt"

	"saas-forecast/internal/config"
	"saas-forecast/internal/sim"
)

// Demo:
// - Load the default scenario (or a YAML config)
// - Run a single trial month by month
// - Print the ledger to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	seed := flag.Int64("seed", 42, "RNG seed")
	n := flag.Int("n", 12, "Number of months to print")
	outCSV := flag.String("out", "", "Optional path to write the ledger CSV (e.g. results/demo.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = *loaded
	}

	engine, err := sim.New(cfg.Revenue.ToModelParams(), cfg.Costs.ToModelParams())
	if err != nil {
		panic(err)
	}

	sampler := sim.NewRandSampler(*seed)
	run, err := engine.RunOnce(sampler, cfg.Simulation.Months)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d months (seed=%d)\n\n", len(run), *seed)

	cum := 0.0
	for i := 0; i < min(*n, len(run)); i++ {
		r := run[i]
		cum += r.TotalRevenue - r.TotalCost
		fmt.Printf(
			"m=%2d  cust=%5d (churn %d)  hc=%3d  rev=%10.2f  cost=%10.2f  cum=%12.2f\n",
			r.Month+1,
			r.Customers,
			r.Churn,
			r.Headcount,
			r.TotalRevenue,
			r.TotalCost,
			cum,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteRunCSV(*outCSV, run); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	last := run[len(run)-1]
	fmt.Printf("\nDone. Final month: customers=%d headcount=%d revenue=$%.2f cost=$%.2f\n",
		last.Customers, last.Headcount, last.TotalRevenue, last.TotalCost)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
