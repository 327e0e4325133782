package analysis

import (
	"math"
	"sort"

	"saas-forecast/internal/model"
)

// Bands is the p10/median/p90 spread of one metric across trials, month by
// month. The three slices always have equal length (the horizon).
type Bands struct {
	Metric string    `json:"metric"`
	P10    []float64 `json:"p10"`
	Median []float64 `json:"median"`
	P90    []float64 `json:"p90"`
}

// QuantileBands computes per-month percentiles across trials.
// table is indexed [trial][month]; every trial must have the same length.
func QuantileBands(table [][]float64) Bands {
	b := Bands{}
	if len(table) == 0 || len(table[0]) == 0 {
		return b
	}
	months := len(table[0])
	b.P10 = make([]float64, months)
	b.Median = make([]float64, months)
	b.P90 = make([]float64, months)

	column := make([]float64, len(table))
	for m := 0; m < months; m++ {
		for t, run := range table {
			column[t] = run[m]
		}
		sort.Float64s(column)
		b.P10[m] = percentileSorted(column, 0.10)
		b.Median[m] = percentileSorted(column, 0.50)
		b.P90[m] = percentileSorted(column, 0.90)
	}
	return b
}

// MetricBands pulls one metric's table off a batch and computes its bands.
func MetricBands(batch *model.Batch, metric model.Metric) (Bands, error) {
	table, err := batch.Series(metric)
	if err != nil {
		return Bands{}, err
	}
	b := QuantileBands(table)
	b.Metric = string(metric)
	return b, nil
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func medianOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	tmp := make([]float64, len(vals))
	copy(tmp, vals)
	sort.Float64s(tmp)
	return percentileSorted(tmp, 0.50)
}
