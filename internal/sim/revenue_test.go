package sim

import (
	"testing"

	"saas-forecast/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMonthRevenue(t *testing.T) {
	p := model.RevenueParams{
		SeatFee:             1000,
		AvgSeats:            2,
		UsageMedian:         250,
		UsageSigma:          1.0,
		RevenuePerUsageUnit: 80,
	}

	t.Run("no customers, no revenue", func(t *testing.T) {
		s := &stubSampler{valueFn: func(median, sigma float64) float64 { return 100 }}
		out := MonthRevenue(s, p, 0)
		assert.Zero(t, out.Total)
		assert.Zero(t, out.Seat)
		assert.Zero(t, out.Usage)
		assert.Zero(t, out.UsageUnits)
	})

	t.Run("usage is drawn once per customer", func(t *testing.T) {
		draws := 0
		s := &stubSampler{valueFn: func(median, sigma float64) float64 {
			draws++
			return 2.5
		}}
		out := MonthRevenue(s, p, 4)

		assert.Equal(t, 4, draws)
		assert.InDelta(t, 10.0, out.UsageUnits, 1e-9)
		assert.InDelta(t, 800.0, out.Usage, 1e-9)
		assert.InDelta(t, 4*2*1000.0, out.Seat, 1e-9)
		assert.InDelta(t, out.Seat+out.Usage, out.Total, 1e-9)
	})

	t.Run("seat revenue is deterministic", func(t *testing.T) {
		s := &stubSampler{}
		out := MonthRevenue(s, p, 3)
		assert.InDelta(t, 3*2*1000.0, out.Seat, 1e-9)
		assert.Zero(t, out.Usage)
	})
}
