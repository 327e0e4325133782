package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSampler returns scripted values so stepper tests are deterministic.
// Unset funcs return zero.
type stubSampler struct {
	countFn func(median, sigma float64) int
	valueFn func(median, sigma float64) float64
	churnFn func(population int, median, sigma float64) int
}

func (s *stubSampler) LognormalCount(median, sigma float64) int {
	if s.countFn == nil {
		return 0
	}
	return s.countFn(median, sigma)
}

func (s *stubSampler) LognormalValue(median, sigma float64) float64 {
	if s.valueFn == nil {
		return 0
	}
	return s.valueFn(median, sigma)
}

func (s *stubSampler) ChurnCount(population int, median, sigma float64) int {
	if s.churnFn == nil {
		return 0
	}
	return s.churnFn(population, median, sigma)
}

func TestRandSamplerDeterministic(t *testing.T) {
	a := NewRandSampler(99)
	b := NewRandSampler(99)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.LognormalValue(10, 1.5), b.LognormalValue(10, 1.5))
		assert.Equal(t, a.LognormalCount(3, 0.8), b.LognormalCount(3, 0.8))
		assert.Equal(t, a.ChurnCount(50, 0.05, 1.0), b.ChurnCount(50, 0.05, 1.0))
	}
}

func TestLognormalValue(t *testing.T) {
	s := NewRandSampler(1)

	t.Run("zero sigma returns the median", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			assert.InDelta(t, 10.0, s.LognormalValue(10, 0), 1e-6)
		}
	})

	t.Run("zero median is degenerate near zero, not a domain error", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			v := s.LognormalValue(0, 2.0)
			require.False(t, math.IsNaN(v))
			require.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1e-3)
		}
	})

	t.Run("always positive", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			assert.Greater(t, s.LognormalValue(5, 3.0), 0.0)
		}
	})
}

func TestLognormalCount(t *testing.T) {
	s := NewRandSampler(2)

	t.Run("floors to integer", func(t *testing.T) {
		// sigma 0 makes the draw exactly the median.
		assert.Equal(t, 2, s.LognormalCount(2.9, 0))
		assert.Equal(t, 0, s.LognormalCount(0.7, 0))
	})

	t.Run("zero median yields zero", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Equal(t, 0, s.LognormalCount(0, 1.0))
		}
	})

	t.Run("runaway draw clamps instead of overflowing", func(t *testing.T) {
		assert.Equal(t, maxCount, s.LognormalCount(1e300, 0))
	})
}

func TestChurnCount(t *testing.T) {
	t.Run("empty population churns nothing", func(t *testing.T) {
		s := NewRandSampler(3)
		assert.Equal(t, 0, s.ChurnCount(0, 0.5, 1.0))
		assert.Equal(t, 0, s.ChurnCount(-5, 0.5, 1.0))
	})

	t.Run("bounded by population", func(t *testing.T) {
		s := NewRandSampler(4)
		for i := 0; i < 200; i++ {
			c := s.ChurnCount(20, 0.3, 2.0)
			require.GreaterOrEqual(t, c, 0)
			require.LessOrEqual(t, c, 20)
		}
	})

	t.Run("rate is capped at half the base", func(t *testing.T) {
		// A huge median with sigma 0 would churn everyone without the cap.
		// With the cap the draw is Binomial(n, 0.5).
		s := NewRandSampler(5)
		n := 2000
		c := s.ChurnCount(n, 100, 0)
		assert.InDelta(t, float64(n)/2, float64(c), float64(n)/10)
	})

	t.Run("zero rate churns nothing", func(t *testing.T) {
		s := NewRandSampler(6)
		for i := 0; i < 50; i++ {
			assert.Equal(t, 0, s.ChurnCount(100, 0, 0))
		}
	})
}
