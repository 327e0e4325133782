package sim

import (
	"math"
	"math/rand"
)

// epsilon is added to a median before taking its log, so a median of exactly
// zero yields a degenerate distribution near zero instead of a domain error.
const epsilon = 1e-9

// maxChurnRate is a policy ceiling: no more than half the customer base can
// leave in a single month, however volatile the sampled rate is.
const maxChurnRate = 0.5

// maxCount bounds integer draws so a runaway growth rate cannot push the
// float->int conversion outside the representable range.
const maxCount = math.MaxInt32

// Sampler draws the stochastic quantities the steppers need. The engine only
// depends on this interface; tests substitute deterministic implementations.
type Sampler interface {
	// LognormalCount draws X ~ Lognormal(ln(median+eps), sigma) and floors it
	// to an integer. Result is always >= 0.
	LognormalCount(median, sigma float64) int

	// LognormalValue is the continuous analogue of LognormalCount, used for
	// per-customer usage where fractional simulation-years are meaningful.
	LognormalValue(median, sigma float64) float64

	// ChurnCount draws a lognormal churn rate (capped at maxChurnRate), then
	// Binomial(population, rate). Result is in [0, population].
	ChurnCount(population int, median, sigma float64) int
}

// RandSampler is the production Sampler, backed by a private rand.Rand so
// concurrent trials never share generator state.
type RandSampler struct {
	rng *rand.Rand
}

func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandSampler) LognormalValue(median, sigma float64) float64 {
	mu := math.Log(median + epsilon)
	return math.Exp(s.rng.NormFloat64()*sigma + mu)
}

func (s *RandSampler) LognormalCount(median, sigma float64) int {
	v := s.LognormalValue(median, sigma)
	if v >= maxCount {
		return maxCount
	}
	return int(v)
}

func (s *RandSampler) ChurnCount(population int, median, sigma float64) int {
	if population <= 0 {
		return 0
	}
	rate := s.LognormalValue(median, sigma)
	if rate > maxChurnRate {
		rate = maxChurnRate
	}
	departures := 0
	for i := 0; i < population; i++ {
		if s.rng.Float64() < rate {
			departures++
		}
	}
	return departures
}
