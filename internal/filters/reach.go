package filters

import (
	"errors"
	"math"
)

// ErrEstimateUnavailable indicates the reach heuristic cannot run. Callers
// should fall back to an "unknown" display rather than blocking the search.
var ErrEstimateUnavailable = errors.New("reach estimate unavailable")

// Estimator computes an approximate audience size from filter state. The
// estimate is a heuristic over the number of constrained dimensions, not a
// live count: choosing one job title narrows the pool exactly as much as
// choosing five.
type Estimator struct {
	// Baseline is the unconstrained pool size the estimate starts from.
	Baseline int
	// Retention is the fraction of the pool that survives each additional
	// constrained dimension, in (0, 1].
	Retention float64
	// Floor is the minimum the estimate is clamped to so it never reads as
	// zero contacts.
	Floor int
}

// DefaultEstimator mirrors the default reach configuration
func DefaultEstimator() Estimator {
	return Estimator{Baseline: 250000, Retention: 0.35, Floor: 50}
}

// Estimate returns the estimated number of contacts reachable with the given
// filters. The result is monotonically non-increasing as more dimensions
// become active and is always at least e.Floor.
func (e Estimator) Estimate(f *Filters) (int, error) {
	if e.Baseline < 1 || e.Retention <= 0 || e.Retention > 1 || e.Floor < 1 {
		return 0, ErrEstimateUnavailable
	}
	if f == nil {
		return 0, ErrEstimateUnavailable
	}

	estimate := float64(e.Baseline) * math.Pow(e.Retention, float64(f.ActiveDimensions()))

	n := int(math.Round(estimate))
	if n < e.Floor {
		n = e.Floor
	}
	return n, nil
}
