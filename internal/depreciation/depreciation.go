// Package depreciation computes straight-line depreciation for a single
// asset. Everything here is pure arithmetic; rounding is left to the
// presentation layer.
package depreciation

import "time"

// yearHours is the length of one depreciation year (365.25 days)
const yearHours = 365.25 * 24

// Policy is an asset group's depreciation policy
type Policy struct {
	UsefulLifeYears   float64
	AnnualRatePercent float64
}

// DefaultPolicy applies when an asset's group is unknown or carries no policy
var DefaultPolicy = Policy{UsefulLifeYears: 10, AnnualRatePercent: 10}

// Result carries every intermediate quantity because reporting consumers
// display each one independently.
type Result struct {
	ElapsedYears            float64 `json:"elapsedYears"`
	AnnualDepreciation      float64 `json:"annualDepreciation"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"`
	CurrentValue            float64 `json:"currentValue"`
	PercentDepreciated      float64 `json:"percentDepreciated"`
}

// Compute applies straight-line depreciation to an asset worth value,
// acquired at acquiredAt, as of asOf. A nil policy falls back to
// DefaultPolicy. Depreciation never runs past the useful life; the current
// value is clamped to [0, value] and the percentage to [0, 100].
func Compute(value float64, acquiredAt, asOf time.Time, policy *Policy) Result {
	p := DefaultPolicy
	if policy != nil {
		p = *policy
	}

	elapsed := asOf.Sub(acquiredAt).Hours() / yearHours
	if elapsed < 0 {
		elapsed = 0
	}

	annual := value * p.AnnualRatePercent / 100

	// An asset past its useful life is fully depreciated, whatever the
	// annual rate says; inside the life window depreciation accrues
	// linearly.
	var accumulated float64
	if elapsed >= p.UsefulLifeYears {
		accumulated = value
	} else {
		accumulated = annual * elapsed
	}

	current := value - accumulated
	if current < 0 {
		current = 0
	}

	var percent float64
	if value > 0 {
		percent = accumulated / value * 100
		if percent > 100 {
			percent = 100
		} else if percent < 0 {
			percent = 0
		}
	}

	return Result{
		ElapsedYears:            elapsed,
		AnnualDepreciation:      annual,
		AccumulatedDepreciation: accumulated,
		CurrentValue:            current,
		PercentDepreciated:      percent,
	}
}
