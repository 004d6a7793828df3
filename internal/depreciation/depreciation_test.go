package depreciation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func years(n float64) time.Duration {
	return time.Duration(n * 365.25 * 24 * float64(time.Hour))
}

func TestAtAcquisitionNothingIsDepreciated(t *testing.T) {
	acquired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r := Compute(5000, acquired, acquired, &Policy{UsefulLifeYears: 5, AnnualRatePercent: 20})

	assert.Equal(t, 0.0, r.ElapsedYears)
	assert.Equal(t, 0.0, r.AccumulatedDepreciation)
	assert.Equal(t, 5000.0, r.CurrentValue)
	assert.Equal(t, 0.0, r.PercentDepreciated)
}

func TestFutureAcquisitionClampsElapsedToZero(t *testing.T) {
	acquired := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Compute(5000, acquired, asOf, nil)

	assert.Equal(t, 0.0, r.ElapsedYears)
	assert.Equal(t, 5000.0, r.CurrentValue)
}

func TestLinearAccrualInsideUsefulLife(t *testing.T) {
	acquired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := acquired.Add(years(2))
	r := Compute(1000, acquired, asOf, &Policy{UsefulLifeYears: 5, AnnualRatePercent: 20})

	assert.InDelta(t, 2.0, r.ElapsedYears, 1e-9)
	assert.InDelta(t, 200.0, r.AnnualDepreciation, 1e-9)
	assert.InDelta(t, 400.0, r.AccumulatedDepreciation, 1e-6)
	assert.InDelta(t, 600.0, r.CurrentValue, 1e-6)
	assert.InDelta(t, 40.0, r.PercentDepreciated, 1e-6)
}

func TestFiveYearAssetFullyDepreciatedAtLifeEnd(t *testing.T) {
	// 1,000,000 acquired exactly five 365.25-day years ago, 5y/20% policy
	acquired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := acquired.Add(years(5))
	r := Compute(1000000, acquired, asOf, &Policy{UsefulLifeYears: 5, AnnualRatePercent: 20})

	assert.Equal(t, 1000000.0, r.AccumulatedDepreciation)
	assert.Equal(t, 0.0, r.CurrentValue)
	assert.Equal(t, 100.0, r.PercentDepreciated)
}

func TestPastUsefulLifeClampsRegardlessOfRate(t *testing.T) {
	acquired := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := acquired.Add(years(30))

	for _, rate := range []float64{5, 10, 20, 50} {
		r := Compute(8000, acquired, asOf, &Policy{UsefulLifeYears: 10, AnnualRatePercent: rate})
		assert.Equal(t, 0.0, r.CurrentValue, "rate %v", rate)
		assert.Equal(t, 100.0, r.PercentDepreciated, "rate %v", rate)
		assert.Equal(t, 8000.0, r.AccumulatedDepreciation, "rate %v", rate)
	}
}

func TestDefaultPolicyIsTenYearsTenPercent(t *testing.T) {
	acquired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := acquired.Add(years(3))
	r := Compute(1000, acquired, asOf, nil)

	assert.InDelta(t, 100.0, r.AnnualDepreciation, 1e-9)
	assert.InDelta(t, 300.0, r.AccumulatedDepreciation, 1e-6)
	assert.InDelta(t, 700.0, r.CurrentValue, 1e-6)
}

func TestZeroValueAssetReportsZeroPercent(t *testing.T) {
	acquired := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := acquired.Add(years(20))
	r := Compute(0, acquired, asOf, nil)

	assert.Equal(t, 0.0, r.CurrentValue)
	assert.Equal(t, 0.0, r.PercentDepreciated)
}

func TestNoRoundingIsPerformed(t *testing.T) {
	acquired := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := acquired.Add(years(1.5))
	r := Compute(999.99, acquired, asOf, &Policy{UsefulLifeYears: 10, AnnualRatePercent: 10})

	// the engine keeps raw fractions; presentation rounds
	assert.InDelta(t, 99.999*1.5, r.AccumulatedDepreciation, 1e-9)
}
