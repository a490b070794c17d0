package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fishcast/internal/scoring"
)

func TestDeriveTrendRising(t *testing.T) {
	trend := DeriveTrend([]float64{1010, 1011, 1012, 1013})
	assert.Equal(t, scoring.TrendRising, trend.Direction)
	assert.InDelta(t, 3, trend.MagnitudeHpa, 1e-9)
}

func TestDeriveTrendFalling(t *testing.T) {
	trend := DeriveTrend([]float64{1020, 1019, 1017.5, 1016})
	assert.Equal(t, scoring.TrendFalling, trend.Direction)
	assert.InDelta(t, 4, trend.MagnitudeHpa, 1e-9)
}

func TestDeriveTrendSteadyWithinThreshold(t *testing.T) {
	// A change of exactly ±1.5 hPa is still steady; the trend needs to
	// exceed the threshold.
	assert.Equal(t, scoring.TrendSteady, DeriveTrend([]float64{1015, 1015.5, 1016, 1016.5}).Direction)
	assert.Equal(t, scoring.TrendSteady, DeriveTrend([]float64{1016.5, 1016, 1015.5, 1015}).Direction)
	assert.Equal(t, scoring.TrendSteady, DeriveTrend([]float64{1015, 1015.4, 1015.9, 1016.4}).Direction)
}

func TestDeriveTrendShortHistory(t *testing.T) {
	trend := DeriveTrend([]float64{1013})
	assert.Equal(t, scoring.TrendSteady, trend.Direction)
	assert.Zero(t, trend.MagnitudeHpa)

	trend = DeriveTrend(nil)
	assert.Equal(t, scoring.TrendSteady, trend.Direction)
	assert.Zero(t, trend.MagnitudeHpa)
}
