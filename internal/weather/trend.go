package weather

import (
	"math"

	"fishcast/internal/scoring"
)

// trendThresholdHpa is the pressure change over the sample window beyond
// which the trend counts as rising or falling.
const trendThresholdHpa = 1.5

// DeriveTrend classifies the pressure change across a short sample window
// (current reading plus the prior three hours, oldest first). Fewer than two
// samples yield a steady trend with zero magnitude.
func DeriveTrend(samples []float64) scoring.PressureTrend {
	if len(samples) < 2 {
		return scoring.PressureTrend{Direction: scoring.TrendSteady}
	}

	change := samples[len(samples)-1] - samples[0]

	direction := scoring.TrendSteady
	switch {
	case change > trendThresholdHpa:
		direction = scoring.TrendRising
	case change < -trendThresholdHpa:
		direction = scoring.TrendFalling
	}

	return scoring.PressureTrend{
		Direction:    direction,
		MagnitudeHpa: math.Abs(change),
	}
}
