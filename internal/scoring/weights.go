package scoring

import (
	"fmt"
	"math"
)

// Weights defines the relative importance of each factor for one scoring
// granularity. A valid set sums to 1.0.
type Weights struct {
	Temperature float64
	Pressure    float64
	Weather     float64
	Wind        float64
	Solunar     float64
}

// CurrentWeights is the factor weighting for current conditions.
func CurrentWeights() Weights {
	return Weights{
		Temperature: 0.20,
		Pressure:    0.25,
		Weather:     0.20,
		Wind:        0.15,
		Solunar:     0.20,
	}
}

// HourlyWeights matches CurrentWeights; the hourly pressure sub-score just
// carries no trend adjustment.
func HourlyWeights() Weights {
	return CurrentWeights()
}

// DailyWeights excludes pressure entirely: no per-day pressure series is
// available, so its share is redistributed.
func DailyWeights() Weights {
	return Weights{
		Temperature: 0.25,
		Weather:     0.25,
		Wind:        0.20,
		Solunar:     0.30,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Temperature + w.Pressure + w.Weather + w.Wind + w.Solunar
}

// Validate checks that the weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Temperature, w.Pressure, w.Weather, w.Wind, w.Solunar} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
