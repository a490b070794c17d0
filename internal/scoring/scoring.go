// Package scoring turns normalized weather observations and solunar position
// into 0-100 favorability scores. Every function is a pure transformation of
// its arguments; a Scorer is safe for concurrent use.
package scoring

import (
	"math"
	"time"

	"fishcast/internal/solunar"
)

// Scorer computes per-factor sub-scores and weighted totals. It holds a
// solunar engine as its only collaborator and no mutable state.
type Scorer struct {
	solunar *solunar.Engine
}

// NewScorer returns a Scorer backed by the given solunar engine.
func NewScorer(engine *solunar.Engine) *Scorer {
	return &Scorer{solunar: engine}
}

// TemperatureScore rates an air temperature in Fahrenheit. Tiers are
// inclusive ranges tested narrowest-first; the wider ranges always contain
// the narrower ones.
func (s *Scorer) TemperatureScore(tempF float64) float64 {
	switch {
	case tempF >= 45 && tempF <= 65:
		return 100
	case tempF >= 35 && tempF <= 75:
		return 85
	case tempF >= 25 && tempF <= 85:
		return 65
	case tempF >= 15 && tempF <= 95:
		return 40
	default:
		return 20
	}
}

// PressureScore rates an absolute barometric pressure in hPa,
// narrowest-first over nested inclusive ranges centered on 1025.
func (s *Scorer) PressureScore(hpa float64) float64 {
	switch {
	case hpa >= 1020 && hpa <= 1030:
		return 100
	case hpa >= 1015 && hpa <= 1035:
		return 85
	case hpa >= 1010 && hpa <= 1040:
		return 70
	case hpa >= 1005 && hpa <= 1045:
		return 50
	case hpa >= 1000 && hpa <= 1050:
		return 35
	default:
		return 20
	}
}

// PressureTrendScore adjusts PressureScore for the recent trend: rising
// pressure adds 20; pressure falling from an already-high reading
// (above 1015 hPa) adds 10. The result is capped at 100.
func (s *Scorer) PressureTrendScore(hpa float64, direction TrendDirection) float64 {
	score := s.PressureScore(hpa)

	switch direction {
	case TrendRising:
		score += 20
	case TrendFalling:
		if hpa > 1015 {
			score += 10
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ConditionScore rates a WMO weather code. Unknown codes score a neutral 50.
// The precipitation amount is accepted for interface stability but does not
// currently affect the score.
func (s *Scorer) ConditionScore(code int, precipitationIn float64) float64 {
	_ = precipitationIn

	switch {
	case code == 0 || code == 1: // clear / mostly clear
		return 95
	case code == 2: // partly cloudy
		return 100
	case code == 3: // overcast
		return 85
	case code >= 45 && code <= 48: // fog
		return 60
	case code >= 51 && code <= 55: // drizzle
		return 70
	case code == 61: // light rain
		return 60
	case code == 63 || code == 65: // moderate to heavy rain
		return 30
	case code >= 71 && code <= 77: // snow
		return 25
	case code >= 80 && code <= 86: // showers
		return 35
	case code >= 95: // thunderstorm
		return 10
	default:
		return 50
	}
}

// WindScore rates a wind speed in mph. Branch order is significant: the
// favored 5-12 band is tested first, so the boundary values 5 and 12 land
// in the top tier.
func (s *Scorer) WindScore(mph float64) float64 {
	switch {
	case mph >= 5 && mph <= 12:
		return 100
	case mph >= 0 && mph < 5:
		return 85
	case mph >= 12 && mph < 18:
		return 70
	case mph >= 18 && mph < 25:
		return 45
	case mph >= 25 && mph < 35:
		return 25
	default:
		return 10
	}
}

// ScoreCurrent scores current conditions, using the pressure trend.
func (s *Scorer) ScoreCurrent(obs Observation, trend PressureTrend, at time.Time, lat, lon float64) Result {
	return newResult(CurrentWeights(), subScores{
		temperature: s.TemperatureScore(obs.TemperatureF),
		pressure:    s.PressureTrendScore(obs.PressureHpa, trend.Direction),
		weather:     s.ConditionScore(obs.WeatherCode, obs.PrecipitationIn),
		wind:        s.WindScore(obs.WindSpeedMph),
		solunar:     s.solunar.InstantScore(at, lat, lon),
		hasPressure: true,
	})
}

// ScoreHourly scores a forecast hour. No trend exists for future hours, so
// the pressure sub-score uses the absolute value only.
func (s *Scorer) ScoreHourly(obs Observation, at time.Time, lat, lon float64) Result {
	return newResult(HourlyWeights(), subScores{
		temperature: s.TemperatureScore(obs.TemperatureF),
		pressure:    s.PressureScore(obs.PressureHpa),
		weather:     s.ConditionScore(obs.WeatherCode, obs.PrecipitationIn),
		wind:        s.WindScore(obs.WindSpeedMph),
		solunar:     s.solunar.InstantScore(at, lat, lon),
		hasPressure: true,
	})
}

// ScoreDaily scores a forecast day from its aggregates: temperature from the
// max/min midpoint, wind from the daily maximum, solunar from the day-level
// solunar score. Pressure is excluded at this granularity.
func (s *Scorer) ScoreDaily(obs DailyObservation, date time.Time, lat, lon float64) Result {
	return newResult(DailyWeights(), subScores{
		temperature: s.TemperatureScore((obs.TempMaxF + obs.TempMinF) / 2),
		weather:     s.ConditionScore(obs.WeatherCode, obs.PrecipitationSumIn),
		wind:        s.WindScore(obs.WindSpeedMaxMph),
		solunar:     s.solunar.DailyScore(date, lat, lon),
	})
}

// Classify maps a total score to a recommendation tier. Thresholds are
// inclusive lower bounds.
func Classify(total int) Tier {
	switch {
	case total >= 85:
		return TierExcellent
	case total >= 70:
		return TierGood
	case total >= 50:
		return TierFair
	default:
		return TierPoor
	}
}

// subScores carries the full-precision factor values into aggregation.
// hasPressure is false at daily granularity, where the factor is absent
// rather than zero-weighted.
type subScores struct {
	temperature float64
	pressure    float64
	weather     float64
	wind        float64
	solunar     float64
	hasPressure bool
}

// newResult weights the full-precision sub-scores, then rounds: rounding is
// applied to the returned values only, never before weighting.
func newResult(w Weights, sub subScores) Result {
	total := w.Temperature*sub.temperature +
		w.Weather*sub.weather +
		w.Wind*sub.wind +
		w.Solunar*sub.solunar

	factors := map[Factor]int{
		FactorTemperature: roundScore(sub.temperature),
		FactorWeather:     roundScore(sub.weather),
		FactorWind:        roundScore(sub.wind),
		FactorSolunar:     roundScore(sub.solunar),
	}

	if sub.hasPressure {
		total += w.Pressure * sub.pressure
		factors[FactorPressure] = roundScore(sub.pressure)
	}

	rounded := roundScore(total)
	return Result{
		TotalScore:   rounded,
		FactorScores: factors,
		Tier:         Classify(rounded),
	}
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
