package weather

import (
	"fmt"
	"time"

	"fishcast/internal/scoring"
	"fishcast/internal/solunar"
)

// Spot is a geographic point we score conditions for.
type Spot struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this spot in stores.
func (s Spot) Key() string {
	return fmt.Sprintf("%.4f:%.4f", s.Latitude, s.Longitude)
}

// Bundle is the normalized payload a provider returns for one spot: current
// conditions, a short pressure history for trend derivation, and the hourly
// and daily forecast series. All timestamps are UTC.
type Bundle struct {
	FetchedAt time.Time

	CurrentTime time.Time
	Current     scoring.Observation

	// PressureHistory holds the surface pressure over the prior three hours
	// plus the current reading, oldest first.
	PressureHistory []float64

	Hourly []HourlyRecord
	Daily  []DailyRecord
}

// HourlyRecord is one forecast hour.
type HourlyRecord struct {
	Time        time.Time           `json:"time"`
	Observation scoring.Observation `json:"observation"`
}

// DailyRecord is one forecast day.
type DailyRecord struct {
	Date        time.Time                `json:"date"`
	Observation scoring.DailyObservation `json:"observation"`
}

// ScoredHour pairs a forecast hour with its score.
type ScoredHour struct {
	Time        time.Time           `json:"time"`
	Observation scoring.Observation `json:"observation"`
	Score       scoring.Result      `json:"score"`
}

// ScoredDay pairs a forecast day with its score.
type ScoredDay struct {
	Date        time.Time                `json:"date"`
	Observation scoring.DailyObservation `json:"observation"`
	Score       scoring.Result           `json:"score"`
}

// Outlook is the full scored view for a spot at a point in time: scored
// current conditions plus hourly/daily forecasts and the day's solunar data.
type Outlook struct {
	Spot        Spot      `json:"spot"`
	GeneratedAt time.Time `json:"generatedAt"` // always UTC

	ObservedAt    time.Time             `json:"observedAt"`
	Observation   scoring.Observation   `json:"observation"`
	PressureTrend scoring.PressureTrend `json:"pressureTrend"`
	Score         scoring.Result        `json:"score"`

	Hourly []ScoredHour `json:"hourly,omitempty"`
	Daily  []ScoredDay  `json:"daily,omitempty"`

	MoonPhase solunar.MoonPhase `json:"moonPhase"`
	Periods   []solunar.Period  `json:"solunarPeriods"`
}

// SolunarReport is the standalone solunar view served by the API.
type SolunarReport struct {
	Time         time.Time         `json:"time"`
	MoonPhase    solunar.MoonPhase `json:"moonPhase"`
	MoonTimes    solunar.MoonTimes `json:"moonTimes"`
	Periods      []solunar.Period  `json:"periods"`
	InstantScore float64           `json:"instantScore"`
	DailyScore   float64           `json:"dailyScore"`
}
