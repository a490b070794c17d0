package weather

import (
	"context"
	"fmt"
	"time"

	"fishcast/internal/scoring"
	"fishcast/internal/solunar"
)

// Service orchestrates fetching weather data, scoring it, and persisting
// scored outlooks.
type Service struct {
	store    Store
	provider Provider
	scorer   *scoring.Scorer
	engine   *solunar.Engine
}

// NewService creates a new Service.
func NewService(store Store, provider Provider, scorer *scoring.Scorer, engine *solunar.Engine) *Service {
	return &Service{
		store:    store,
		provider: provider,
		scorer:   scorer,
		engine:   engine,
	}
}

// Refresh fetches fresh weather data for the spot, scores every granularity,
// stores the resulting outlook, and returns it.
func (s *Service) Refresh(ctx context.Context, spot Spot) (Outlook, error) {
	if s.provider == nil {
		return Outlook{}, fmt.Errorf("no weather provider configured")
	}

	bundle, err := s.provider.Fetch(ctx, spot)
	if err != nil {
		return Outlook{}, fmt.Errorf("fetch %s from %s: %w", spot.Key(), s.provider.Name(), err)
	}

	outlook := s.score(spot, bundle)
	s.store.SaveOutlook(spot, outlook)
	return outlook, nil
}

// score turns a raw provider bundle into a fully scored outlook.
func (s *Service) score(spot Spot, bundle Bundle) Outlook {
	lat, lon := spot.Latitude, spot.Longitude

	observedAt := bundle.CurrentTime
	if observedAt.IsZero() {
		observedAt = time.Now().UTC()
	}

	trend := DeriveTrend(bundle.PressureHistory)

	hourly := make([]ScoredHour, 0, len(bundle.Hourly))
	for _, h := range bundle.Hourly {
		hourly = append(hourly, ScoredHour{
			Time:        h.Time,
			Observation: h.Observation,
			Score:       s.scorer.ScoreHourly(h.Observation, h.Time, lat, lon),
		})
	}

	daily := make([]ScoredDay, 0, len(bundle.Daily))
	for _, d := range bundle.Daily {
		daily = append(daily, ScoredDay{
			Date:        d.Date,
			Observation: d.Observation,
			Score:       s.scorer.ScoreDaily(d.Observation, d.Date, lat, lon),
		})
	}

	return Outlook{
		Spot:          spot,
		GeneratedAt:   time.Now().UTC(),
		ObservedAt:    observedAt,
		Observation:   bundle.Current,
		PressureTrend: trend,
		Score:         s.scorer.ScoreCurrent(bundle.Current, trend, observedAt, lat, lon),
		Hourly:        hourly,
		Daily:         daily,
		MoonPhase:     s.engine.MoonPhase(observedAt),
		Periods:       s.engine.Periods(observedAt, lat, lon),
	}
}

// Solunar computes the standalone solunar report for a time and place. It
// touches no provider or store.
func (s *Service) Solunar(at time.Time, lat, lon float64) SolunarReport {
	at = at.UTC()
	return SolunarReport{
		Time:         at,
		MoonPhase:    s.engine.MoonPhase(at),
		MoonTimes:    s.engine.MoonTimes(at, lat, lon),
		Periods:      s.engine.Periods(at, lat, lon),
		InstantScore: s.engine.InstantScore(at, lat, lon),
		DailyScore:   s.engine.DailyScore(at, lat, lon),
	}
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(spot Spot) (Outlook, error) {
	return s.store.GetLatest(spot)
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(spot Spot, from, to time.Time) ([]Outlook, error) {
	return s.store.GetRange(spot, from, to)
}
