package weather_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/internal/scoring"
	"fishcast/internal/solunar"
	"fishcast/internal/store"
	"fishcast/internal/weather"
)

// stubProvider returns a canned bundle (or error) without touching the network.
type stubProvider struct {
	bundle weather.Bundle
	err    error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Fetch(_ context.Context, _ weather.Spot) (weather.Bundle, error) {
	return p.bundle, p.err
}

func newTestService(provider weather.Provider) (*weather.Service, *store.MemoryStore) {
	memStore := store.NewMemoryStore(10, time.Hour)
	engine := solunar.NewEngine()
	scorer := scoring.NewScorer(engine)
	return weather.NewService(memStore, provider, scorer, engine), memStore
}

func testBundle() weather.Bundle {
	now := time.Date(2026, time.August, 26, 14, 0, 0, 0, time.UTC)
	return weather.Bundle{
		FetchedAt:   now,
		CurrentTime: now,
		Current: scoring.Observation{
			TemperatureF: 58,
			PressureHpa:  1021,
			WeatherCode:  2,
			WindSpeedMph: 7,
		},
		PressureHistory: []float64{1018, 1019, 1020, 1021},
		Hourly: []weather.HourlyRecord{
			{
				Time:        now.Add(time.Hour),
				Observation: scoring.Observation{TemperatureF: 60, PressureHpa: 1021, WeatherCode: 2, WindSpeedMph: 9},
			},
			{
				Time:        now.Add(2 * time.Hour),
				Observation: scoring.Observation{TemperatureF: 61, PressureHpa: 1020, WeatherCode: 3, WindSpeedMph: 11},
			},
		},
		Daily: []weather.DailyRecord{
			{
				Date:        time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC),
				Observation: scoring.DailyObservation{TempMaxF: 72, TempMinF: 54, WeatherCode: 1, WindSpeedMaxMph: 13},
			},
		},
	}
}

func TestRefreshScoresAndStoresOutlook(t *testing.T) {
	spot := weather.Spot{Name: "Lake Harriet", Latitude: 44.92, Longitude: -93.31}
	service, memStore := newTestService(&stubProvider{bundle: testBundle()})

	outlook, err := service.Refresh(context.Background(), spot)
	require.NoError(t, err)

	assert.Equal(t, spot, outlook.Spot)

	// Rising 3 hPa over the window.
	assert.Equal(t, scoring.TrendRising, outlook.PressureTrend.Direction)
	assert.InDelta(t, 3, outlook.PressureTrend.MagnitudeHpa, 1e-9)

	// Current pressure factor: 100 plus rising bonus, capped.
	assert.Equal(t, 100, outlook.Score.FactorScores[scoring.FactorPressure])
	assert.Equal(t, scoring.Classify(outlook.Score.TotalScore), outlook.Score.Tier)

	require.Len(t, outlook.Hourly, 2)
	require.Len(t, outlook.Daily, 1)
	assert.Len(t, outlook.Periods, 4)

	// Hourly entries carry no trend adjustment: 1021 scores a flat 100.
	assert.Equal(t, 100, outlook.Hourly[0].Score.FactorScores[scoring.FactorPressure])

	// Daily score has no pressure factor at all.
	_, hasPressure := outlook.Daily[0].Score.FactorScores[scoring.FactorPressure]
	assert.False(t, hasPressure)

	stored, err := memStore.GetLatest(spot)
	require.NoError(t, err)
	assert.Equal(t, outlook.Score, stored.Score)
}

func TestRefreshPropagatesProviderError(t *testing.T) {
	spot := weather.Spot{Latitude: 29.95, Longitude: -90.07}
	service, memStore := newTestService(&stubProvider{err: errors.New("upstream down")})

	_, err := service.Refresh(context.Background(), spot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")

	// Nothing stored on failure.
	_, err = memStore.GetLatest(spot)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRefreshWithoutProvider(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Refresh(context.Background(), weather.Spot{Latitude: 1, Longitude: 2})
	assert.Error(t, err)
}

func TestSolunarReport(t *testing.T) {
	service, _ := newTestService(nil)
	at := time.Date(2026, time.August, 26, 9, 30, 0, 0, time.UTC)

	report := service.Solunar(at, 44.98, -93.27)

	assert.Equal(t, at, report.Time)
	assert.Len(t, report.Periods, 4)
	assert.GreaterOrEqual(t, report.InstantScore, 0.0)
	assert.LessOrEqual(t, report.InstantScore, 100.0)
	assert.GreaterOrEqual(t, report.DailyScore, 0.0)
	assert.LessOrEqual(t, report.DailyScore, 100.0)
	assert.NotZero(t, report.MoonTimes.Transit)
	assert.NotEmpty(t, report.MoonPhase.Name)
}
