package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/internal/weather"
)

func outlookAt(spot weather.Spot, ts time.Time) weather.Outlook {
	return weather.Outlook{Spot: spot, GeneratedAt: ts}
}

func TestGetLatestReturnsNewest(t *testing.T) {
	spot := weather.Spot{Latitude: 44.98, Longitude: -93.27}
	s := NewMemoryStore(0, 0)

	base := time.Now().UTC()
	s.SaveOutlook(spot, outlookAt(spot, base.Add(-2*time.Minute)))
	s.SaveOutlook(spot, outlookAt(spot, base.Add(-time.Minute)))
	s.SaveOutlook(spot, outlookAt(spot, base))

	latest, err := s.GetLatest(spot)
	require.NoError(t, err)
	assert.Equal(t, base, latest.GeneratedAt)
}

func TestGetLatestUnknownSpot(t *testing.T) {
	s := NewMemoryStore(0, 0)

	_, err := s.GetLatest(weather.Spot{Latitude: 1, Longitude: 2})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRetentionByCount(t *testing.T) {
	spot := weather.Spot{Latitude: 29.95, Longitude: -90.07}
	s := NewMemoryStore(3, 0)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.SaveOutlook(spot, outlookAt(spot, base.Add(time.Duration(i)*time.Minute)))
	}

	outlooks, err := s.GetRange(spot, base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, outlooks, 3)

	// Oldest two were evicted.
	assert.Equal(t, base.Add(2*time.Minute), outlooks[0].GeneratedAt)
}

func TestRetentionByAge(t *testing.T) {
	spot := weather.Spot{Latitude: 60.17, Longitude: 24.94}
	s := NewMemoryStore(0, 10*time.Minute)

	now := time.Now().UTC()
	s.SaveOutlook(spot, outlookAt(spot, now.Add(-time.Hour)))
	s.SaveOutlook(spot, outlookAt(spot, now))

	outlooks, err := s.GetRange(spot, now.Add(-2*time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, outlooks, 1)
	assert.Equal(t, now, outlooks[0].GeneratedAt)
}

func TestGetRangeBoundsInclusive(t *testing.T) {
	spot := weather.Spot{Latitude: -33.86, Longitude: 151.21}
	s := NewMemoryStore(0, 0)

	base := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s.SaveOutlook(spot, outlookAt(spot, base.Add(time.Duration(i)*time.Hour)))
	}

	outlooks, err := s.GetRange(spot, base.Add(time.Hour), base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, outlooks, 2)
}

func TestGetRangeEmptyWindow(t *testing.T) {
	spot := weather.Spot{Latitude: -33.86, Longitude: 151.21}
	s := NewMemoryStore(0, 0)

	base := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	s.SaveOutlook(spot, outlookAt(spot, base))

	_, err := s.GetRange(spot, base.Add(time.Hour), base.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSpotsAreIsolated(t *testing.T) {
	a := weather.Spot{Latitude: 1, Longitude: 1}
	b := weather.Spot{Latitude: 2, Longitude: 2}
	s := NewMemoryStore(0, 0)

	s.SaveOutlook(a, outlookAt(a, time.Now().UTC()))

	_, err := s.GetLatest(b)
	assert.ErrorIs(t, err, ErrNotFound)
}
