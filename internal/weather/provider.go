package weather

import (
	"context"
	"time"
)

// Provider abstracts a weather data source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, spot Spot) (Bundle, error)
}

// Store is the contract the in-memory store (and any future persistent
// store) must satisfy.
type Store interface {
	SaveOutlook(spot Spot, outlook Outlook)
	GetLatest(spot Spot) (Outlook, error)
	GetRange(spot Spot, from, to time.Time) ([]Outlook, error)
}
