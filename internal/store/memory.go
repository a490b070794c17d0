package store

import (
	"errors"
	"sync"
	"time"

	"fishcast/internal/weather"
)

var (
	// ErrNotFound is returned when no outlooks are stored for a spot.
	ErrNotFound = errors.New("no outlooks for spot")
)

// outlookHistory holds a time-ordered list of outlooks for one spot.
type outlookHistory struct {
	outlooks []weather.Outlook
}

// MemoryStore is a concurrency-safe in-memory implementation of the weather
// store. It retains a bounded outlook history per spot.
type MemoryStore struct {
	mu sync.RWMutex

	// key: spot key, value: history
	data map[string]*outlookHistory

	// retention configuration
	maxHistory int           // max number of outlooks per spot
	maxAge     time.Duration // optional max age for outlooks
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// Non-positive limits are treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*outlookHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveOutlook appends a new outlook for a spot and enforces retention.
func (s *MemoryStore) SaveOutlook(spot weather.Spot, outlook weather.Outlook) {
	key := spot.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &outlookHistory{}
		s.data[key] = history
	}

	history.outlooks = append(history.outlooks, outlook)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.outlooks) > s.maxHistory {
		over := len(history.outlooks) - s.maxHistory
		history.outlooks = history.outlooks[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.outlooks); i++ {
			if !history.outlooks[i].GeneratedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.outlooks) {
			history.outlooks = history.outlooks[i:]
		}
	}
}

// GetLatest returns the most recent outlook for a spot.
func (s *MemoryStore) GetLatest(spot weather.Spot) (weather.Outlook, error) {
	key := spot.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.outlooks) == 0 {
		return weather.Outlook{}, ErrNotFound
	}
	return history.outlooks[len(history.outlooks)-1], nil
}

// GetRange returns all outlooks for a spot generated between from and to
// (inclusive).
func (s *MemoryStore) GetRange(spot weather.Spot, from, to time.Time) ([]weather.Outlook, error) {
	key := spot.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.outlooks) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Outlook
	for _, o := range history.outlooks {
		if !o.GeneratedAt.Before(from) && !o.GeneratedAt.After(to) {
			result = append(result, o)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
