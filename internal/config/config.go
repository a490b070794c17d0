package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelvins/geocoder"

	"fishcast/internal/weather"
)

type AppConfig struct {
	// FetchInterval controls how often the scheduler re-scores each spot.
	FetchInterval time.Duration

	// HTTPTimeout applies to outbound weather-provider calls.
	HTTPTimeout time.Duration

	// Spots to keep scored.
	Spots []weather.Spot

	// In-memory store retention.
	StoreMaxHistory int           // max number of outlooks per spot (0 = unlimited)
	StoreMaxAge     time.Duration // max age of outlooks (0 = unlimited)

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	// Scheduler interval: default 15 minutes.
	intervalStr := getenvDefault("FETCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge
	cfg.Port = getenvDefault("PORT", "8080")

	spots, err := loadSpots()
	if err != nil {
		return nil, err
	}
	cfg.Spots = spots

	return cfg, nil
}

// loadSpots reads tracked spots from SPOTS (semicolon-separated
// "lat,lon[,name]" entries) and, if a geocoder key is configured, from
// SPOT_CITIES (semicolon-separated "city,country" entries resolved to
// coordinates at startup).
func loadSpots() ([]weather.Spot, error) {
	var spots []weather.Spot

	for _, entry := range splitList(os.Getenv("SPOTS")) {
		spot, err := parseSpot(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid SPOTS entry %q: %w", entry, err)
		}
		spots = append(spots, spot)
	}

	cities := splitList(os.Getenv("SPOT_CITIES"))
	if len(cities) > 0 {
		apiKey := os.Getenv("GEOCODER_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("SPOT_CITIES requires GEOCODER_API_KEY")
		}
		geocoder.ApiKey = apiKey

		for _, entry := range cities {
			spot, err := geocodeSpot(entry)
			if err != nil {
				return nil, fmt.Errorf("geocoding %q: %w", entry, err)
			}
			spots = append(spots, spot)
		}
	}

	return spots, nil
}

func parseSpot(entry string) (weather.Spot, error) {
	parts := strings.Split(entry, ",")
	if len(parts) < 2 {
		return weather.Spot{}, fmt.Errorf("expected lat,lon[,name]")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return weather.Spot{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return weather.Spot{}, fmt.Errorf("invalid longitude: %w", err)
	}
	if lat < -90 || lat > 90 {
		return weather.Spot{}, fmt.Errorf("latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return weather.Spot{}, fmt.Errorf("longitude %v out of range", lon)
	}

	spot := weather.Spot{Latitude: lat, Longitude: lon}
	if len(parts) > 2 {
		spot.Name = strings.TrimSpace(parts[2])
	}
	return spot, nil
}

func geocodeSpot(entry string) (weather.Spot, error) {
	parts := strings.Split(entry, ",")
	if len(parts) != 2 {
		return weather.Spot{}, fmt.Errorf("expected city,country")
	}

	address := geocoder.Address{
		City:    strings.TrimSpace(parts[0]),
		Country: strings.TrimSpace(parts[1]),
	}
	location, err := geocoder.Geocoding(address)
	if err != nil {
		return weather.Spot{}, err
	}

	return weather.Spot{
		Name:      address.City,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
