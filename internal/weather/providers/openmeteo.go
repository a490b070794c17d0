// Package providers contains weather.Provider implementations.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fishcast/internal/scoring"
	"fishcast/internal/weather"
)

const (
	// pastPressureHours is how much hourly pressure history we request for
	// trend derivation.
	pastPressureHours = 3

	openMeteoHourLayout = "2006-01-02T15:04"
	openMeteoDayLayout  = "2006-01-02"
)

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// It requests imperial units so observations arrive in the form the scorer
// expects, and asks for enough past hourly data to derive a pressure trend.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	http    *resilientClient
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		http:    newResilientClient(client, "openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, spot weather.Spot) (weather.Bundle, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", spot.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", spot.Longitude))
		values.Set("current", "temperature_2m,surface_pressure,weather_code,precipitation,wind_speed_10m")
		values.Set("hourly", "temperature_2m,surface_pressure,weather_code,precipitation,wind_speed_10m")
		values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,wind_speed_10m_max,precipitation_sum")
		values.Set("temperature_unit", "fahrenheit")
		values.Set("wind_speed_unit", "mph")
		values.Set("precipitation_unit", "inch")
		values.Set("past_hours", fmt.Sprintf("%d", pastPressureHours))
		values.Set("forecast_hours", "24")
		values.Set("forecast_days", "7")
		values.Set("timezone", "UTC")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := p.http.do(ctx, buildRequest)
	if err != nil {
		return weather.Bundle{}, err
	}
	defer resp.Body.Close()

	var payload openMeteoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Bundle{}, err
	}

	return payload.toBundle()
}

type openMeteoPayload struct {
	Current struct {
		Time            string  `json:"time"`
		Temperature     float64 `json:"temperature_2m"`
		SurfacePressure float64 `json:"surface_pressure"`
		WeatherCode     int     `json:"weather_code"`
		Precipitation   float64 `json:"precipitation"`
		WindSpeed       float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time            []string  `json:"time"`
		Temperature     []float64 `json:"temperature_2m"`
		SurfacePressure []float64 `json:"surface_pressure"`
		WeatherCode     []int     `json:"weather_code"`
		Precipitation   []float64 `json:"precipitation"`
		WindSpeed       []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		TempMax          []float64 `json:"temperature_2m_max"`
		TempMin          []float64 `json:"temperature_2m_min"`
		WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func (pl openMeteoPayload) toBundle() (weather.Bundle, error) {
	currentTime, err := time.Parse(openMeteoHourLayout, pl.Current.Time)
	if err != nil {
		currentTime = time.Now().UTC().Truncate(time.Hour)
	} else {
		currentTime = currentTime.UTC()
	}

	bundle := weather.Bundle{
		FetchedAt:   time.Now().UTC(),
		CurrentTime: currentTime,
		Current: scoring.Observation{
			TemperatureF:    pl.Current.Temperature,
			PressureHpa:     pl.Current.SurfacePressure,
			WeatherCode:     pl.Current.WeatherCode,
			PrecipitationIn: pl.Current.Precipitation,
			WindSpeedMph:    pl.Current.WindSpeed,
		},
	}

	// Split the hourly series: entries before the current reading feed the
	// pressure history, the rest become the scored forecast hours.
	for i, raw := range pl.Hourly.Time {
		if i >= len(pl.Hourly.Temperature) || i >= len(pl.Hourly.SurfacePressure) ||
			i >= len(pl.Hourly.WeatherCode) || i >= len(pl.Hourly.Precipitation) ||
			i >= len(pl.Hourly.WindSpeed) {
			return weather.Bundle{}, fmt.Errorf("openmeteo: ragged hourly series at index %d", i)
		}

		ts, err := time.Parse(openMeteoHourLayout, raw)
		if err != nil {
			return weather.Bundle{}, fmt.Errorf("openmeteo: bad hourly time %q: %w", raw, err)
		}
		ts = ts.UTC()

		if ts.Before(currentTime) {
			bundle.PressureHistory = append(bundle.PressureHistory, pl.Hourly.SurfacePressure[i])
			continue
		}

		bundle.Hourly = append(bundle.Hourly, weather.HourlyRecord{
			Time: ts,
			Observation: scoring.Observation{
				TemperatureF:    pl.Hourly.Temperature[i],
				PressureHpa:     pl.Hourly.SurfacePressure[i],
				WeatherCode:     pl.Hourly.WeatherCode[i],
				PrecipitationIn: pl.Hourly.Precipitation[i],
				WindSpeedMph:    pl.Hourly.WindSpeed[i],
			},
		})
	}
	bundle.PressureHistory = append(bundle.PressureHistory, pl.Current.SurfacePressure)

	for i, raw := range pl.Daily.Time {
		if i >= len(pl.Daily.WeatherCode) || i >= len(pl.Daily.TempMax) ||
			i >= len(pl.Daily.TempMin) || i >= len(pl.Daily.WindSpeedMax) ||
			i >= len(pl.Daily.PrecipitationSum) {
			return weather.Bundle{}, fmt.Errorf("openmeteo: ragged daily series at index %d", i)
		}

		date, err := time.Parse(openMeteoDayLayout, raw)
		if err != nil {
			return weather.Bundle{}, fmt.Errorf("openmeteo: bad daily time %q: %w", raw, err)
		}

		bundle.Daily = append(bundle.Daily, weather.DailyRecord{
			Date: date.UTC(),
			Observation: scoring.DailyObservation{
				TempMaxF:           pl.Daily.TempMax[i],
				TempMinF:           pl.Daily.TempMin[i],
				WeatherCode:        pl.Daily.WeatherCode[i],
				PrecipitationSumIn: pl.Daily.PrecipitationSum[i],
				WindSpeedMaxMph:    pl.Daily.WindSpeedMax[i],
			},
		})
	}

	return bundle, nil
}
