package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"current": {
		"time": "2026-08-26T14:00",
		"temperature_2m": 58.3,
		"surface_pressure": 1021.0,
		"weather_code": 2,
		"precipitation": 0.0,
		"wind_speed_10m": 7.4
	},
	"hourly": {
		"time": ["2026-08-26T11:00", "2026-08-26T12:00", "2026-08-26T13:00", "2026-08-26T14:00", "2026-08-26T15:00"],
		"temperature_2m": [55.0, 56.1, 57.2, 58.3, 59.0],
		"surface_pressure": [1018.0, 1019.0, 1020.0, 1021.0, 1021.5],
		"weather_code": [1, 1, 2, 2, 3],
		"precipitation": [0, 0, 0, 0, 0.01],
		"wind_speed_10m": [5.0, 6.2, 7.0, 7.4, 8.1]
	},
	"daily": {
		"time": ["2026-08-26", "2026-08-27"],
		"weather_code": [2, 61],
		"temperature_2m_max": [72.0, 68.5],
		"temperature_2m_min": [54.0, 52.3],
		"wind_speed_10m_max": [13.0, 16.5],
		"precipitation_sum": [0.0, 0.12]
	}
}`

func TestOpenMeteoPayloadToBundle(t *testing.T) {
	var payload openMeteoPayload
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &payload))

	bundle, err := payload.toBundle()
	require.NoError(t, err)

	assert.Equal(t, 58.3, bundle.Current.TemperatureF)
	assert.Equal(t, 2, bundle.Current.WeatherCode)
	assert.Equal(t, 7.4, bundle.Current.WindSpeedMph)

	// Past hours feed the pressure history, oldest first, current appended.
	assert.Equal(t, []float64{1018.0, 1019.0, 1020.0, 1021.0}, bundle.PressureHistory)

	// Hours at or after the current reading become the forecast series.
	require.Len(t, bundle.Hourly, 2)
	assert.Equal(t, 58.3, bundle.Hourly[0].Observation.TemperatureF)
	assert.Equal(t, 3, bundle.Hourly[1].Observation.WeatherCode)
	assert.True(t, bundle.Hourly[1].Time.After(bundle.Hourly[0].Time))

	require.Len(t, bundle.Daily, 2)
	assert.Equal(t, 72.0, bundle.Daily[0].Observation.TempMaxF)
	assert.Equal(t, 61, bundle.Daily[1].Observation.WeatherCode)
	assert.Equal(t, 0.12, bundle.Daily[1].Observation.PrecipitationSumIn)
}

func TestOpenMeteoPayloadRaggedSeries(t *testing.T) {
	var payload openMeteoPayload
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &payload))

	payload.Hourly.WindSpeed = payload.Hourly.WindSpeed[:2]

	_, err := payload.toBundle()
	assert.Error(t, err)
}

func TestOpenMeteoPayloadBadHourlyTime(t *testing.T) {
	var payload openMeteoPayload
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &payload))

	payload.Hourly.Time[0] = "not-a-time"

	_, err := payload.toBundle()
	assert.Error(t, err)
}
