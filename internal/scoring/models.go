package scoring

// Observation is a normalized single-point weather snapshot in the units the
// scorer expects: Fahrenheit, hPa, mph, inches, and an integer WMO code.
type Observation struct {
	TemperatureF    float64 `json:"temperatureF"`
	PressureHpa     float64 `json:"pressureHpa"`
	WeatherCode     int     `json:"weatherCode"`
	PrecipitationIn float64 `json:"precipitationIn"`
	WindSpeedMph    float64 `json:"windSpeedMph"`
}

// DailyObservation carries day-level aggregates in place of the single-point
// fields. No pressure series exists at this granularity.
type DailyObservation struct {
	TempMaxF           float64 `json:"tempMaxF"`
	TempMinF           float64 `json:"tempMinF"`
	WeatherCode        int     `json:"weatherCode"`
	PrecipitationSumIn float64 `json:"precipitationSumIn"`
	WindSpeedMaxMph    float64 `json:"windSpeedMaxMph"`
}

// TrendDirection classifies a short-window barometric pressure change.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendSteady  TrendDirection = "steady"
)

// PressureTrend is the direction and magnitude of the pressure change over
// the prior three hours. Only meaningful for current conditions.
type PressureTrend struct {
	Direction    TrendDirection `json:"direction"`
	MagnitudeHpa float64        `json:"magnitudeHpaPer3h"`
}

// Factor names one scored input dimension.
type Factor string

const (
	FactorTemperature Factor = "temperature"
	FactorPressure    Factor = "pressure"
	FactorWeather     Factor = "weather"
	FactorWind        Factor = "wind"
	FactorSolunar     Factor = "solunar"
)

// Tier is the discrete recommendation derived from a total score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

// Result is a composite favorability score: a 0-100 weighted total, the
// rounded per-factor sub-scores, and the recommendation tier. Results are
// recomputed on every call and never cached by the scorer.
type Result struct {
	TotalScore   int            `json:"totalScore"`
	FactorScores map[Factor]int `json:"factorScores"`
	Tier         Tier           `json:"tier"`
}
