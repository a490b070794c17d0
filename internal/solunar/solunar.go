// Package solunar computes moon phase, approximate moon times, and the four
// daily solunar feeding periods used by the condition scorer.
//
// The moon-time math is a deliberately coarse approximation (linear mean
// lunar longitude, fixed rise/set offsets around transit, no latitude
// correction). It trades ephemeris accuracy for determinism and zero I/O.
package solunar

import (
	"math"
	"time"
)

const (
	// synodicMonth is the mean length of a lunation in days.
	synodicMonth = 29.530588853

	// Mean lunar longitude at the J2000 epoch and its daily rate.
	meanLongitudeBase = 218.316
	meanLongitudeRate = 13.176396

	// Moonrise/moonset offset from transit, in hours (~50 minutes).
	riseSetOffsetHours = 0.83

	majorHalfWindow = 90 * time.Minute
	minorHalfWindow = 45 * time.Minute
)

var (
	// referenceNewMoon is the new moon of 2000-01-06, the phase epoch.
	referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

	// j2000 anchors the mean-longitude calculation.
	j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
)

// PhaseName is one of the eight named moon phases.
type PhaseName string

const (
	PhaseNew            PhaseName = "New"
	PhaseWaxingCrescent PhaseName = "Waxing Crescent"
	PhaseFirstQuarter   PhaseName = "First Quarter"
	PhaseWaxingGibbous  PhaseName = "Waxing Gibbous"
	PhaseFull           PhaseName = "Full"
	PhaseWaningGibbous  PhaseName = "Waning Gibbous"
	PhaseLastQuarter    PhaseName = "Last Quarter"
	PhaseWaningCrescent PhaseName = "Waning Crescent"
)

// MoonPhase describes where the moon is in its cycle at an instant.
// Fraction is in [0,1): 0 is new, 0.5 is full.
type MoonPhase struct {
	Fraction     float64   `json:"fraction"`
	Illumination float64   `json:"illumination"`
	Name         PhaseName `json:"name"`
}

// MoonTimes holds the four solunar anchor times for one calendar day (UTC).
type MoonTimes struct {
	Transit          time.Time `json:"transit"`
	AntipodalTransit time.Time `json:"antipodalTransit"`
	Moonrise         time.Time `json:"moonrise"`
	Moonset          time.Time `json:"moonset"`
}

// PeriodKind distinguishes major (transit-centered) from minor
// (rise/set-centered) feeding periods.
type PeriodKind string

const (
	PeriodMajor PeriodKind = "major"
	PeriodMinor PeriodKind = "minor"
)

// Period is a single solunar feeding window.
type Period struct {
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Kind  PeriodKind `json:"kind"`
}

// Contains reports whether t falls inside the period, bounds inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Engine computes solunar data. It holds no state; the zero value is usable
// and all methods are safe for concurrent use.
type Engine struct{}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// MoonPhase returns the moon phase at t.
func (Engine) MoonPhase(t time.Time) MoonPhase {
	days := t.Sub(referenceNewMoon).Hours() / 24

	frac := math.Mod(days/synodicMonth, 1)
	if frac < 0 {
		frac++
	}

	// Triangular illumination: 0 at new, 1 at full.
	illum := 2 * frac
	if frac > 0.5 {
		illum = 2 * (1 - frac)
	}

	return MoonPhase{
		Fraction:     frac,
		Illumination: illum,
		Name:         phaseName(frac),
	}
}

func phaseName(frac float64) PhaseName {
	switch {
	case frac < 0.03 || frac > 0.97:
		return PhaseNew
	case frac < 0.22:
		return PhaseWaxingCrescent
	case frac < 0.28:
		return PhaseFirstQuarter
	case frac < 0.47:
		return PhaseWaxingGibbous
	case frac < 0.53:
		return PhaseFull
	case frac < 0.72:
		return PhaseWaningGibbous
	case frac < 0.78:
		return PhaseLastQuarter
	default:
		return PhaseWaningCrescent
	}
}

// MoonTimes returns the transit, antipodal transit, moonrise, and moonset
// times on the UTC calendar day of t. Longitude is degrees east-positive.
// Latitude is accepted for interface stability but does not influence the
// approximation (rise/set offsets are not latitude-corrected).
func (Engine) MoonTimes(t time.Time, lat, lon float64) MoonTimes {
	_ = lat

	t = t.UTC()
	days := t.Sub(j2000).Hours() / 24

	meanLon := math.Mod(meanLongitudeBase+meanLongitudeRate*days, 360)
	if meanLon < 0 {
		meanLon += 360
	}

	// The moon transits when its longitude lines up with the local meridian;
	// 15 degrees of longitude correspond to one hour.
	transitHour := wrapHour((meanLon-lon)/15 + 12)

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return MoonTimes{
		Transit:          hourOnDay(day, transitHour),
		AntipodalTransit: hourOnDay(day, wrapHour(transitHour+12)),
		Moonrise:         hourOnDay(day, wrapHour(transitHour-riseSetOffsetHours)),
		Moonset:          hourOnDay(day, wrapHour(transitHour+riseSetOffsetHours)),
	}
}

func wrapHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

func hourOnDay(day time.Time, hour float64) time.Time {
	return day.Add(time.Duration(hour * float64(time.Hour)))
}

// Periods returns the four feeding periods for the UTC calendar day of t:
// two major windows (transit, antipodal transit) of ±90 minutes and two
// minor windows (moonrise, moonset) of ±45 minutes.
func (e Engine) Periods(t time.Time, lat, lon float64) []Period {
	mt := e.MoonTimes(t, lat, lon)

	return []Period{
		window(mt.Transit, majorHalfWindow, PeriodMajor),
		window(mt.AntipodalTransit, majorHalfWindow, PeriodMajor),
		window(mt.Moonrise, minorHalfWindow, PeriodMinor),
		window(mt.Moonset, minorHalfWindow, PeriodMinor),
	}
}

func window(center time.Time, half time.Duration, kind PeriodKind) Period {
	return Period{
		Start: center.Add(-half),
		End:   center.Add(half),
		Kind:  kind,
	}
}

// InstantScore rates solunar favorability at an instant on a 0-100 scale.
// Base 50, up to +20 from the moon phase, +30 inside a major period or +15
// inside a minor one.
func (e Engine) InstantScore(t time.Time, lat, lon float64) float64 {
	phase := e.MoonPhase(t)
	score := 50 + phaseBonus(phase.Fraction, 40)

	inMajor, inMinor := false, false
	for _, p := range e.Periods(t, lat, lon) {
		if !p.Contains(t) {
			continue
		}
		if p.Kind == PeriodMajor {
			inMajor = true
		} else {
			inMinor = true
		}
	}

	switch {
	case inMajor:
		score += 30
	case inMinor:
		score += 15
	}

	return clamp(score)
}

// DailyScore rates solunar favorability for a whole day: base 50 plus up to
// +25 from the moon phase. There is no period bonus since a day has no single
// instant to test against the windows.
func (e Engine) DailyScore(t time.Time, lat, lon float64) float64 {
	_, _ = lat, lon
	phase := e.MoonPhase(t)
	return clamp(50 + phaseBonus(phase.Fraction, 50))
}

// phaseBonus grows linearly from zero at a new moon to scale/2 at a full
// moon and back.
func phaseBonus(frac, scale float64) float64 {
	return (0.5 - math.Abs(frac-0.5)) * scale
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
