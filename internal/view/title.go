package view

import (
	"strings"

	"runmap/internal/activity"
	"runmap/internal/location"
)

// Display titles for synthesized activity names.
const (
	FullMarathonTitle = "Full Marathon"
	HalfMarathonTitle = "Half Marathon"

	MorningRunTitle   = "Morning Run"
	MiddayRunTitle    = "Midday Run"
	AfternoonRunTitle = "Afternoon Run"
	EveningRunTitle   = "Evening Run"
	NightRunTitle     = "Night Run"

	MorningRideTitle   = "Morning Ride"
	MiddayRideTitle    = "Midday Ride"
	AfternoonRideTitle = "Afternoon Ride"
	EveningRideTitle   = "Evening Ride"
	NightRideTitle     = "Night Ride"

	RunGenericTitle   = "Run"
	TrailRunTitle     = "Trail Run"
	TreadmillRunTitle = "Treadmill Run"
	HikingTitle       = "Hiking"
	CyclingTitle      = "Cycling"
	SkiingTitle       = "Skiing"
	WalkingTitle      = "Walking"
)

// SportFor classifies an activity's sport from its type and subtype.
// Generic runs at marathon distances classify as the marathon title
// instead of the plain run title.
func SportFor(a *activity.Activity) string {
	if a == nil {
		return ""
	}
	switch {
	case a.Type == "Run":
		switch a.Subtype {
		case "generic":
			km := a.Distance / 1000.0
			if km > 20 && km < 40 {
				return HalfMarathonTitle
			}
			if km >= 40 {
				return FullMarathonTitle
			}
			return RunGenericTitle
		case "trail":
			return TrailRunTitle
		case "treadmill":
			return TreadmillRunTitle
		default:
			return RunGenericTitle
		}
	case a.Type == "hiking":
		return HikingTitle
	case a.Type == "cycling" || a.Type == "Ride":
		return CyclingTitle
	case a.Type == "walking":
		return WalkingTitle
	case strings.Contains(a.Type, "skiing"):
		return SkiingTitle
	}
	return ""
}

// Titler synthesizes display titles for activities. With Rich enabled it
// produces garmin-style time-of-day titles; otherwise explicit names win
// and the synthesized forms are a fallback.
type Titler struct {
	Rich     bool
	Resolver *location.Resolver
}

// TitleFor returns the display title for an activity. It never fails; a
// nil activity yields "".
func (t *Titler) TitleFor(a *activity.Activity) string {
	if a == nil {
		return ""
	}
	sport := SportFor(a)
	hour := a.LocalHour()

	if t.Rich {
		if sport == CyclingTitle {
			return timeOfDayTitle(hour,
				MorningRideTitle, MiddayRideTitle, AfternoonRideTitle, EveningRideTitle, NightRideTitle)
		}
		if sport == RunGenericTitle || sport == TrailRunTitle || sport == TreadmillRunTitle {
			km := a.Distance / 1000.0
			if km > 20 && km < 40 {
				return HalfMarathonTitle
			}
			if km >= 40 {
				return FullMarathonTitle
			}
			return timeOfDayTitle(hour,
				MorningRunTitle, MiddayRunTitle, AfternoonRunTitle, EveningRunTitle, NightRunTitle)
		}
		if a.Name != "" {
			return a.Name
		}
		return sport
	}

	if a.Name != "" {
		return a.Name
	}
	if t.Resolver != nil {
		if city := t.Resolver.Resolve(a).City; city != "" && sport != "" {
			return city + " " + sport
		}
	}
	km := a.Distance / 1000.0
	if km > 20 && km < 40 {
		return HalfMarathonTitle
	}
	if km >= 40 {
		return FullMarathonTitle
	}
	return timeOfDayTitle(hour,
		MorningRunTitle, MiddayRunTitle, AfternoonRunTitle, EveningRunTitle, NightRunTitle)
}

// timeOfDayTitle buckets the 24-hour clock into five ranges. The upper
// bound of each bucket is inclusive; anything outside [0,21], including
// the -1 bad-data sentinel, lands in the night bucket.
func timeOfDayTitle(hour int, morning, midday, afternoon, evening, night string) string {
	switch {
	case hour >= 0 && hour <= 10:
		return morning
	case hour > 10 && hour <= 14:
		return midday
	case hour > 14 && hour <= 18:
		return afternoon
	case hour > 18 && hour <= 21:
		return evening
	default:
		return night
	}
}
