package domain

// Weather represents the playing conditions recorded for a single hole.
type Weather string

const (
	WeatherDry   Weather = "Dry"
	WeatherWet   Weather = "Wet"
	WeatherWindy Weather = "Windy"
	WeatherOther Weather = "Other"
)

func (w Weather) String() string { return string(w) }

func (w Weather) IsValid() bool {
	switch w {
	case WeatherDry, WeatherWet, WeatherWindy, WeatherOther:
		return true
	}
	return false
}

// Weathers lists all valid weather values in display order.
func Weathers() []Weather {
	return []Weather{WeatherDry, WeatherWet, WeatherWindy, WeatherOther}
}
