package models

import "strings"

type Climate string

const (
	ClimateSunny    Climate = "SUNNY"
	ClimateRainy    Climate = "RAINY"
	ClimateCloudy   Climate = "CLOUDY"
	ClimateVariable Climate = "VARIABLE"
)

func ParseClimate(s string) (Climate, bool) {
	c := Climate(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case ClimateSunny, ClimateRainy, ClimateCloudy, ClimateVariable:
		return c, true
	default:
		return "", false
	}
}

type Environment struct {
	ID          string  `json:"id"`
	Climate     Climate `json:"climate"`
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	// Location is a free-text label soft-matched against Region.Name.
	Location string `json:"location"`
}
