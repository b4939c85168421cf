package models

import "strings"

type Vegetation string

const (
	VegetationForest         Vegetation = "FOREST"
	VegetationSavanna        Vegetation = "SAVANNA"
	VegetationScrubland      Vegetation = "SCRUBLAND"
	VegetationAtlanticForest Vegetation = "ATLANTIC_FOREST"
)

func ParseVegetation(s string) (Vegetation, bool) {
	v := Vegetation(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case VegetationForest, VegetationSavanna, VegetationScrubland, VegetationAtlanticForest:
		return v, true
	default:
		return "", false
	}
}

type Region struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Bounds     string     `json:"bounds"`
	Vegetation Vegetation `json:"vegetation"`
	// DrynessIndex scores wildfire propensity in [0,1].
	DrynessIndex float64 `json:"dryness_index"`
}
