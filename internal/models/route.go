package models

// Route is a flat keyed record; no pathfinding happens here. The scanner
// matches Destination against region names by substring.
type Route struct {
	ID            string  `json:"id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	EstimatedTime float64 `json:"estimated_time"` // minutes
	Distance      float64 `json:"distance"`       // km
	Alternatives  string  `json:"alternatives,omitempty"`
}
