package models

// Firefighter and Officer are responder profiles. Each may link to at most one
// user, and a user may hold at most one of the two profiles.

type Firefighter struct {
	ID     string  `json:"id"`
	UserID *string `json:"user_id,omitempty"`
	Name   string  `json:"name"`
	Shift  string  `json:"shift"`
	Phone  string  `json:"phone,omitempty"`
}

type Officer struct {
	ID     string  `json:"id"`
	UserID *string `json:"user_id,omitempty"`
	Name   string  `json:"name"`
	// BadgeNumber is globally unique among officers.
	BadgeNumber string `json:"badge_number"`
	Phone       string `json:"phone,omitempty"`
}
