package models

import (
	"strings"
	"time"
)

type Origin string

const (
	OriginUser   Origin = "USER"
	OriginSystem Origin = "SYSTEM"
)

func ParseOrigin(s string) (Origin, bool) {
	o := Origin(strings.ToUpper(strings.TrimSpace(s)))
	switch o {
	case OriginUser, OriginSystem:
		return o, true
	default:
		return "", false
	}
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	default:
		return "", false
	}
}

// Incident is a reported or auto-detected event requiring response, tied to a
// region. Origin is immutable once created.
type Incident struct {
	ID          string    `json:"id"`
	Origin      Origin    `json:"origin"`
	Description string    `json:"description"`
	RegionID    string    `json:"region_id"`
	Timestamp   time.Time `json:"timestamp"`
	Priority    Priority  `json:"priority"`
}
