package models

import (
	"strings"
	"time"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

func ParseRiskLevel(s string) (RiskLevel, bool) {
	r := RiskLevel(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return r, true
	default:
		return "", false
	}
}

// Alert is a risk notification tied to an environment, optionally assigned to
// a responder's user account.
type Alert struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Confirmed      bool      `json:"confirmed"`
	EnvironmentID  string    `json:"environment_id"`
	AssignedUserID *string   `json:"assigned_user_id,omitempty"`
}
