// Package repository defines the directory contract consumed by the engines
// and its sqlite-backed implementation. Lookups that miss return (nil, nil);
// deciding whether a miss is an error belongs to the caller.
package repository

import (
	"context"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

type UserRepository interface {
	SaveUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// ExistsByEmail reports whether a user other than excludeID owns email.
	// Pass excludeID == "" to consider every user.
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	DeleteUser(ctx context.Context, id string) error
}

type EnvironmentRepository interface {
	SaveEnvironment(ctx context.Context, e *models.Environment) error
	EnvironmentByID(ctx context.Context, id string) (*models.Environment, error)
	ListEnvironments(ctx context.Context) ([]models.Environment, error)
	// CriticalEnvironments returns environments with temperature < maxTemp and
	// humidity < maxHumidity.
	CriticalEnvironments(ctx context.Context, maxTemp, maxHumidity float64) ([]models.Environment, error)
	DeleteEnvironment(ctx context.Context, id string) error
}

type RegionRepository interface {
	SaveRegion(ctx context.Context, r *models.Region) error
	RegionByID(ctx context.Context, id string) (*models.Region, error)
	// RegionByName matches the name exactly.
	RegionByName(ctx context.Context, name string) (*models.Region, error)
	// RegionsByName matches a case-insensitive name substring.
	RegionsByName(ctx context.Context, fragment string) ([]models.Region, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	DeleteRegion(ctx context.Context, id string) error
}

type IncidentRepository interface {
	SaveIncident(ctx context.Context, i *models.Incident) error
	IncidentByID(ctx context.Context, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	IncidentsByOrigin(ctx context.Context, origin models.Origin) ([]models.Incident, error)
	IncidentsByPriority(ctx context.Context, priority models.Priority) ([]models.Incident, error)
	// IncidentsByDescription matches a case-insensitive description substring.
	IncidentsByDescription(ctx context.Context, fragment string) ([]models.Incident, error)
	IncidentsByRegion(ctx context.Context, regionID string) ([]models.Incident, error)
	MostRecentIncidentByRegion(ctx context.Context, regionID string) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id string) error
}

type AlertRepository interface {
	SaveAlert(ctx context.Context, a *models.Alert) error
	AlertByID(ctx context.Context, id string) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	AlertsByEnvironment(ctx context.Context, environmentID string) ([]models.Alert, error)
	MostRecentAlertByEnvironment(ctx context.Context, environmentID string) (*models.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
}

type FirefighterRepository interface {
	SaveFirefighter(ctx context.Context, f *models.Firefighter) error
	FirefighterByID(ctx context.Context, id string) (*models.Firefighter, error)
	ListFirefighters(ctx context.Context) ([]models.Firefighter, error)
	FirefightersByShift(ctx context.Context, shift string) ([]models.Firefighter, error)
	// FirefightersByName matches a case-insensitive name substring.
	FirefightersByName(ctx context.Context, fragment string) ([]models.Firefighter, error)
	// FirefighterByUser returns the profile linked to userID, if any.
	FirefighterByUser(ctx context.Context, userID string) (*models.Firefighter, error)
	// FirstFirefighter is the deterministic selection policy: lowest id wins.
	FirstFirefighter(ctx context.Context) (*models.Firefighter, error)
	DeleteFirefighter(ctx context.Context, id string) error
}

type OfficerRepository interface {
	SaveOfficer(ctx context.Context, o *models.Officer) error
	OfficerByID(ctx context.Context, id string) (*models.Officer, error)
	ListOfficers(ctx context.Context) ([]models.Officer, error)
	OfficersByName(ctx context.Context, fragment string) ([]models.Officer, error)
	OfficerByBadge(ctx context.Context, badge string) (*models.Officer, error)
	OfficerByUser(ctx context.Context, userID string) (*models.Officer, error)
	ExistsByBadgeNumber(ctx context.Context, badge, excludeID string) (bool, error)
	DeleteOfficer(ctx context.Context, id string) error
}

type RouteRepository interface {
	SaveRoute(ctx context.Context, r *models.Route) error
	RouteByID(ctx context.Context, id string) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	// RouteByDestination returns a route whose destination contains the given
	// text, case-insensitively.
	RouteByDestination(ctx context.Context, text string) (*models.Route, error)
	DeleteRoute(ctx context.Context, id string) error
}

// Directory groups every repository the system consumes; the sqlite store and
// the in-memory store both satisfy it.
type Directory interface {
	UserRepository
	EnvironmentRepository
	RegionRepository
	IncidentRepository
	AlertRepository
	FirefighterRepository
	OfficerRepository
	RouteRepository
}
