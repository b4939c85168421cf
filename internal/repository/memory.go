package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

// Memory is an in-process Directory used by tests and local experiments. It
// mirrors the sqlite store's semantics: misses return (nil, nil), first-match
// lookups order by id.
type Memory struct {
	mu           sync.Mutex
	users        map[string]models.User
	environments map[string]models.Environment
	regions      map[string]models.Region
	incidents    map[string]models.Incident
	alerts       map[string]models.Alert
	firefighters map[string]models.Firefighter
	officers     map[string]models.Officer
	routes       map[string]models.Route
}

var _ Directory = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:        make(map[string]models.User),
		environments: make(map[string]models.Environment),
		regions:      make(map[string]models.Region),
		incidents:    make(map[string]models.Incident),
		alerts:       make(map[string]models.Alert),
		firefighters: make(map[string]models.Firefighter),
		officers:     make(map[string]models.Officer),
		routes:       make(map[string]models.Route),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Users

func (m *Memory) SaveUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *Memory) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, id := range sortedKeys(m.users) {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *Memory) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

// Environments

func (m *Memory) SaveEnvironment(_ context.Context, e *models.Environment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.environments[e.ID] = *e
	return nil
}

func (m *Memory) EnvironmentByID(_ context.Context, id string) (*models.Environment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.environments[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *Memory) ListEnvironments(_ context.Context) ([]models.Environment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Environment
	for _, id := range sortedKeys(m.environments) {
		out = append(out, m.environments[id])
	}
	return out, nil
}

func (m *Memory) CriticalEnvironments(_ context.Context, maxTemp, maxHumidity float64) ([]models.Environment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Environment
	for _, id := range sortedKeys(m.environments) {
		e := m.environments[id]
		if e.Temperature < maxTemp && e.Humidity < maxHumidity {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) DeleteEnvironment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.environments, id)
	return nil
}

// Regions

func (m *Memory) SaveRegion(_ context.Context, r *models.Region) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions[r.ID] = *r
	return nil
}

func (m *Memory) RegionByID(_ context.Context, id string) (*models.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.regions[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *Memory) RegionByName(_ context.Context, name string) (*models.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range sortedKeys(m.regions) {
		if r := m.regions[id]; r.Name == name {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *Memory) RegionsByName(_ context.Context, fragment string) ([]models.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Region
	for _, id := range sortedKeys(m.regions) {
		if r := m.regions[id]; containsFold(r.Name, fragment) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *Memory) ListRegions(_ context.Context) ([]models.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Region
	for _, id := range sortedKeys(m.regions) {
		out = append(out, m.regions[id])
	}
	return out, nil
}

func (m *Memory) DeleteRegion(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.regions, id)
	return nil
}

// Incidents

func (m *Memory) SaveIncident(_ context.Context, i *models.Incident) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incidents[i.ID] = *i
	return nil
}

func (m *Memory) IncidentByID(_ context.Context, id string) (*models.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.incidents[id]; ok {
		return &i, nil
	}
	return nil, nil
}

func (m *Memory) ListIncidents(_ context.Context) ([]models.Incident, error) {
	return m.filterIncidents(func(models.Incident) bool { return true })
}

func (m *Memory) IncidentsByOrigin(_ context.Context, origin models.Origin) ([]models.Incident, error) {
	return m.filterIncidents(func(i models.Incident) bool { return i.Origin == origin })
}

func (m *Memory) IncidentsByPriority(_ context.Context, priority models.Priority) ([]models.Incident, error) {
	return m.filterIncidents(func(i models.Incident) bool { return i.Priority == priority })
}

func (m *Memory) IncidentsByDescription(_ context.Context, fragment string) ([]models.Incident, error) {
	return m.filterIncidents(func(i models.Incident) bool { return containsFold(i.Description, fragment) })
}

func (m *Memory) IncidentsByRegion(_ context.Context, regionID string) ([]models.Incident, error) {
	return m.filterIncidents(func(i models.Incident) bool { return i.RegionID == regionID })
}

func (m *Memory) filterIncidents(keep func(models.Incident) bool) ([]models.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Incident
	for _, id := range sortedKeys(m.incidents) {
		if i := m.incidents[id]; keep(i) {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *Memory) MostRecentIncidentByRegion(_ context.Context, regionID string) (*models.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *models.Incident
	for _, id := range sortedKeys(m.incidents) {
		i := m.incidents[id]
		if i.RegionID != regionID {
			continue
		}
		if latest == nil || i.Timestamp.After(latest.Timestamp) {
			cp := i
			latest = &cp
		}
	}
	return latest, nil
}

func (m *Memory) DeleteIncident(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.incidents, id)
	return nil
}

// Alerts

func (m *Memory) SaveAlert(_ context.Context, a *models.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts[a.ID] = *a
	return nil
}

func (m *Memory) AlertByID(_ context.Context, id string) (*models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.alerts[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *Memory) ListAlerts(_ context.Context) ([]models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Alert
	for _, id := range sortedKeys(m.alerts) {
		out = append(out, m.alerts[id])
	}
	return out, nil
}

func (m *Memory) AlertsByEnvironment(_ context.Context, environmentID string) ([]models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Alert
	for _, id := range sortedKeys(m.alerts) {
		if a := m.alerts[id]; a.EnvironmentID == environmentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *Memory) MostRecentAlertByEnvironment(_ context.Context, environmentID string) (*models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *models.Alert
	for _, id := range sortedKeys(m.alerts) {
		a := m.alerts[id]
		if a.EnvironmentID != environmentID {
			continue
		}
		if latest == nil || a.Timestamp.After(latest.Timestamp) {
			cp := a
			latest = &cp
		}
	}
	return latest, nil
}

func (m *Memory) DeleteAlert(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.alerts, id)
	return nil
}

// Firefighters

func (m *Memory) SaveFirefighter(_ context.Context, f *models.Firefighter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.firefighters[f.ID] = *f
	return nil
}

func (m *Memory) FirefighterByID(_ context.Context, id string) (*models.Firefighter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.firefighters[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (m *Memory) ListFirefighters(_ context.Context) ([]models.Firefighter, error) {
	return m.filterFirefighters(func(models.Firefighter) bool { return true })
}

func (m *Memory) FirefightersByShift(_ context.Context, shift string) ([]models.Firefighter, error) {
	return m.filterFirefighters(func(f models.Firefighter) bool { return f.Shift == shift })
}

func (m *Memory) FirefightersByName(_ context.Context, fragment string) ([]models.Firefighter, error) {
	return m.filterFirefighters(func(f models.Firefighter) bool { return containsFold(f.Name, fragment) })
}

func (m *Memory) filterFirefighters(keep func(models.Firefighter) bool) ([]models.Firefighter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Firefighter
	for _, id := range sortedKeys(m.firefighters) {
		if f := m.firefighters[id]; keep(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *Memory) FirefighterByUser(_ context.Context, userID string) (*models.Firefighter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range sortedKeys(m.firefighters) {
		f := m.firefighters[id]
		if f.UserID != nil && *f.UserID == userID {
			return &f, nil
		}
	}
	return nil, nil
}

func (m *Memory) FirstFirefighter(_ context.Context) (*models.Firefighter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := sortedKeys(m.firefighters)
	if len(keys) == 0 {
		return nil, nil
	}
	f := m.firefighters[keys[0]]
	return &f, nil
}

func (m *Memory) DeleteFirefighter(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.firefighters, id)
	return nil
}

// Officers

func (m *Memory) SaveOfficer(_ context.Context, o *models.Officer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.officers[o.ID] = *o
	return nil
}

func (m *Memory) OfficerByID(_ context.Context, id string) (*models.Officer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.officers[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (m *Memory) ListOfficers(_ context.Context) ([]models.Officer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Officer
	for _, id := range sortedKeys(m.officers) {
		out = append(out, m.officers[id])
	}
	return out, nil
}

func (m *Memory) OfficersByName(_ context.Context, fragment string) ([]models.Officer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Officer
	for _, id := range sortedKeys(m.officers) {
		if o := m.officers[id]; containsFold(o.Name, fragment) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *Memory) OfficerByBadge(_ context.Context, badge string) (*models.Officer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range sortedKeys(m.officers) {
		if o := m.officers[id]; o.BadgeNumber == badge {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *Memory) OfficerByUser(_ context.Context, userID string) (*models.Officer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range sortedKeys(m.officers) {
		o := m.officers[id]
		if o.UserID != nil && *o.UserID == userID {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *Memory) ExistsByBadgeNumber(_ context.Context, badge, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.officers {
		if o.BadgeNumber == badge && o.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) DeleteOfficer(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.officers, id)
	return nil
}

// Routes

func (m *Memory) SaveRoute(_ context.Context, r *models.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[r.ID] = *r
	return nil
}

func (m *Memory) RouteByID(_ context.Context, id string) (*models.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.routes[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *Memory) ListRoutes(_ context.Context) ([]models.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Route
	for _, id := range sortedKeys(m.routes) {
		out = append(out, m.routes[id])
	}
	return out, nil
}

func (m *Memory) RouteByDestination(_ context.Context, text string) (*models.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range sortedKeys(m.routes) {
		if r := m.routes[id]; containsFold(r.Destination, text) {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *Memory) DeleteRoute(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.routes, id)
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
