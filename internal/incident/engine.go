// Package incident validates, deduplicates and prioritizes incident
// creation and update requests.
package incident

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/keylock"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

// dedupWindow suppresses a second incident with the same description in the
// same region.
const dedupWindow = 10 * time.Minute

// sensorToken must appear (any case) in every system-originated description.
const sensorToken = "SENSOR"

// drynessEscalation is the region dryness index above which LOW drafts are
// raised to MEDIUM.
const drynessEscalation = 0.8

// Notifier receives created incidents for out-of-band delivery. Nil-safe at
// the engine level: a nil Notifier disables delivery.
type Notifier interface {
	IncidentCreated(i *models.Incident)
}

type Engine struct {
	incidents    repository.IncidentRepository
	regions      repository.RegionRepository
	firefighters repository.FirefighterRepository
	notifier     Notifier
	locks        *keylock.KeyedMutex
	now          func() time.Time
}

func NewEngine(incidents repository.IncidentRepository, regions repository.RegionRepository, firefighters repository.FirefighterRepository, notifier Notifier) *Engine {
	return &Engine{
		incidents:    incidents,
		regions:      regions,
		firefighters: firefighters,
		notifier:     notifier,
		locks:        keylock.New(),
		now:          time.Now,
	}
}

// WithClock overrides the engine's notion of now. Tests only.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

type Draft struct {
	Origin      models.Origin
	Description string
	RegionID    string
	Timestamp   time.Time
	Priority    models.Priority
}

// validate runs the timestamp and origin/description checks shared by create
// and update.
func (e *Engine) validate(d Draft) error {
	if _, ok := models.ParseOrigin(string(d.Origin)); !ok {
		return apperr.Newf(apperr.KindInvalidArgument, "invalid origin: %s", d.Origin)
	}
	if _, ok := models.ParsePriority(string(d.Priority)); !ok {
		return apperr.Newf(apperr.KindInvalidArgument, "invalid priority: %s", d.Priority)
	}
	if d.Timestamp.After(e.now()) {
		return apperr.InvalidArgument("incident timestamp cannot be in the future")
	}
	if d.Origin == models.OriginSystem && !strings.Contains(strings.ToUpper(d.Description), sensorToken) {
		return apperr.InvalidArgument("system incident description must reference a SENSOR reading")
	}
	return nil
}

// escalate applies the dryness rule: LOW drafts in very dry regions become
// MEDIUM. Never downgrades, never pushes MEDIUM to HIGH.
func escalate(priority models.Priority, region *models.Region) models.Priority {
	if region.DrynessIndex > drynessEscalation && priority == models.PriorityLow {
		return models.PriorityMedium
	}
	return priority
}

func (e *Engine) Create(ctx context.Context, d Draft) (*models.Incident, error) {
	region, err := e.regions.RegionByID(ctx, d.RegionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, apperr.NotFound("region not found")
	}

	if err := e.validate(d); err != nil {
		return nil, err
	}

	d.Priority = escalate(d.Priority, region)

	// The window check and the save must be atomic per region, or two
	// concurrent duplicates both pass the read.
	e.locks.Lock(region.ID)
	defer e.locks.Unlock(region.ID)

	last, err := e.incidents.MostRecentIncidentByRegion(ctx, region.ID)
	if err != nil {
		return nil, err
	}
	if last != nil &&
		d.Timestamp.Sub(last.Timestamp) < dedupWindow &&
		strings.EqualFold(last.Description, d.Description) {
		return nil, apperr.Conflict("duplicate incident in window")
	}

	inc := &models.Incident{
		ID:          uuid.NewString(),
		Origin:      d.Origin,
		Description: d.Description,
		RegionID:    region.ID,
		Timestamp:   d.Timestamp,
		Priority:    d.Priority,
	}
	if err := e.incidents.SaveIncident(ctx, inc); err != nil {
		return nil, err
	}

	// Best-effort responder pre-selection for HIGH priority; absence never
	// fails the create.
	if inc.Priority == models.PriorityHigh {
		if ff, err := e.firefighters.FirstFirefighter(ctx); err == nil && ff != nil {
			slog.Info("responder pre-selected for high-priority incident",
				"incident_id", inc.ID, "firefighter_id", ff.ID)
		}
	}

	if e.notifier != nil {
		e.notifier.IncidentCreated(inc)
	}
	return inc, nil
}

// Update re-runs the timestamp and SENSOR checks and the dryness escalation,
// but not the duplicate window.
func (e *Engine) Update(ctx context.Context, id string, d Draft) (*models.Incident, error) {
	existing, err := e.incidents.IncidentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("incident not found")
	}

	if err := e.validate(d); err != nil {
		return nil, err
	}

	region, err := e.regions.RegionByID(ctx, d.RegionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, apperr.NotFound("region not found")
	}

	existing.Origin = d.Origin
	existing.Description = d.Description
	existing.RegionID = region.ID
	existing.Timestamp = d.Timestamp
	existing.Priority = escalate(d.Priority, region)

	if err := e.incidents.SaveIncident(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (e *Engine) Delete(ctx context.Context, id string) error {
	existing, err := e.incidents.IncidentByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("incident not found")
	}
	return e.incidents.DeleteIncident(ctx, id)
}

func (e *Engine) Get(ctx context.Context, id string) (*models.Incident, error) {
	inc, err := e.incidents.IncidentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, apperr.NotFound("incident not found")
	}
	return inc, nil
}

func (e *Engine) List(ctx context.Context) ([]models.Incident, error) {
	return e.incidents.ListIncidents(ctx)
}

func (e *Engine) ByOrigin(ctx context.Context, origin models.Origin) ([]models.Incident, error) {
	return e.incidents.IncidentsByOrigin(ctx, origin)
}

func (e *Engine) ByPriority(ctx context.Context, priority models.Priority) ([]models.Incident, error) {
	return e.incidents.IncidentsByPriority(ctx, priority)
}

func (e *Engine) ByDescription(ctx context.Context, fragment string) ([]models.Incident, error) {
	return e.incidents.IncidentsByDescription(ctx, fragment)
}

// ByRegion fails NotFound when the region id itself is unknown.
func (e *Engine) ByRegion(ctx context.Context, regionID string) ([]models.Incident, error) {
	region, err := e.regions.RegionByID(ctx, regionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, apperr.NotFound("region not found")
	}
	return e.incidents.IncidentsByRegion(ctx, regionID)
}
