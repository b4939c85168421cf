// Package alert validates, rate-limits and auto-assigns responders on alert
// creation and update.
package alert

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/keylock"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

// rateWindow rejects a second alert of the same risk level for the same
// environment.
const rateWindow = 5 * time.Minute

type Notifier interface {
	AlertCreated(a *models.Alert)
}

type Engine struct {
	alerts       repository.AlertRepository
	environments repository.EnvironmentRepository
	firefighters repository.FirefighterRepository
	notifier     Notifier
	locks        *keylock.KeyedMutex
}

func NewEngine(alerts repository.AlertRepository, environments repository.EnvironmentRepository, firefighters repository.FirefighterRepository, notifier Notifier) *Engine {
	return &Engine{
		alerts:       alerts,
		environments: environments,
		firefighters: firefighters,
		notifier:     notifier,
		locks:        keylock.New(),
	}
}

type Draft struct {
	Timestamp      time.Time
	RiskLevel      models.RiskLevel
	Confirmed      bool
	EnvironmentID  string
	AssignedUserID *string
}

func validate(d Draft) error {
	if _, ok := models.ParseRiskLevel(string(d.RiskLevel)); !ok {
		return apperr.Newf(apperr.KindInvalidArgument, "invalid risk level: %s", d.RiskLevel)
	}
	if d.Confirmed && d.RiskLevel == models.RiskLow {
		return apperr.InvalidArgument("a confirmed alert cannot carry LOW risk")
	}
	return nil
}

func (e *Engine) Create(ctx context.Context, d Draft) (*models.Alert, error) {
	env, err := e.environments.EnvironmentByID(ctx, d.EnvironmentID)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, apperr.NotFound("environment not found")
	}

	if err := validate(d); err != nil {
		return nil, err
	}

	// Window check and save are atomic per environment.
	e.locks.Lock(env.ID)
	defer e.locks.Unlock(env.ID)

	last, err := e.alerts.MostRecentAlertByEnvironment(ctx, env.ID)
	if err != nil {
		return nil, err
	}
	if last != nil &&
		d.Timestamp.Sub(last.Timestamp) < rateWindow &&
		strings.EqualFold(string(last.RiskLevel), string(d.RiskLevel)) {
		return nil, apperr.Conflict("duplicate risk level within window")
	}

	assigned := d.AssignedUserID
	if d.Confirmed {
		// Auto-assign the first firefighter's linked user; no firefighter or
		// no link simply leaves the alert unassigned.
		ff, err := e.firefighters.FirstFirefighter(ctx)
		if err != nil {
			return nil, err
		}
		if ff != nil && ff.UserID != nil {
			assigned = ff.UserID
		}
	}

	a := &models.Alert{
		ID:             uuid.NewString(),
		Timestamp:      d.Timestamp,
		RiskLevel:      d.RiskLevel,
		Confirmed:      d.Confirmed,
		EnvironmentID:  env.ID,
		AssignedUserID: assigned,
	}
	if err := e.alerts.SaveAlert(ctx, a); err != nil {
		return nil, err
	}

	if e.notifier != nil {
		e.notifier.AlertCreated(a)
	}
	return a, nil
}

// Update replaces the alert wholesale: no rate-limit re-check, no
// re-assignment, the caller controls the responder.
func (e *Engine) Update(ctx context.Context, id string, d Draft) (*models.Alert, error) {
	existing, err := e.alerts.AlertByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("alert not found")
	}

	env, err := e.environments.EnvironmentByID(ctx, d.EnvironmentID)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, apperr.NotFound("environment not found")
	}

	if err := validate(d); err != nil {
		return nil, err
	}

	existing.Timestamp = d.Timestamp
	existing.RiskLevel = d.RiskLevel
	existing.Confirmed = d.Confirmed
	existing.EnvironmentID = env.ID
	existing.AssignedUserID = d.AssignedUserID

	if err := e.alerts.SaveAlert(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (e *Engine) Delete(ctx context.Context, id string) error {
	existing, err := e.alerts.AlertByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("alert not found")
	}
	return e.alerts.DeleteAlert(ctx, id)
}

func (e *Engine) Get(ctx context.Context, id string) (*models.Alert, error) {
	a, err := e.alerts.AlertByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("alert not found")
	}
	return a, nil
}

func (e *Engine) List(ctx context.Context) ([]models.Alert, error) {
	return e.alerts.ListAlerts(ctx)
}

// ByEnvironment fails NotFound when the environment id itself is unknown.
func (e *Engine) ByEnvironment(ctx context.Context, environmentID string) ([]models.Alert, error) {
	env, err := e.environments.EnvironmentByID(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, apperr.NotFound("environment not found")
	}
	return e.alerts.AlertsByEnvironment(ctx, environmentID)
}
