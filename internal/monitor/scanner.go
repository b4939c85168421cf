// Package monitor runs the periodic threshold scan: environments below both
// thresholds become HIGH-priority incidents and confirmed HIGH alerts, routed
// through the rule engines so the dedup and rate-limit windows apply the same
// as for human submissions.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rmaia/go-wildfire-monitor/internal/alert"
	"github.com/rmaia/go-wildfire-monitor/internal/incident"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

type Config struct {
	Interval          time.Duration
	TempThreshold     float64
	HumidityThreshold float64
}

type Scanner struct {
	cfg          Config
	environments repository.EnvironmentRepository
	regions      repository.RegionRepository
	routes       repository.RouteRepository
	firefighters repository.FirefighterRepository
	incidents    *incident.Engine
	alerts       *alert.Engine
	cron         *cron.Cron
	now          func() time.Time
}

func NewScanner(
	cfg Config,
	environments repository.EnvironmentRepository,
	regions repository.RegionRepository,
	routes repository.RouteRepository,
	firefighters repository.FirefighterRepository,
	incidents *incident.Engine,
	alerts *alert.Engine,
) *Scanner {
	return &Scanner{
		cfg:          cfg,
		environments: environments,
		regions:      regions,
		routes:       routes,
		firefighters: firefighters,
		incidents:    incidents,
		alerts:       alerts,
		now:          time.Now,
	}
}

// WithClock overrides the scanner's notion of now. Tests only.
func (s *Scanner) WithClock(now func() time.Time) *Scanner {
	s.now = now
	return s
}

// Start schedules Tick on the configured interval. SkipIfStillRunning keeps
// ticks from overlapping: a slow directory call delays the next tick.
func (s *Scanner) Start(ctx context.Context) error {
	s.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.cfg.Interval), func() {
		s.Tick(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling scanner: %w", err)
	}
	s.cron.Start()
	slog.Info("threshold scanner started",
		"interval", s.cfg.Interval,
		"temp_threshold", s.cfg.TempThreshold,
		"humidity_threshold", s.cfg.HumidityThreshold)
	return nil
}

// Stop waits for a running tick to finish.
func (s *Scanner) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	slog.Info("threshold scanner stopped")
}

// Tick runs one full sweep. Every environment is processed independently; a
// failure for one (unresolved region, window rejection, missing responder) is
// a diagnostic, never an abort.
func (s *Scanner) Tick(ctx context.Context) {
	envs, err := s.environments.CriticalEnvironments(ctx, s.cfg.TempThreshold, s.cfg.HumidityThreshold)
	if err != nil {
		slog.Error("scanner sweep failed", "error", err)
		return
	}
	slog.Debug("scanner sweep", "critical_environments", len(envs))

	for _, env := range envs {
		s.process(ctx, env)
	}
}

func (s *Scanner) process(ctx context.Context, env models.Environment) {
	region, err := s.regions.RegionByName(ctx, env.Location)
	if err != nil {
		slog.Error("region lookup failed", "location", env.Location, "error", err)
		return
	}
	if region == nil {
		slog.Warn("no region matches environment location", "environment_id", env.ID, "location", env.Location)
		return
	}

	now := s.now()
	inc, err := s.incidents.Create(ctx, incident.Draft{
		Origin: models.OriginSystem,
		Description: fmt.Sprintf(
			"Automatic SENSOR detection: environment at %s with temperature=%.2f and humidity=%.2f",
			env.Location, env.Temperature, env.Humidity),
		RegionID:  region.ID,
		Timestamp: now,
		Priority:  models.PriorityHigh,
	})
	if err != nil {
		slog.Warn("scanner incident rejected", "environment_id", env.ID, "error", err)
		return
	}
	slog.Info("scanner incident created", "incident_id", inc.ID, "region", region.Name)

	ff, err := s.firefighters.FirstFirefighter(ctx)
	if err != nil {
		slog.Error("firefighter lookup failed", "error", err)
		return
	}
	if ff == nil {
		slog.Warn("no firefighter registered, skipping alert", "environment_id", env.ID)
		return
	}

	a, err := s.alerts.Create(ctx, alert.Draft{
		Timestamp:      now,
		RiskLevel:      models.RiskHigh,
		Confirmed:      true,
		EnvironmentID:  env.ID,
		AssignedUserID: ff.UserID,
	})
	if err != nil {
		slog.Warn("scanner alert rejected", "environment_id", env.ID, "error", err)
		return
	}
	slog.Info("scanner alert created", "alert_id", a.ID, "environment_id", env.ID)

	route, err := s.routes.RouteByDestination(ctx, region.Name)
	if err != nil {
		slog.Error("route lookup failed", "region", region.Name, "error", err)
		return
	}
	if route != nil {
		slog.Info("route available for region",
			"region", region.Name, "origin", route.Origin, "destination", route.Destination)
	} else {
		slog.Info("no route registered for region", "region", region.Name)
	}
}
