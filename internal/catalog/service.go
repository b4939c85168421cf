// Package catalog holds the validated CRUD for environments, regions and
// routes. Plain range checks only; the temporal rules live in the incident
// and alert engines.
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

type Service struct {
	environments repository.EnvironmentRepository
	regions      repository.RegionRepository
	routes       repository.RouteRepository
}

func NewService(environments repository.EnvironmentRepository, regions repository.RegionRepository, routes repository.RouteRepository) *Service {
	return &Service{
		environments: environments,
		regions:      regions,
		routes:       routes,
	}
}

// Environments

type EnvironmentDraft struct {
	Climate     string
	Temperature float64
	Humidity    float64
	Location    string
}

func validateEnvironment(d EnvironmentDraft) (models.Climate, error) {
	if d.Temperature < -50 || d.Temperature > 60 {
		return "", apperr.InvalidArgument("temperature out of permitted range")
	}
	if d.Humidity < 0 || d.Humidity > 100 {
		return "", apperr.InvalidArgument("humidity out of permitted range")
	}
	climate, ok := models.ParseClimate(d.Climate)
	if !ok {
		return "", apperr.Newf(apperr.KindInvalidArgument, "invalid climate: %s", d.Climate)
	}
	return climate, nil
}

func (s *Service) CreateEnvironment(ctx context.Context, d EnvironmentDraft) (*models.Environment, error) {
	climate, err := validateEnvironment(d)
	if err != nil {
		return nil, err
	}
	e := &models.Environment{
		ID:          uuid.NewString(),
		Climate:     climate,
		Temperature: d.Temperature,
		Humidity:    d.Humidity,
		Location:    d.Location,
	}
	if err := s.environments.SaveEnvironment(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateEnvironment(ctx context.Context, id string, d EnvironmentDraft) (*models.Environment, error) {
	existing, err := s.environments.EnvironmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("environment not found")
	}
	climate, err := validateEnvironment(d)
	if err != nil {
		return nil, err
	}

	existing.Climate = climate
	existing.Temperature = d.Temperature
	existing.Humidity = d.Humidity
	existing.Location = d.Location

	if err := s.environments.SaveEnvironment(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetEnvironment(ctx context.Context, id string) (*models.Environment, error) {
	e, err := s.environments.EnvironmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("environment not found")
	}
	return e, nil
}

func (s *Service) ListEnvironments(ctx context.Context) ([]models.Environment, error) {
	return s.environments.ListEnvironments(ctx)
}

func (s *Service) DeleteEnvironment(ctx context.Context, id string) error {
	existing, err := s.environments.EnvironmentByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("environment not found")
	}
	return s.environments.DeleteEnvironment(ctx, id)
}

// Regions

type RegionDraft struct {
	Name         string
	Bounds       string
	Vegetation   string
	DrynessIndex float64
}

func validateRegion(d RegionDraft) (models.Vegetation, error) {
	if d.DrynessIndex < 0 || d.DrynessIndex > 1 {
		return "", apperr.InvalidArgument("dryness index must be between 0.0 and 1.0")
	}
	vegetation, ok := models.ParseVegetation(d.Vegetation)
	if !ok {
		return "", apperr.Newf(apperr.KindInvalidArgument, "invalid vegetation type: %s", d.Vegetation)
	}
	return vegetation, nil
}

func (s *Service) CreateRegion(ctx context.Context, d RegionDraft) (*models.Region, error) {
	vegetation, err := validateRegion(d)
	if err != nil {
		return nil, err
	}
	r := &models.Region{
		ID:           uuid.NewString(),
		Name:         d.Name,
		Bounds:       d.Bounds,
		Vegetation:   vegetation,
		DrynessIndex: d.DrynessIndex,
	}
	if err := s.regions.SaveRegion(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) UpdateRegion(ctx context.Context, id string, d RegionDraft) (*models.Region, error) {
	existing, err := s.regions.RegionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("region not found")
	}
	vegetation, err := validateRegion(d)
	if err != nil {
		return nil, err
	}

	existing.Name = d.Name
	existing.Bounds = d.Bounds
	existing.Vegetation = vegetation
	existing.DrynessIndex = d.DrynessIndex

	if err := s.regions.SaveRegion(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetRegion(ctx context.Context, id string) (*models.Region, error) {
	r, err := s.regions.RegionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("region not found")
	}
	return r, nil
}

func (s *Service) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.regions.ListRegions(ctx)
}

func (s *Service) RegionsByName(ctx context.Context, fragment string) ([]models.Region, error) {
	return s.regions.RegionsByName(ctx, fragment)
}

func (s *Service) DeleteRegion(ctx context.Context, id string) error {
	existing, err := s.regions.RegionByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("region not found")
	}
	return s.regions.DeleteRegion(ctx, id)
}

// Routes

type RouteDraft struct {
	Origin        string
	Destination   string
	EstimatedTime float64
	Distance      float64
	Alternatives  string
}

func validateRoute(d RouteDraft) error {
	if d.EstimatedTime < 0 {
		return apperr.InvalidArgument("estimated time cannot be negative")
	}
	if d.Distance < 0 {
		return apperr.InvalidArgument("distance cannot be negative")
	}
	return nil
}

func (s *Service) CreateRoute(ctx context.Context, d RouteDraft) (*models.Route, error) {
	if err := validateRoute(d); err != nil {
		return nil, err
	}
	r := &models.Route{
		ID:            uuid.NewString(),
		Origin:        d.Origin,
		Destination:   d.Destination,
		EstimatedTime: d.EstimatedTime,
		Distance:      d.Distance,
		Alternatives:  d.Alternatives,
	}
	if err := s.routes.SaveRoute(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) UpdateRoute(ctx context.Context, id string, d RouteDraft) (*models.Route, error) {
	existing, err := s.routes.RouteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("route not found")
	}
	if err := validateRoute(d); err != nil {
		return nil, err
	}

	existing.Origin = d.Origin
	existing.Destination = d.Destination
	existing.EstimatedTime = d.EstimatedTime
	existing.Distance = d.Distance
	existing.Alternatives = d.Alternatives

	if err := s.routes.SaveRoute(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	r, err := s.routes.RouteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("route not found")
	}
	return r, nil
}

func (s *Service) ListRoutes(ctx context.Context) ([]models.Route, error) {
	return s.routes.ListRoutes(ctx)
}

func (s *Service) DeleteRoute(ctx context.Context, id string) error {
	existing, err := s.routes.RouteByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("route not found")
	}
	return s.routes.DeleteRoute(ctx, id)
}
