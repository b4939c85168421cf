package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := repository.NewMemory()
	return NewService(dir, dir, dir)
}

func TestEnvironmentValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateEnvironment(ctx, EnvironmentDraft{
		Climate: "SUNNY", Temperature: 75, Humidity: 20, Location: "Serra Verde",
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.CreateEnvironment(ctx, EnvironmentDraft{
		Climate: "SUNNY", Temperature: 30, Humidity: 120, Location: "Serra Verde",
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.CreateEnvironment(ctx, EnvironmentDraft{
		Climate: "TROPICAL", Temperature: 30, Humidity: 50, Location: "Serra Verde",
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	env, err := svc.CreateEnvironment(ctx, EnvironmentDraft{
		Climate: "sunny", Temperature: 30, Humidity: 50, Location: "Serra Verde",
	})
	require.NoError(t, err)
	require.Equal(t, models.ClimateSunny, env.Climate)
}

func TestRegionValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRegion(ctx, RegionDraft{
		Name: "Serra Verde", Vegetation: "FOREST", DrynessIndex: 1.2,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.CreateRegion(ctx, RegionDraft{
		Name: "Serra Verde", Vegetation: "TUNDRA", DrynessIndex: 0.5,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	region, err := svc.CreateRegion(ctx, RegionDraft{
		Name: "Serra Verde", Vegetation: "atlantic_forest", DrynessIndex: 0.5,
	})
	require.NoError(t, err)
	require.Equal(t, models.VegetationAtlanticForest, region.Vegetation)
}

func TestRouteValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRoute(ctx, RouteDraft{
		Origin: "Base", Destination: "Serra Verde", EstimatedTime: -1,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.CreateRoute(ctx, RouteDraft{
		Origin: "Base", Destination: "Serra Verde", Distance: -10,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	r, err := svc.CreateRoute(ctx, RouteDraft{
		Origin: "Base", Destination: "Serra Verde", EstimatedTime: 35, Distance: 42.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
}

func TestCatalogNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetEnvironment(ctx, "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.GetRegion(ctx, "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.GetRoute(ctx, "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.DeleteRegion(ctx, "missing")))
}

func TestRegionsByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRegion(ctx, RegionDraft{
		Name: "Serra Verde", Vegetation: "FOREST", DrynessIndex: 0.5,
	})
	require.NoError(t, err)
	_, err = svc.CreateRegion(ctx, RegionDraft{
		Name: "Vale Seco", Vegetation: "SAVANNA", DrynessIndex: 0.9,
	})
	require.NoError(t, err)

	found, err := svc.RegionsByName(ctx, "serra")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Serra Verde", found[0].Name)
}

func TestUpdateEnvironmentRevalidates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	env, err := svc.CreateEnvironment(ctx, EnvironmentDraft{
		Climate: "SUNNY", Temperature: 30, Humidity: 50, Location: "Serra Verde",
	})
	require.NoError(t, err)

	_, err = svc.UpdateEnvironment(ctx, env.ID, EnvironmentDraft{
		Climate: "SUNNY", Temperature: -80, Humidity: 50, Location: "Serra Verde",
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	updated, err := svc.UpdateEnvironment(ctx, env.ID, EnvironmentDraft{
		Climate: "RAINY", Temperature: 22, Humidity: 80, Location: "Serra Verde",
	})
	require.NoError(t, err)
	require.Equal(t, models.ClimateRainy, updated.Climate)
	require.Equal(t, env.ID, updated.ID)
}
