package incident

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *repository.Memory) {
	t.Helper()
	dir := repository.NewMemory()
	eng := NewEngine(dir, dir, dir, nil).WithClock(func() time.Time { return testNow })
	return eng, dir
}

func seedRegion(t *testing.T, dir *repository.Memory, id string, dryness float64) {
	t.Helper()
	err := dir.SaveRegion(context.Background(), &models.Region{
		ID:           id,
		Name:         "Serra Verde",
		Vegetation:   models.VegetationForest,
		DrynessIndex: dryness,
	})
	require.NoError(t, err)
}

func TestCreateUnknownRegion(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "smoke sighted",
		RegionID:    "missing",
		Timestamp:   testNow,
		Priority:    models.PriorityLow,
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateFutureTimestampRejected(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)

	_, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "smoke sighted",
		RegionID:    "r1",
		Timestamp:   testNow.Add(time.Hour),
		Priority:    models.PriorityLow,
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestCreateSystemRequiresSensorReference(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)

	_, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginSystem,
		Description: "automatic detection without the magic word",
		RegionID:    "r1",
		Timestamp:   testNow,
		Priority:    models.PriorityHigh,
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	// Any casing of the token passes.
	inc, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginSystem,
		Description: "automatic sensor detection",
		RegionID:    "r1",
		Timestamp:   testNow,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)
	require.Equal(t, models.OriginSystem, inc.Origin)
}

func TestCreateDrynessEscalation(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "dry", 0.9)
	seedRegion(t, dir, "wet", 0.8)

	inc, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "small brush fire",
		RegionID:    "dry",
		Timestamp:   testNow,
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)
	require.Equal(t, models.PriorityMedium, inc.Priority)

	// Boundary value 0.8 does not escalate.
	inc, err = eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "small brush fire",
		RegionID:    "wet",
		Timestamp:   testNow,
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)
	require.Equal(t, models.PriorityLow, inc.Priority)
}

func TestCreateDrynessNeverEscalatesAboveMedium(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "dry", 0.95)

	inc, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "crown fire spreading",
		RegionID:    "dry",
		Timestamp:   testNow,
		Priority:    models.PriorityMedium,
	})
	require.NoError(t, err)
	require.Equal(t, models.PriorityMedium, inc.Priority)
}

func TestCreateDuplicateWindow(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)

	base := testNow.Add(-time.Hour)
	_, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "Smoke near the ridge",
		RegionID:    "r1",
		Timestamp:   base,
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)

	// Same description (case-insensitive) 9 minutes later is a duplicate.
	_, err = eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "SMOKE NEAR THE RIDGE",
		RegionID:    "r1",
		Timestamp:   base.Add(9 * time.Minute),
		Priority:    models.PriorityLow,
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Different description inside the window passes.
	_, err = eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "flames visible from the road",
		RegionID:    "r1",
		Timestamp:   base.Add(9 * time.Minute),
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)
}

func TestCreateDuplicateOutsideWindow(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)

	base := testNow.Add(-time.Hour)
	_, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "smoke near the ridge",
		RegionID:    "r1",
		Timestamp:   base,
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)

	_, err = eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "smoke near the ridge",
		RegionID:    "r1",
		Timestamp:   base.Add(11 * time.Minute),
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)
}

func TestCreateDuplicateInOtherRegionAllowed(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)
	seedRegion(t, dir, "r2", 0.3)

	base := testNow.Add(-time.Hour)
	for _, region := range []string{"r1", "r2"} {
		_, err := eng.Create(context.Background(), Draft{
			Origin:      models.OriginUser,
			Description: "smoke near the ridge",
			RegionID:    region,
			Timestamp:   base,
			Priority:    models.PriorityLow,
		})
		require.NoError(t, err)
	}
}

func TestUpdateRevalidatesButSkipsWindow(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.9)

	base := testNow.Add(-time.Hour)
	inc, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "smoke near the ridge",
		RegionID:    "r1",
		Timestamp:   base,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)

	// Updating to the same description a minute later is fine; the duplicate
	// window only guards creation.
	updated, err := eng.Update(context.Background(), inc.ID, Draft{
		Origin:      models.OriginUser,
		Description: "smoke near the ridge",
		RegionID:    "r1",
		Timestamp:   base.Add(time.Minute),
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)
	// Dryness escalation re-applies on update.
	require.Equal(t, models.PriorityMedium, updated.Priority)

	// But the SENSOR rule still holds.
	_, err = eng.Update(context.Background(), inc.ID, Draft{
		Origin:      models.OriginSystem,
		Description: "no token here",
		RegionID:    "r1",
		Timestamp:   base,
		Priority:    models.PriorityHigh,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestUpdateUnknownIncident(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)

	_, err := eng.Update(context.Background(), "missing", Draft{
		Origin:      models.OriginUser,
		Description: "smoke",
		RegionID:    "r1",
		Timestamp:   testNow,
		Priority:    models.PriorityLow,
	})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestByRegionUnknownRegion(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.ByRegion(context.Background(), "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteUnknownIncident(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.Delete(context.Background(), "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestLookupsFilter(t *testing.T) {
	eng, dir := newTestEngine(t)
	seedRegion(t, dir, "r1", 0.3)

	base := testNow.Add(-2 * time.Hour)
	_, err := eng.Create(context.Background(), Draft{
		Origin:      models.OriginUser,
		Description: "smoke near the ridge",
		RegionID:    "r1",
		Timestamp:   base,
		Priority:    models.PriorityLow,
	})
	require.NoError(t, err)
	_, err = eng.Create(context.Background(), Draft{
		Origin:      models.OriginSystem,
		Description: "automatic SENSOR detection at the valley",
		RegionID:    "r1",
		Timestamp:   base.Add(30 * time.Minute),
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)

	byOrigin, err := eng.ByOrigin(context.Background(), models.OriginSystem)
	require.NoError(t, err)
	require.Len(t, byOrigin, 1)

	byPriority, err := eng.ByPriority(context.Background(), models.PriorityLow)
	require.NoError(t, err)
	require.Len(t, byPriority, 1)

	byDescription, err := eng.ByDescription(context.Background(), "RIDGE")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)

	byRegion, err := eng.ByRegion(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, byRegion, 2)
}
