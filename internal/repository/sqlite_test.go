package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Secret: "hash", Role: models.RoleAdmin}
	if err := db.SaveUser(ctx, u); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	got, err := db.UserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("UserByID failed: %v", err)
	}
	if got == nil || got.Email != "ana@example.com" || got.Role != models.RoleAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Upsert keeps the row unique.
	u.Name = "Ana Paula"
	if err := db.SaveUser(ctx, u); err != nil {
		t.Fatalf("SaveUser (update) failed: %v", err)
	}
	users, err := db.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Ana Paula" {
		t.Fatalf("unexpected users: %+v", users)
	}

	missing, err := db.UserByID(ctx, "nope")
	if err != nil {
		t.Fatalf("UserByID (miss) failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user, got %+v", missing)
	}
}

func TestExistsByEmailExcludes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.SaveUser(ctx, &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Secret: "h", Role: models.RoleGuest}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	exists, err := db.ExistsByEmail(ctx, "ana@example.com", "")
	if err != nil || !exists {
		t.Fatalf("expected email to exist, got exists=%v err=%v", exists, err)
	}

	exists, err = db.ExistsByEmail(ctx, "ana@example.com", "u1")
	if err != nil || exists {
		t.Fatalf("expected own email to be excluded, got exists=%v err=%v", exists, err)
	}
}

func TestMostRecentIncidentByRegion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	for i, ts := range []time.Time{base, base.Add(30 * time.Minute), base.Add(10 * time.Minute)} {
		inc := &models.Incident{
			ID:          string(rune('a' + i)),
			Origin:      models.OriginUser,
			Description: "smoke",
			RegionID:    "r1",
			Timestamp:   ts,
			Priority:    models.PriorityLow,
		}
		if err := db.SaveIncident(ctx, inc); err != nil {
			t.Fatalf("SaveIncident failed: %v", err)
		}
	}

	got, err := db.MostRecentIncidentByRegion(ctx, "r1")
	if err != nil {
		t.Fatalf("MostRecentIncidentByRegion failed: %v", err)
	}
	if got == nil || !got.Timestamp.Equal(base.Add(30*time.Minute)) {
		t.Fatalf("unexpected most recent incident: %+v", got)
	}

	none, err := db.MostRecentIncidentByRegion(ctx, "other")
	if err != nil {
		t.Fatalf("MostRecentIncidentByRegion (miss) failed: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil for empty region, got %+v", none)
	}
}

func TestMostRecentAlertByEnvironment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	uid := "user-1"
	alerts := []*models.Alert{
		{ID: "a1", Timestamp: base, RiskLevel: models.RiskLow, EnvironmentID: "e1"},
		{ID: "a2", Timestamp: base.Add(3 * time.Minute), RiskLevel: models.RiskHigh, Confirmed: true, EnvironmentID: "e1", AssignedUserID: &uid},
		{ID: "a3", Timestamp: base.Add(time.Hour), RiskLevel: models.RiskMedium, EnvironmentID: "e2"},
	}
	for _, a := range alerts {
		if err := db.SaveAlert(ctx, a); err != nil {
			t.Fatalf("SaveAlert failed: %v", err)
		}
	}

	got, err := db.MostRecentAlertByEnvironment(ctx, "e1")
	if err != nil {
		t.Fatalf("MostRecentAlertByEnvironment failed: %v", err)
	}
	if got == nil || got.ID != "a2" {
		t.Fatalf("unexpected most recent alert: %+v", got)
	}
	if got.AssignedUserID == nil || *got.AssignedUserID != uid {
		t.Fatalf("assigned user lost in round trip: %+v", got)
	}
	if !got.Confirmed {
		t.Fatal("confirmed flag lost in round trip")
	}
}

func TestIncidentFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{ID: "i1", Origin: models.OriginUser, Description: "Smoke near the ridge", RegionID: "r1", Timestamp: base, Priority: models.PriorityLow},
		{ID: "i2", Origin: models.OriginSystem, Description: "Automatic SENSOR detection", RegionID: "r1", Timestamp: base.Add(time.Hour), Priority: models.PriorityHigh},
		{ID: "i3", Origin: models.OriginUser, Description: "flames on the hillside", RegionID: "r2", Timestamp: base, Priority: models.PriorityHigh},
	}
	for _, inc := range incidents {
		if err := db.SaveIncident(ctx, inc); err != nil {
			t.Fatalf("SaveIncident failed: %v", err)
		}
	}

	byOrigin, err := db.IncidentsByOrigin(ctx, models.OriginSystem)
	if err != nil || len(byOrigin) != 1 || byOrigin[0].ID != "i2" {
		t.Fatalf("IncidentsByOrigin: got %+v err=%v", byOrigin, err)
	}

	byPriority, err := db.IncidentsByPriority(ctx, models.PriorityHigh)
	if err != nil || len(byPriority) != 2 {
		t.Fatalf("IncidentsByPriority: got %+v err=%v", byPriority, err)
	}

	// Case-insensitive substring.
	byDesc, err := db.IncidentsByDescription(ctx, "SMOKE")
	if err != nil || len(byDesc) != 1 || byDesc[0].ID != "i1" {
		t.Fatalf("IncidentsByDescription: got %+v err=%v", byDesc, err)
	}

	byRegion, err := db.IncidentsByRegion(ctx, "r1")
	if err != nil || len(byRegion) != 2 {
		t.Fatalf("IncidentsByRegion: got %+v err=%v", byRegion, err)
	}
}

func TestCriticalEnvironments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	envs := []*models.Environment{
		{ID: "dry", Climate: models.ClimateSunny, Temperature: 20, Humidity: 10, Location: "Serra Verde"},
		{ID: "warm", Climate: models.ClimateSunny, Temperature: 45, Humidity: 10, Location: "Vale"},
		{ID: "humid", Climate: models.ClimateRainy, Temperature: 20, Humidity: 60, Location: "Mata"},
	}
	for _, e := range envs {
		if err := db.SaveEnvironment(ctx, e); err != nil {
			t.Fatalf("SaveEnvironment failed: %v", err)
		}
	}

	// Both readings must sit below their thresholds.
	critical, err := db.CriticalEnvironments(ctx, 40, 15)
	if err != nil {
		t.Fatalf("CriticalEnvironments failed: %v", err)
	}
	if len(critical) != 1 || critical[0].ID != "dry" {
		t.Fatalf("unexpected critical environments: %+v", critical)
	}
}

func TestRegionLookups(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	regions := []*models.Region{
		{ID: "r1", Name: "Serra Verde", Vegetation: models.VegetationForest, DrynessIndex: 0.4},
		{ID: "r2", Name: "Serra Azul", Vegetation: models.VegetationSavanna, DrynessIndex: 0.9},
	}
	for _, r := range regions {
		if err := db.SaveRegion(ctx, r); err != nil {
			t.Fatalf("SaveRegion failed: %v", err)
		}
	}

	exact, err := db.RegionByName(ctx, "Serra Verde")
	if err != nil || exact == nil || exact.ID != "r1" {
		t.Fatalf("RegionByName: got %+v err=%v", exact, err)
	}

	miss, err := db.RegionByName(ctx, "Serra")
	if err != nil || miss != nil {
		t.Fatalf("RegionByName should match exactly: got %+v err=%v", miss, err)
	}

	matches, err := db.RegionsByName(ctx, "serra")
	if err != nil || len(matches) != 2 {
		t.Fatalf("RegionsByName: got %+v err=%v", matches, err)
	}
}

func TestFirstFirefighterOrdersByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	none, err := db.FirstFirefighter(ctx)
	if err != nil || none != nil {
		t.Fatalf("expected nil on empty table, got %+v err=%v", none, err)
	}

	uid := "user-2"
	firefighters := []*models.Firefighter{
		{ID: "ff-b", UserID: &uid, Name: "Bruna", Shift: "NIGHT"},
		{ID: "ff-a", Name: "Alda", Shift: "DAY"},
	}
	for _, f := range firefighters {
		if err := db.SaveFirefighter(ctx, f); err != nil {
			t.Fatalf("SaveFirefighter failed: %v", err)
		}
	}

	first, err := db.FirstFirefighter(ctx)
	if err != nil {
		t.Fatalf("FirstFirefighter failed: %v", err)
	}
	if first == nil || first.ID != "ff-a" {
		t.Fatalf("expected lowest id first, got %+v", first)
	}
	if first.UserID != nil {
		t.Fatalf("expected nil user link, got %v", *first.UserID)
	}
}

func TestFirefighterByUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uid := "user-1"
	if err := db.SaveFirefighter(ctx, &models.Firefighter{ID: "ff-1", UserID: &uid, Name: "Alda", Shift: "DAY"}); err != nil {
		t.Fatalf("SaveFirefighter failed: %v", err)
	}

	got, err := db.FirefighterByUser(ctx, "user-1")
	if err != nil || got == nil || got.ID != "ff-1" {
		t.Fatalf("FirefighterByUser: got %+v err=%v", got, err)
	}

	miss, err := db.FirefighterByUser(ctx, "user-9")
	if err != nil || miss != nil {
		t.Fatalf("expected nil for unlinked user, got %+v err=%v", miss, err)
	}
}

func TestOfficerBadgeLookups(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.SaveOfficer(ctx, &models.Officer{ID: "o1", Name: "Silva", BadgeNumber: "B-100"}); err != nil {
		t.Fatalf("SaveOfficer failed: %v", err)
	}

	got, err := db.OfficerByBadge(ctx, "B-100")
	if err != nil || got == nil || got.ID != "o1" {
		t.Fatalf("OfficerByBadge: got %+v err=%v", got, err)
	}

	exists, err := db.ExistsByBadgeNumber(ctx, "B-100", "")
	if err != nil || !exists {
		t.Fatalf("expected badge to exist, got exists=%v err=%v", exists, err)
	}
	exists, err = db.ExistsByBadgeNumber(ctx, "B-100", "o1")
	if err != nil || exists {
		t.Fatalf("expected own badge to be excluded, got exists=%v err=%v", exists, err)
	}
}

func TestRouteByDestination(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	routes := []*models.Route{
		{ID: "rt1", Origin: "Base Norte", Destination: "Serra Verde", EstimatedTime: 35, Distance: 42},
		{ID: "rt2", Origin: "Base Sul", Destination: "Vale Seco", EstimatedTime: 20, Distance: 18},
	}
	for _, r := range routes {
		if err := db.SaveRoute(ctx, r); err != nil {
			t.Fatalf("SaveRoute failed: %v", err)
		}
	}

	got, err := db.RouteByDestination(ctx, "serra")
	if err != nil || got == nil || got.ID != "rt1" {
		t.Fatalf("RouteByDestination: got %+v err=%v", got, err)
	}

	miss, err := db.RouteByDestination(ctx, "montanha")
	if err != nil || miss != nil {
		t.Fatalf("expected nil for unmatched destination, got %+v err=%v", miss, err)
	}
}

func TestDeleteCascadesNothingUnexpected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.SaveRegion(ctx, &models.Region{ID: "r1", Name: "Serra Verde", Vegetation: models.VegetationForest}); err != nil {
		t.Fatalf("SaveRegion failed: %v", err)
	}
	if err := db.DeleteRegion(ctx, "r1"); err != nil {
		t.Fatalf("DeleteRegion failed: %v", err)
	}
	got, err := db.RegionByID(ctx, "r1")
	if err != nil || got != nil {
		t.Fatalf("expected region gone, got %+v err=%v", got, err)
	}
}
