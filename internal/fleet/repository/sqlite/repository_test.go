package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/internal/fleet/repository/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newTestRepo opens a fresh seeded database in a temp dir.
func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "fleet.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlite.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// A second call must be a no-op.
	if err := sqlite.Seed(db); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	return sqlite.New(db, &mockLogger{})
}

func TestSeededNetwork(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("Seed Is Idempotent", func(t *testing.T) {
		stops, err := repo.ListStops(ctx)
		if err != nil {
			t.Fatalf("ListStops: %v", err)
		}
		if len(stops) != 4 {
			t.Errorf("expected 4 stops after double seed, got %d", len(stops))
		}
	})

	t.Run("Unassigned Inventory", func(t *testing.T) {
		vehicles, err := repo.ListUnassignedVehicles(ctx)
		if err != nil {
			t.Fatalf("ListUnassignedVehicles: %v", err)
		}
		if len(vehicles) != 1 || vehicles[0].LicensePlate != "KA-01-IJ-7890" {
			t.Errorf("got %+v", vehicles)
		}

		drivers, err := repo.ListUnassignedDrivers(ctx)
		if err != nil {
			t.Fatalf("ListUnassignedDrivers: %v", err)
		}
		if len(drivers) != 1 || drivers[0].Name != "Deepak Verma" {
			t.Errorf("got %+v", drivers)
		}
	})

	t.Run("Paths Carry Ordered Stops", func(t *testing.T) {
		paths, err := repo.ListPathsWithStops(ctx)
		if err != nil {
			t.Fatalf("ListPathsWithStops: %v", err)
		}
		if len(paths) != 2 {
			t.Fatalf("expected 2 paths, got %d", len(paths))
		}
		if len(paths[0].Stops) != 2 || paths[0].Stops[0].Name != "MG Road Station" {
			t.Errorf("got %+v", paths[0].Stops)
		}
	})
}

func TestFuzzyLookups(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("Trip Substring Match", func(t *testing.T) {
		id, err := repo.FindTripByDisplayName(ctx, "South Bangalore - Morning")
		if err != nil {
			t.Fatalf("FindTripByDisplayName: %v", err)
		}
		if id == 0 {
			t.Error("expected a match")
		}
	})

	t.Run("Vehicle Plate Prefix", func(t *testing.T) {
		id, err := repo.FindVehicleByPlate(ctx, "KA-01-AB")
		if err != nil {
			t.Fatalf("FindVehicleByPlate: %v", err)
		}
		if id == 0 {
			t.Error("expected a match")
		}
	})

	t.Run("Not Found Is Zero ID", func(t *testing.T) {
		id, err := repo.FindDriverByName(ctx, "Nobody Here")
		if err != nil {
			t.Fatalf("FindDriverByName: %v", err)
		}
		if id != 0 {
			t.Errorf("expected 0, got %d", id)
		}
	})

	t.Run("Trip Status Joins Deployment", func(t *testing.T) {
		status, err := repo.TripStatusByName(ctx, "South Bangalore - Morning")
		if err != nil {
			t.Fatalf("TripStatusByName: %v", err)
		}
		if status.ID == 0 {
			t.Fatal("expected a trip")
		}
		if status.LicensePlate == nil || *status.LicensePlate != "KA-01-AB-1234" {
			t.Errorf("got plate %v", status.LicensePlate)
		}
		if status.DriverName == nil || *status.DriverName != "Amit Kumar" {
			t.Errorf("got driver %v", status.DriverName)
		}
	})

	t.Run("Trip Status Not Found", func(t *testing.T) {
		status, err := repo.TripStatusByName(ctx, "Ghost Trip")
		if err != nil {
			t.Fatalf("TripStatusByName: %v", err)
		}
		if status.ID != 0 {
			t.Errorf("expected zero value, got %+v", status)
		}
	})
}

func TestDeploymentLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	tripID, err := repo.FindTripByDisplayName(ctx, "South Bangalore - Morning")
	if err != nil || tripID == 0 {
		t.Fatalf("seed trip lookup failed: id=%d err=%v", tripID, err)
	}
	vehicleID, err := repo.FindVehicleByPlate(ctx, "KA-01-IJ-7890")
	if err != nil || vehicleID == 0 {
		t.Fatalf("seed vehicle lookup failed: id=%d err=%v", vehicleID, err)
	}
	driverID, err := repo.FindDriverByName(ctx, "Deepak Verma")
	if err != nil || driverID == 0 {
		t.Fatalf("seed driver lookup failed: id=%d err=%v", driverID, err)
	}

	t.Run("Assign Replaces Existing Deployment", func(t *testing.T) {
		if _, err := repo.AssignVehicleDriver(ctx, tripID, vehicleID, driverID); err != nil {
			t.Fatalf("AssignVehicleDriver: %v", err)
		}

		// Still one deployment per trip.
		deployments, err := repo.ListDeploymentsDetailed(ctx)
		if err != nil {
			t.Fatalf("ListDeploymentsDetailed: %v", err)
		}
		if len(deployments) != 4 {
			t.Errorf("expected 4 deployments after reassignment, got %d", len(deployments))
		}

		status, err := repo.TripStatusByName(ctx, "South Bangalore - Morning")
		if err != nil {
			t.Fatalf("TripStatusByName: %v", err)
		}
		if status.LicensePlate == nil || *status.LicensePlate != "KA-01-IJ-7890" {
			t.Errorf("expected reassigned vehicle, got %v", status.LicensePlate)
		}
	})

	t.Run("Remove Then Remove Again", func(t *testing.T) {
		removed, err := repo.RemoveDeployment(ctx, tripID)
		if err != nil {
			t.Fatalf("RemoveDeployment: %v", err)
		}
		if !removed {
			t.Error("expected first removal to report true")
		}

		removed, err = repo.RemoveDeployment(ctx, tripID)
		if err != nil {
			t.Fatalf("RemoveDeployment: %v", err)
		}
		if removed {
			t.Error("expected second removal to report false")
		}
	})
}

func TestCreatePathWithStops(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("Keeps Caller Order", func(t *testing.T) {
		id, err := repo.CreatePathWithStops(ctx, "Reverse Loop",
			[]string{"BTM Layout Terminal", "MG Road Station"})
		if err != nil {
			t.Fatalf("CreatePathWithStops: %v", err)
		}
		if id == 0 {
			t.Fatal("expected new path id")
		}

		stops, err := repo.StopsForPath(ctx, "Reverse Loop")
		if err != nil {
			t.Fatalf("StopsForPath: %v", err)
		}
		want := []string{"BTM Layout Terminal", "MG Road Station"}
		if len(stops) != 2 || stops[0] != want[0] || stops[1] != want[1] {
			t.Errorf("got %v, want %v", stops, want)
		}
	})

	t.Run("Skips Unknown Stop Names", func(t *testing.T) {
		if _, err := repo.CreatePathWithStops(ctx, "Sparse Path",
			[]string{"MG Road Station", "No Such Stop"}); err != nil {
			t.Fatalf("CreatePathWithStops: %v", err)
		}

		stops, err := repo.StopsForPath(ctx, "Sparse Path")
		if err != nil {
			t.Fatalf("StopsForPath: %v", err)
		}
		if len(stops) != 1 || stops[0] != "MG Road Station" {
			t.Errorf("got %v", stops)
		}
	})
}
