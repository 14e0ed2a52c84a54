package usecase_test

import (
	"context"

	"fleet-dispatch/internal/dispatch"
	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/internal/model"
)

// Mock logger for testing
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

// mockRouter returns a canned command for any utterance.
type mockRouter struct {
	classifyFunc func(text string) dispatch.Command
}

func (m *mockRouter) Classify(ctx context.Context, text string) dispatch.Command {
	if m.classifyFunc == nil {
		return nil
	}
	return m.classifyFunc(text)
}

// mockRepo implements repository.Repository with per-method func fields.
// Unset fields return zero values.
type mockRepo struct {
	listStopsFunc       func() ([]model.Stop, error)
	listVehiclesFunc    func() ([]model.Vehicle, error)
	listDriversFunc     func() ([]model.Driver, error)
	listUnassignedVFunc func() ([]model.Vehicle, error)
	listUnassignedDFunc func() ([]model.Driver, error)
	listPathsFunc       func() ([]model.PathWithStops, error)
	listRoutesFunc      func() ([]model.RouteWithPath, error)
	listTripsFunc       func() ([]model.TripWithRoute, error)
	listDeploymentsFunc func() ([]model.DeploymentDetail, error)

	findTripFunc    func(name string) (int64, error)
	findVehicleFunc func(plate string) (int64, error)
	findDriverFunc  func(name string) (int64, error)

	bookingLoadFunc   func(tripID int64) (float64, error)
	tripStatusFunc    func(name string) (model.TripStatus, error)
	stopsForPathFunc  func(pathName string) ([]string, error)
	routesForPathFunc func(pathName string) ([]model.RouteWithPath, error)

	createStopFunc    func(opt repository.CreateStopOptions) (int64, error)
	createPathFunc    func(name string) (int64, error)
	createPathWSFunc  func(name string, stops []string) (int64, error)
	createRouteFunc   func(opt repository.CreateRouteOptions) (int64, error)
	createVehicleFunc func(opt repository.CreateVehicleOptions) (int64, error)
	createDriverFunc  func(opt repository.CreateDriverOptions) (int64, error)
	createTripFunc    func(opt repository.CreateTripOptions) (int64, error)

	assignFunc func(tripID, vehicleID, driverID int64) (int64, error)
	removeFunc func(tripID int64) (bool, error)
}

func (m *mockRepo) ListStops(ctx context.Context) ([]model.Stop, error) {
	if m.listStopsFunc == nil {
		return nil, nil
	}
	return m.listStopsFunc()
}

func (m *mockRepo) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	if m.listVehiclesFunc == nil {
		return nil, nil
	}
	return m.listVehiclesFunc()
}

func (m *mockRepo) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	if m.listDriversFunc == nil {
		return nil, nil
	}
	return m.listDriversFunc()
}

func (m *mockRepo) ListUnassignedVehicles(ctx context.Context) ([]model.Vehicle, error) {
	if m.listUnassignedVFunc == nil {
		return nil, nil
	}
	return m.listUnassignedVFunc()
}

func (m *mockRepo) ListUnassignedDrivers(ctx context.Context) ([]model.Driver, error) {
	if m.listUnassignedDFunc == nil {
		return nil, nil
	}
	return m.listUnassignedDFunc()
}

func (m *mockRepo) ListPathsWithStops(ctx context.Context) ([]model.PathWithStops, error) {
	if m.listPathsFunc == nil {
		return nil, nil
	}
	return m.listPathsFunc()
}

func (m *mockRepo) ListRoutesWithPaths(ctx context.Context) ([]model.RouteWithPath, error) {
	if m.listRoutesFunc == nil {
		return nil, nil
	}
	return m.listRoutesFunc()
}

func (m *mockRepo) ListTripsWithRoutes(ctx context.Context) ([]model.TripWithRoute, error) {
	if m.listTripsFunc == nil {
		return nil, nil
	}
	return m.listTripsFunc()
}

func (m *mockRepo) ListDeploymentsDetailed(ctx context.Context) ([]model.DeploymentDetail, error) {
	if m.listDeploymentsFunc == nil {
		return nil, nil
	}
	return m.listDeploymentsFunc()
}

func (m *mockRepo) FindTripByDisplayName(ctx context.Context, name string) (int64, error) {
	if m.findTripFunc == nil {
		return 0, nil
	}
	return m.findTripFunc(name)
}

func (m *mockRepo) FindVehicleByPlate(ctx context.Context, plate string) (int64, error) {
	if m.findVehicleFunc == nil {
		return 0, nil
	}
	return m.findVehicleFunc(plate)
}

func (m *mockRepo) FindDriverByName(ctx context.Context, name string) (int64, error) {
	if m.findDriverFunc == nil {
		return 0, nil
	}
	return m.findDriverFunc(name)
}

func (m *mockRepo) TripBookingLoad(ctx context.Context, tripID int64) (float64, error) {
	if m.bookingLoadFunc == nil {
		return 0, nil
	}
	return m.bookingLoadFunc(tripID)
}

func (m *mockRepo) TripStatusByName(ctx context.Context, name string) (model.TripStatus, error) {
	if m.tripStatusFunc == nil {
		return model.TripStatus{}, nil
	}
	return m.tripStatusFunc(name)
}

func (m *mockRepo) StopsForPath(ctx context.Context, pathName string) ([]string, error) {
	if m.stopsForPathFunc == nil {
		return nil, nil
	}
	return m.stopsForPathFunc(pathName)
}

func (m *mockRepo) RoutesUsingPath(ctx context.Context, pathName string) ([]model.RouteWithPath, error) {
	if m.routesForPathFunc == nil {
		return nil, nil
	}
	return m.routesForPathFunc(pathName)
}

func (m *mockRepo) CreateStop(ctx context.Context, opt repository.CreateStopOptions) (int64, error) {
	if m.createStopFunc == nil {
		return 0, nil
	}
	return m.createStopFunc(opt)
}

func (m *mockRepo) CreatePath(ctx context.Context, name string) (int64, error) {
	if m.createPathFunc == nil {
		return 0, nil
	}
	return m.createPathFunc(name)
}

func (m *mockRepo) CreatePathWithStops(ctx context.Context, name string, stopNames []string) (int64, error) {
	if m.createPathWSFunc == nil {
		return 0, nil
	}
	return m.createPathWSFunc(name, stopNames)
}

func (m *mockRepo) CreateRoute(ctx context.Context, opt repository.CreateRouteOptions) (int64, error) {
	if m.createRouteFunc == nil {
		return 0, nil
	}
	return m.createRouteFunc(opt)
}

func (m *mockRepo) CreateVehicle(ctx context.Context, opt repository.CreateVehicleOptions) (int64, error) {
	if m.createVehicleFunc == nil {
		return 0, nil
	}
	return m.createVehicleFunc(opt)
}

func (m *mockRepo) CreateDriver(ctx context.Context, opt repository.CreateDriverOptions) (int64, error) {
	if m.createDriverFunc == nil {
		return 0, nil
	}
	return m.createDriverFunc(opt)
}

func (m *mockRepo) CreateTrip(ctx context.Context, opt repository.CreateTripOptions) (int64, error) {
	if m.createTripFunc == nil {
		return 0, nil
	}
	return m.createTripFunc(opt)
}

func (m *mockRepo) AssignVehicleDriver(ctx context.Context, tripID, vehicleID, driverID int64) (int64, error) {
	if m.assignFunc == nil {
		return 0, nil
	}
	return m.assignFunc(tripID, vehicleID, driverID)
}

func (m *mockRepo) RemoveDeployment(ctx context.Context, tripID int64) (bool, error) {
	if m.removeFunc == nil {
		return false, nil
	}
	return m.removeFunc(tripID)
}
