package dispatch

// Action identifies a structured fleet operation resolved from an utterance.
type Action string

const (
	ActionRemoveVehicleFromTrip  Action = "remove_vehicle_from_trip"
	ActionAssignVehicleDriver    Action = "assign_vehicle_driver"
	ActionCreateStop             Action = "create_stop"
	ActionCreatePath             Action = "create_path"
	ActionCreateVehicle          Action = "create_vehicle"
	ActionCreateDriver           Action = "create_driver"
	ActionListUnassignedVehicles Action = "list_unassigned_vehicles"
	ActionListUnassignedDrivers  Action = "list_unassigned_drivers"
	ActionListAllVehicles        Action = "list_all_vehicles"
	ActionListAllDrivers         Action = "list_all_drivers"
	ActionListAllTrips           Action = "list_all_trips"
	ActionListAllStops           Action = "list_all_stops"
	ActionListAllRoutes          Action = "list_all_routes"
	ActionListAllPaths           Action = "list_all_paths"
	ActionListAllDeployments     Action = "list_all_deployments"
	ActionListStopsForRoute      Action = "list_stops_for_route"
	ActionListStopsForPath       Action = "list_stops_for_path"
	ActionListRoutesUsingPath    Action = "list_routes_using_path"
	ActionGetTripStatus          Action = "get_trip_status"
)

// Command is a classified action carrying only its own typed parameters.
// Empty string fields mean the parameter could not be resolved from the
// utterance; the executor decides whether that is acceptable per action.
type Command interface {
	Action() Action
}

// RemoveVehicleFromTrip removes the deployment of the named trip.
type RemoveVehicleFromTrip struct {
	Trip string
}

func (RemoveVehicleFromTrip) Action() Action { return ActionRemoveVehicleFromTrip }

// AssignVehicleDriver deploys a vehicle and driver on a trip, replacing any
// existing deployment for that trip.
type AssignVehicleDriver struct {
	Vehicle string
	Driver  string
	Trip    string
}

func (AssignVehicleDriver) Action() Action { return ActionAssignVehicleDriver }

// CreateStop registers a new boarding point.
type CreateStop struct {
	Name string
	Lat  float64
	Lng  float64
}

func (CreateStop) Action() Action { return ActionCreateStop }

// CreatePath registers a new corridor, optionally linked to existing stops
// in the given order.
type CreatePath struct {
	Name  string
	Stops []string
}

func (CreatePath) Action() Action { return ActionCreatePath }

// CreateVehicle registers a new vehicle in the fleet.
type CreateVehicle struct {
	LicensePlate string
	Capacity     int
	Model        string
}

func (CreateVehicle) Action() Action { return ActionCreateVehicle }

// CreateDriver registers a new driver.
type CreateDriver struct {
	Name    string
	License string
	Phone   string
}

func (CreateDriver) Action() Action { return ActionCreateDriver }

type ListUnassignedVehicles struct{}

func (ListUnassignedVehicles) Action() Action { return ActionListUnassignedVehicles }

type ListUnassignedDrivers struct{}

func (ListUnassignedDrivers) Action() Action { return ActionListUnassignedDrivers }

type ListAllVehicles struct{}

func (ListAllVehicles) Action() Action { return ActionListAllVehicles }

type ListAllDrivers struct{}

func (ListAllDrivers) Action() Action { return ActionListAllDrivers }

type ListAllTrips struct{}

func (ListAllTrips) Action() Action { return ActionListAllTrips }

type ListAllStops struct{}

func (ListAllStops) Action() Action { return ActionListAllStops }

type ListAllRoutes struct{}

func (ListAllRoutes) Action() Action { return ActionListAllRoutes }

type ListAllPaths struct{}

func (ListAllPaths) Action() Action { return ActionListAllPaths }

type ListAllDeployments struct{}

func (ListAllDeployments) Action() Action { return ActionListAllDeployments }

// ListStopsForRoute lists the ordered stops of the path the named route runs on.
type ListStopsForRoute struct {
	Route string
}

func (ListStopsForRoute) Action() Action { return ActionListStopsForRoute }

// ListStopsForPath lists the ordered stops of the named path.
type ListStopsForPath struct {
	Path string
}

func (ListStopsForPath) Action() Action { return ActionListStopsForPath }

// ListRoutesUsingPath lists the routes scheduled on the named path.
type ListRoutesUsingPath struct {
	Path string
}

func (ListRoutesUsingPath) Action() Action { return ActionListRoutesUsingPath }

// GetTripStatus reports booking load, live status, and current deployment
// of the named trip.
type GetTripStatus struct {
	Trip string
}

func (GetTripStatus) Action() Action { return ActionGetTripStatus }
