package repository

// CreateStopOptions holds the parameters for inserting a stop.
type CreateStopOptions struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// CreateRouteOptions holds the parameters for inserting a route.
type CreateRouteOptions struct {
	PathID           int64
	RouteDisplayName string
	ShiftTime        string
	Direction        string
	StartPoint       string
	EndPoint         string
	Status           string // default "active"
}

// CreateVehicleOptions holds the parameters for inserting a vehicle.
type CreateVehicleOptions struct {
	LicensePlate string
	Type         string
	Capacity     int
	Model        string
}

// CreateDriverOptions holds the parameters for inserting a driver.
type CreateDriverOptions struct {
	Name          string
	LicenseNumber string
	Phone         string
}

// CreateTripOptions holds the parameters for inserting a daily trip.
type CreateTripOptions struct {
	RouteID     int64
	DisplayName string
	BookingLoad float64
	LiveStatus  string
	Date        string
}
