package model

// Stop is a boarding point on the network.
type Stop struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}

// Path is an ordered corridor of stops that routes run along.
type Path struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// PathWithStops is a path joined with its ordered stop sequence.
type PathWithStops struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stops []Stop `json:"stops"`
}

// Vehicle is a bus or cab in the fleet.
type Vehicle struct {
	ID           int64  `db:"id" json:"id"`
	LicensePlate string `db:"license_plate" json:"license_plate"`
	Type         string `db:"type" json:"type"`
	Capacity     int    `db:"capacity" json:"capacity"`
	Model        string `db:"model" json:"model"`
}

// Driver is an operator who can be deployed on a trip.
type Driver struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	LicenseNumber string `db:"license_number" json:"license_number"`
	Phone         string `db:"phone" json:"phone"`
}

// RouteWithPath is a scheduled route joined with its path name.
type RouteWithPath struct {
	ID               int64  `db:"id" json:"id"`
	PathID           int64  `db:"path_id" json:"path_id"`
	RouteDisplayName string `db:"route_display_name" json:"route_display_name"`
	ShiftTime        string `db:"shift_time" json:"shift_time"`
	Direction        string `db:"direction" json:"direction"`
	StartPoint       string `db:"start_point" json:"start_point"`
	EndPoint         string `db:"end_point" json:"end_point"`
	Status           string `db:"status" json:"status"`
	PathName         string `db:"path_name" json:"path_name"`
}

// TripWithRoute is a daily trip joined with route and path display data.
type TripWithRoute struct {
	ID          int64   `db:"id" json:"id"`
	RouteID     int64   `db:"route_id" json:"route_id"`
	DisplayName string  `db:"display_name" json:"display_name"`
	BookingLoad float64 `db:"booking_status_percentage" json:"booking_status_percentage"`
	LiveStatus  string  `db:"live_status" json:"live_status"`
	Date        string  `db:"date" json:"date"`
	RouteName   string  `db:"route_name" json:"route_name"`
	ShiftTime   string  `db:"shift_time" json:"shift_time"`
	PathName    string  `db:"path_name" json:"path_name"`
}

// DeploymentDetail is a deployment joined with vehicle/driver/trip/route display data.
type DeploymentDetail struct {
	ID              int64   `db:"id" json:"id"`
	TripID          int64   `db:"trip_id" json:"trip_id"`
	VehicleID       int64   `db:"vehicle_id" json:"vehicle_id"`
	DriverID        int64   `db:"driver_id" json:"driver_id"`
	LicensePlate    string  `db:"license_plate" json:"license_plate"`
	VehicleType     string  `db:"vehicle_type" json:"vehicle_type"`
	Capacity        int     `db:"capacity" json:"capacity"`
	Model           string  `db:"model" json:"model"`
	DriverName      string  `db:"driver_name" json:"driver_name"`
	LicenseNumber   string  `db:"license_number" json:"license_number"`
	Phone           string  `db:"phone" json:"phone"`
	TripDisplayName string  `db:"trip_display_name" json:"trip_display_name"`
	BookingLoad     float64 `db:"booking_status_percentage" json:"booking_status_percentage"`
	LiveStatus      string  `db:"live_status" json:"live_status"`
	Date            string  `db:"date" json:"date"`
	RouteName       string  `db:"route_name" json:"route_name"`
}

// TripStatus is the live view of one trip, including the assigned vehicle and
// driver when a deployment exists. The pointers are nil when unassigned.
type TripStatus struct {
	ID               int64   `db:"id" json:"id"`
	DisplayName      string  `db:"display_name" json:"display_name"`
	BookingLoad      float64 `db:"booking_status_percentage" json:"booking_status_percentage"`
	LiveStatus       string  `db:"live_status" json:"live_status"`
	Date             string  `db:"date" json:"date"`
	RouteDisplayName string  `db:"route_display_name" json:"route_display_name"`
	LicensePlate     *string `db:"license_plate" json:"license_plate"`
	DriverName       *string `db:"driver_name" json:"driver_name"`
}
