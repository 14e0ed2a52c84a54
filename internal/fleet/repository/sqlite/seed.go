package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type seedStop struct {
	name     string
	lat, lng float64
}

type seedRoute struct {
	pathID                                    int64
	displayName, shift, direction, start, end string
}

type seedVehicle struct {
	plate, vtype string
	capacity     int
	model        string
}

type seedDriver struct {
	name, license, phone string
}

type seedTrip struct {
	routeID     int64
	displayName string
	bookingLoad float64
	liveStatus  string
	date        string
}

type seedDeployment struct {
	tripName, plate, driverName string
}

var (
	seedStops = []seedStop{
		{"MG Road Station", 12.9716, 77.6412},
		{"BTM Layout Terminal", 12.9176, 77.6144},
		{"Indiranagar Junction", 13.0352, 77.6412},
		{"Koramangala Center", 12.9352, 77.6245},
	}

	seedPaths = []string{
		"South Bangalore - MG Road to BTM Layout",
		"Central Bangalore - Indiranagar to Koramangala",
	}

	// path_id, stop_id, order_index
	seedPathStops = [][3]int64{
		{1, 1, 0},
		{1, 2, 1},
		{2, 3, 0},
		{2, 4, 1},
	}

	seedRoutes = []seedRoute{
		{1, "South Bangalore - Morning 08:00", "08:00", "South", "MG Road Station", "BTM Layout Terminal"},
		{1, "South Bangalore - Evening 18:00", "18:00", "South", "MG Road Station", "BTM Layout Terminal"},
		{2, "Central Bangalore - Morning 09:00", "09:00", "Central", "Indiranagar Junction", "Koramangala Center"},
		{2, "Central Bangalore - Evening 17:00", "17:00", "Central", "Indiranagar Junction", "Koramangala Center"},
	}

	seedVehicles = []seedVehicle{
		{"KA-01-AB-1234", "Bus", 52, "Volvo AC Bus"},
		{"KA-01-CD-5678", "Bus", 45, "Tata Bus"},
		{"KA-01-EF-9012", "Cab", 4, "Swift Sedan"},
		{"KA-01-GH-3456", "Bus", 50, "Ashok Leyland"},
		{"KA-01-IJ-7890", "Cab", 6, "Toyota Innova"},
	}

	seedDrivers = []seedDriver{
		{"Amit Kumar", "DL123456", "9876543210"},
		{"Rajesh Singh", "DL789012", "9876543211"},
		{"Priya Sharma", "DL345678", "9876543212"},
		{"Suresh Patel", "DL456789", "9876543213"},
		{"Deepak Verma", "DL654321", "9876543214"},
	}

	seedTrips = []seedTrip{
		{1, "South Bangalore - Morning 08:00", 0.0, "Scheduled", "2025-11-15"},
		{1, "South Bangalore - Evening 18:00", 0.0, "Scheduled", "2025-11-15"},
		{2, "Central Bangalore - Morning 09:00", 0.0, "Scheduled", "2025-11-15"},
		{2, "Central Bangalore - Evening 17:00", 0.0, "Scheduled", "2025-11-15"},
	}

	seedDeployments = []seedDeployment{
		{"South Bangalore - Morning 08:00", "KA-01-AB-1234", "Amit Kumar"},
		{"South Bangalore - Evening 18:00", "KA-01-CD-5678", "Rajesh Singh"},
		{"Central Bangalore - Morning 09:00", "KA-01-EF-9012", "Priya Sharma"},
		{"Central Bangalore - Evening 17:00", "KA-01-GH-3456", "Suresh Patel"},
	}
)

// Seed populates the database with the Bangalore sample network when empty.
// Inserts are idempotent: rows are only added on a fresh database.
func Seed(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM stops`); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	for _, s := range seedStops {
		if _, err := tx.Exec(`INSERT INTO stops (name, latitude, longitude) VALUES (?, ?, ?)`, s.name, s.lat, s.lng); err != nil {
			return fmt.Errorf("seed stops: %w", err)
		}
	}

	for _, name := range seedPaths {
		if _, err := tx.Exec(`INSERT INTO paths (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("seed paths: %w", err)
		}
	}

	for _, ps := range seedPathStops {
		if _, err := tx.Exec(`INSERT INTO path_stops (path_id, stop_id, order_index) VALUES (?, ?, ?)`, ps[0], ps[1], ps[2]); err != nil {
			return fmt.Errorf("seed path_stops: %w", err)
		}
	}

	for _, r := range seedRoutes {
		if _, err := tx.Exec(
			`INSERT INTO routes (path_id, route_display_name, shift_time, direction, start_point, end_point, status)
			 VALUES (?, ?, ?, ?, ?, ?, 'active')`,
			r.pathID, r.displayName, r.shift, r.direction, r.start, r.end,
		); err != nil {
			return fmt.Errorf("seed routes: %w", err)
		}
	}

	for _, v := range seedVehicles {
		if _, err := tx.Exec(`INSERT INTO vehicles (license_plate, type, capacity, model) VALUES (?, ?, ?, ?)`,
			v.plate, v.vtype, v.capacity, v.model); err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
	}

	for _, d := range seedDrivers {
		if _, err := tx.Exec(`INSERT INTO drivers (name, license_number, phone) VALUES (?, ?, ?)`,
			d.name, d.license, d.phone); err != nil {
			return fmt.Errorf("seed drivers: %w", err)
		}
	}

	for _, trip := range seedTrips {
		if _, err := tx.Exec(
			`INSERT INTO daily_trips (route_id, display_name, booking_status_percentage, live_status, date)
			 VALUES (?, ?, ?, ?, ?)`,
			trip.routeID, trip.displayName, trip.bookingLoad, trip.liveStatus, trip.date,
		); err != nil {
			return fmt.Errorf("seed daily_trips: %w", err)
		}
	}

	for _, dep := range seedDeployments {
		if _, err := tx.Exec(
			`INSERT INTO deployments (trip_id, vehicle_id, driver_id)
			 SELECT dt.id, v.id, dr.id
			 FROM daily_trips dt, vehicles v, drivers dr
			 WHERE dt.display_name = ? AND v.license_plate = ? AND dr.name = ?`,
			dep.tripName, dep.plate, dep.driverName,
		); err != nil {
			return fmt.Errorf("seed deployments: %w", err)
		}
	}

	return tx.Commit()
}
