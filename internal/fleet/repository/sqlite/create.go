package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"fleet-dispatch/internal/fleet/repository"
)

func (r *implRepository) CreateStop(ctx context.Context, opt repository.CreateStopOptions) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stops (name, latitude, longitude) VALUES (?, ?, ?)`,
		opt.Name, opt.Latitude, opt.Longitude)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateStop"), err)
		return 0, repository.ErrFailedToInsert
	}
	return res.LastInsertId()
}

func (r *implRepository) CreatePath(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO paths (name) VALUES (?)`, name)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePath"), err)
		return 0, repository.ErrFailedToInsert
	}
	return res.LastInsertId()
}

// CreatePathWithStops inserts a path and links any stop names that already
// exist, in the given order. Unknown stop names are skipped silently.
func (r *implRepository) CreatePathWithStops(ctx context.Context, name string, stopNames []string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePathWithStops"), err)
		return 0, repository.ErrFailedToInsert
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO paths (name) VALUES (?)`, name)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePathWithStops"), err)
		return 0, repository.ErrFailedToInsert
	}
	pathID, err := res.LastInsertId()
	if err != nil {
		return 0, repository.ErrFailedToInsert
	}

	for idx, stopName := range stopNames {
		var stopID int64
		err := tx.GetContext(ctx, &stopID, `SELECT id FROM stops WHERE name = ?`, stopName)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePathWithStops"), err)
			return 0, repository.ErrFailedToInsert
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO path_stops (path_id, stop_id, order_index) VALUES (?, ?, ?)`,
			pathID, stopID, idx+1); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePathWithStops"), err)
			return 0, repository.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePathWithStops"), err)
		return 0, repository.ErrFailedToInsert
	}
	return pathID, nil
}

func (r *implRepository) CreateRoute(ctx context.Context, opt repository.CreateRouteOptions) (int64, error) {
	status := opt.Status
	if status == "" {
		status = "active"
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO routes (path_id, route_display_name, shift_time, direction, start_point, end_point, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		opt.PathID, opt.RouteDisplayName, opt.ShiftTime, opt.Direction, opt.StartPoint, opt.EndPoint, status)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRoute"), err)
		return 0, repository.ErrFailedToInsert
	}
	return res.LastInsertId()
}

func (r *implRepository) CreateVehicle(ctx context.Context, opt repository.CreateVehicleOptions) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicles (license_plate, type, capacity, model) VALUES (?, ?, ?, ?)`,
		opt.LicensePlate, opt.Type, opt.Capacity, opt.Model)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateVehicle"), err)
		return 0, repository.ErrFailedToInsert
	}
	return res.LastInsertId()
}

func (r *implRepository) CreateDriver(ctx context.Context, opt repository.CreateDriverOptions) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO drivers (name, license_number, phone) VALUES (?, ?, ?)`,
		opt.Name, opt.LicenseNumber, opt.Phone)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDriver"), err)
		return 0, repository.ErrFailedToInsert
	}
	return res.LastInsertId()
}

func (r *implRepository) CreateTrip(ctx context.Context, opt repository.CreateTripOptions) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_trips (route_id, display_name, booking_status_percentage, live_status, date)
		 VALUES (?, ?, ?, ?, ?)`,
		opt.RouteID, opt.DisplayName, opt.BookingLoad, opt.LiveStatus, opt.Date)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTrip"), err)
		return 0, repository.ErrFailedToInsert
	}
	return res.LastInsertId()
}
