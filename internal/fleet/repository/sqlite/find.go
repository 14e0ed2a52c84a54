package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/internal/model"
)

// findID runs a single-column fuzzy lookup. Not-found is a zero ID, no error.
func (r *implRepository) findID(ctx context.Context, method, query, needle string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, query, "%"+needle+"%")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return 0, repository.ErrFailedToGet
	}
	return id, nil
}

func (r *implRepository) FindTripByDisplayName(ctx context.Context, name string) (int64, error) {
	return r.findID(ctx, "FindTripByDisplayName",
		`SELECT id FROM daily_trips WHERE display_name LIKE ? LIMIT 1`, name)
}

func (r *implRepository) FindVehicleByPlate(ctx context.Context, plate string) (int64, error) {
	return r.findID(ctx, "FindVehicleByPlate",
		`SELECT id FROM vehicles WHERE license_plate LIKE ? LIMIT 1`, plate)
}

func (r *implRepository) FindDriverByName(ctx context.Context, name string) (int64, error) {
	return r.findID(ctx, "FindDriverByName",
		`SELECT id FROM drivers WHERE name LIKE ? LIMIT 1`, name)
}

func (r *implRepository) TripBookingLoad(ctx context.Context, tripID int64) (float64, error) {
	var load float64
	err := r.db.GetContext(ctx, &load,
		`SELECT booking_status_percentage FROM daily_trips WHERE id = ?`, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TripBookingLoad"), err)
		return 0, repository.ErrFailedToGet
	}
	return load, nil
}

// TripStatusByName returns the joined trip view, or a zero-ID TripStatus when
// no trip matches — not an error.
func (r *implRepository) TripStatusByName(ctx context.Context, name string) (model.TripStatus, error) {
	var status model.TripStatus
	err := r.db.GetContext(ctx, &status, `
		SELECT dt.id, dt.display_name, dt.booking_status_percentage, dt.live_status, dt.date,
		       r.route_display_name, v.license_plate, d.name AS driver_name
		FROM daily_trips dt
		JOIN routes r ON dt.route_id = r.id
		LEFT JOIN deployments dep ON dt.id = dep.trip_id
		LEFT JOIN vehicles v ON dep.vehicle_id = v.id
		LEFT JOIN drivers d ON dep.driver_id = d.id
		WHERE dt.display_name LIKE ?
		LIMIT 1`, "%"+name+"%")
	if errors.Is(err, sql.ErrNoRows) {
		return model.TripStatus{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TripStatusByName"), err)
		return model.TripStatus{}, repository.ErrFailedToGet
	}
	return status, nil
}

func (r *implRepository) StopsForPath(ctx context.Context, pathName string) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, `
		SELECT s.name FROM stops s
		JOIN path_stops ps ON s.id = ps.stop_id
		JOIN paths p ON ps.path_id = p.id
		WHERE p.name = ?
		ORDER BY ps.order_index`, pathName)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("StopsForPath"), err)
		return nil, repository.ErrFailedToList
	}
	return names, nil
}

func (r *implRepository) RoutesUsingPath(ctx context.Context, pathName string) ([]model.RouteWithPath, error) {
	var routes []model.RouteWithPath
	err := r.db.SelectContext(ctx, &routes, `
		SELECT r.id, r.path_id, r.route_display_name, r.shift_time, r.direction,
		       r.start_point, r.end_point, r.status, p.name AS path_name
		FROM routes r
		JOIN paths p ON r.path_id = p.id
		WHERE p.name = ?
		ORDER BY r.shift_time`, pathName)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RoutesUsingPath"), err)
		return nil, repository.ErrFailedToList
	}
	return routes, nil
}
