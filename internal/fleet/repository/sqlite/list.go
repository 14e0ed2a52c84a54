package sqlite

import (
	"context"
	"database/sql"

	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/internal/model"
)

func (r *implRepository) ListStops(ctx context.Context) ([]model.Stop, error) {
	var stops []model.Stop
	err := r.db.SelectContext(ctx, &stops, `SELECT id, name, latitude, longitude FROM stops ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStops"), err)
		return nil, repository.ErrFailedToList
	}
	return stops, nil
}

func (r *implRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.SelectContext(ctx, &vehicles, `SELECT id, license_plate, type, capacity, model FROM vehicles ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListVehicles"), err)
		return nil, repository.ErrFailedToList
	}
	return vehicles, nil
}

func (r *implRepository) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.SelectContext(ctx, &drivers, `SELECT id, name, license_number, phone FROM drivers ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDrivers"), err)
		return nil, repository.ErrFailedToList
	}
	return drivers, nil
}

func (r *implRepository) ListUnassignedVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.SelectContext(ctx, &vehicles, `
		SELECT id, license_plate, type, capacity, model FROM vehicles
		WHERE id NOT IN (SELECT vehicle_id FROM deployments)
		ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUnassignedVehicles"), err)
		return nil, repository.ErrFailedToList
	}
	return vehicles, nil
}

func (r *implRepository) ListUnassignedDrivers(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.SelectContext(ctx, &drivers, `
		SELECT id, name, license_number, phone FROM drivers
		WHERE id NOT IN (SELECT driver_id FROM deployments)
		ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUnassignedDrivers"), err)
		return nil, repository.ErrFailedToList
	}
	return drivers, nil
}

// pathStopRow is the flat join row assembled into model.PathWithStops.
type pathStopRow struct {
	PathID     int64           `db:"path_id"`
	PathName   string          `db:"path_name"`
	StopID     sql.NullInt64   `db:"stop_id"`
	StopName   sql.NullString  `db:"stop_name"`
	Latitude   sql.NullFloat64 `db:"latitude"`
	Longitude  sql.NullFloat64 `db:"longitude"`
	OrderIndex sql.NullInt64   `db:"order_index"`
}

func (r *implRepository) ListPathsWithStops(ctx context.Context) ([]model.PathWithStops, error) {
	var rows []pathStopRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.id AS path_id, p.name AS path_name,
		       s.id AS stop_id, s.name AS stop_name, s.latitude, s.longitude, ps.order_index
		FROM paths p
		LEFT JOIN path_stops ps ON ps.path_id = p.id
		LEFT JOIN stops s ON s.id = ps.stop_id
		ORDER BY p.id, ps.order_index`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPathsWithStops"), err)
		return nil, repository.ErrFailedToList
	}

	var paths []model.PathWithStops
	index := make(map[int64]int)
	for _, row := range rows {
		i, ok := index[row.PathID]
		if !ok {
			paths = append(paths, model.PathWithStops{ID: row.PathID, Name: row.PathName, Stops: []model.Stop{}})
			i = len(paths) - 1
			index[row.PathID] = i
		}
		if row.StopID.Valid {
			paths[i].Stops = append(paths[i].Stops, model.Stop{
				ID:        row.StopID.Int64,
				Name:      row.StopName.String,
				Latitude:  row.Latitude.Float64,
				Longitude: row.Longitude.Float64,
			})
		}
	}
	return paths, nil
}

func (r *implRepository) ListRoutesWithPaths(ctx context.Context) ([]model.RouteWithPath, error) {
	var routes []model.RouteWithPath
	err := r.db.SelectContext(ctx, &routes, `
		SELECT r.id, r.path_id, r.route_display_name, r.shift_time, r.direction,
		       r.start_point, r.end_point, r.status, p.name AS path_name
		FROM routes r
		JOIN paths p ON r.path_id = p.id
		ORDER BY r.shift_time`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoutesWithPaths"), err)
		return nil, repository.ErrFailedToList
	}
	return routes, nil
}

func (r *implRepository) ListTripsWithRoutes(ctx context.Context) ([]model.TripWithRoute, error) {
	var trips []model.TripWithRoute
	err := r.db.SelectContext(ctx, &trips, `
		SELECT dt.id, dt.route_id, dt.display_name, dt.booking_status_percentage,
		       dt.live_status, dt.date, r.route_display_name AS route_name,
		       r.shift_time, p.name AS path_name
		FROM daily_trips dt
		JOIN routes r ON dt.route_id = r.id
		JOIN paths p ON r.path_id = p.id
		ORDER BY dt.date, r.shift_time`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTripsWithRoutes"), err)
		return nil, repository.ErrFailedToList
	}
	return trips, nil
}

func (r *implRepository) ListDeploymentsDetailed(ctx context.Context) ([]model.DeploymentDetail, error) {
	var deployments []model.DeploymentDetail
	err := r.db.SelectContext(ctx, &deployments, `
		SELECT d.id, d.trip_id, d.vehicle_id, d.driver_id,
		       v.license_plate, v.type AS vehicle_type, v.capacity, v.model,
		       dr.name AS driver_name, dr.license_number, dr.phone,
		       dt.display_name AS trip_display_name, dt.booking_status_percentage,
		       dt.live_status, dt.date, r.route_display_name AS route_name
		FROM deployments d
		JOIN vehicles v ON d.vehicle_id = v.id
		JOIN drivers dr ON d.driver_id = dr.id
		JOIN daily_trips dt ON d.trip_id = dt.id
		JOIN routes r ON dt.route_id = r.id
		ORDER BY dt.date, r.shift_time`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDeploymentsDetailed"), err)
		return nil, repository.ErrFailedToList
	}
	return deployments, nil
}
