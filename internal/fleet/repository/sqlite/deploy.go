package sqlite

import (
	"context"

	"fleet-dispatch/internal/fleet/repository"
)

// AssignVehicleDriver replaces the trip's deployment in a single transaction
// so a concurrent assignment to the same trip cannot interleave.
func (r *implRepository) AssignVehicleDriver(ctx context.Context, tripID, vehicleID, driverID int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AssignVehicleDriver"), err)
		return 0, repository.ErrFailedToAssign
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM deployments WHERE trip_id = ?`, tripID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AssignVehicleDriver"), err)
		return 0, repository.ErrFailedToAssign
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO deployments (trip_id, vehicle_id, driver_id) VALUES (?, ?, ?)`,
		tripID, vehicleID, driverID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AssignVehicleDriver"), err)
		return 0, repository.ErrFailedToAssign
	}

	deploymentID, err := res.LastInsertId()
	if err != nil {
		return 0, repository.ErrFailedToAssign
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AssignVehicleDriver"), err)
		return 0, repository.ErrFailedToAssign
	}
	return deploymentID, nil
}

func (r *implRepository) RemoveDeployment(ctx context.Context, tripID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deployments WHERE trip_id = ?`, tripID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RemoveDeployment"), err)
		return false, repository.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, repository.ErrFailedToDelete
	}
	return affected > 0, nil
}
