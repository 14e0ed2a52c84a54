package usecase

import (
	"context"
	"fmt"
	"strings"

	"fleet-dispatch/internal/dispatch"
	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/internal/model"
)

// execute runs an approved command and renders its outcome as one
// natural-language reply. Unresolved parameters and unknown entity
// references are user-facing messages, not errors; only collaborator
// failures come back as errors for the caller to wrap.
func (uc *implUseCase) execute(ctx context.Context, cmd dispatch.Command) (string, error) {
	switch c := cmd.(type) {
	case dispatch.ListUnassignedVehicles:
		vehicles, err := uc.repo.ListUnassignedVehicles(ctx)
		if err != nil {
			return "", err
		}
		plates := make([]string, 0, len(vehicles))
		for _, v := range vehicles {
			plates = append(plates, v.LicensePlate)
		}
		if len(plates) == 0 {
			return fmt.Sprintf("Found %d unassigned vehicles", len(vehicles)), nil
		}
		return fmt.Sprintf("Found %d unassigned vehicles: %s", len(vehicles), strings.Join(plates, ", ")), nil

	case dispatch.ListUnassignedDrivers:
		drivers, err := uc.repo.ListUnassignedDrivers(ctx)
		if err != nil {
			return "", err
		}
		names := make([]string, 0, len(drivers))
		for _, d := range drivers {
			names = append(names, d.Name)
		}
		if len(names) == 0 {
			return fmt.Sprintf("Found %d unassigned drivers", len(drivers)), nil
		}
		return fmt.Sprintf("Found %d unassigned drivers: %s", len(drivers), strings.Join(names, ", ")), nil

	case dispatch.CreateStop:
		id, err := uc.repo.CreateStop(ctx, repository.CreateStopOptions{
			Name:      c.Name,
			Latitude:  c.Lat,
			Longitude: c.Lng,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created stop '%s' with ID %d", c.Name, id), nil

	case dispatch.CreatePath:
		var (
			id  int64
			err error
		)
		if len(c.Stops) > 0 {
			id, err = uc.repo.CreatePathWithStops(ctx, c.Name, c.Stops)
		} else {
			id, err = uc.repo.CreatePath(ctx, c.Name)
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created path '%s' with ID %d", c.Name, id), nil

	case dispatch.CreateVehicle:
		id, err := uc.repo.CreateVehicle(ctx, repository.CreateVehicleOptions{
			LicensePlate: c.LicensePlate,
			Type:         "Bus",
			Capacity:     c.Capacity,
			Model:        c.Model,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created vehicle '%s' with ID %d", c.LicensePlate, id), nil

	case dispatch.CreateDriver:
		id, err := uc.repo.CreateDriver(ctx, repository.CreateDriverOptions{
			Name:          c.Name,
			LicenseNumber: c.License,
			Phone:         c.Phone,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created driver '%s' with ID %d", c.Name, id), nil

	case dispatch.AssignVehicleDriver:
		return uc.executeAssign(ctx, c)

	case dispatch.RemoveVehicleFromTrip:
		if c.Trip == "" {
			return "Please specify a trip name.", nil
		}
		tripID, err := uc.repo.FindTripByDisplayName(ctx, c.Trip)
		if err != nil {
			return "", err
		}
		if tripID == 0 {
			return fmt.Sprintf("Trip '%s' not found.", c.Trip), nil
		}
		removed, err := uc.repo.RemoveDeployment(ctx, tripID)
		if err != nil {
			return "", err
		}
		if removed {
			return fmt.Sprintf("Removed vehicle assignment from trip '%s'", c.Trip), nil
		}
		return fmt.Sprintf("No vehicle assignment found for trip '%s'", c.Trip), nil

	case dispatch.ListAllVehicles:
		vehicles, err := uc.repo.ListVehicles(ctx)
		if err != nil {
			return "", err
		}
		if len(vehicles) == 0 {
			return "No vehicles found.", nil
		}
		parts := make([]string, 0, len(vehicles))
		for _, v := range vehicles {
			parts = append(parts, fmt.Sprintf("%s (%s)", v.LicensePlate, v.Model))
		}
		return fmt.Sprintf("All vehicles (%d): %s", len(vehicles), strings.Join(parts, ", ")), nil

	case dispatch.ListAllDrivers:
		drivers, err := uc.repo.ListDrivers(ctx)
		if err != nil {
			return "", err
		}
		if len(drivers) == 0 {
			return "No drivers found.", nil
		}
		parts := make([]string, 0, len(drivers))
		for _, d := range drivers {
			parts = append(parts, fmt.Sprintf("%s (%s)", d.Name, d.LicenseNumber))
		}
		return fmt.Sprintf("All drivers (%d): %s", len(drivers), strings.Join(parts, ", ")), nil

	case dispatch.ListAllTrips:
		trips, err := uc.repo.ListTripsWithRoutes(ctx)
		if err != nil {
			return "", err
		}
		if len(trips) == 0 {
			return "No trips scheduled.", nil
		}
		parts := make([]string, 0, len(trips))
		for _, t := range trips {
			parts = append(parts, fmt.Sprintf("Trip %d: %s on %s (%s, %.0f%% booked)",
				t.ID, t.RouteName, t.Date, t.LiveStatus, t.BookingLoad*100))
		}
		return fmt.Sprintf("All trips (%d): %s", len(trips), strings.Join(parts, "; ")), nil

	case dispatch.ListAllStops:
		stops, err := uc.repo.ListStops(ctx)
		if err != nil {
			return "", err
		}
		if len(stops) == 0 {
			return "No stops defined.", nil
		}
		names := make([]string, 0, len(stops))
		for _, s := range stops {
			names = append(names, s.Name)
		}
		return fmt.Sprintf("All stops (%d): %s", len(stops), strings.Join(names, ", ")), nil

	case dispatch.ListAllRoutes:
		routes, err := uc.repo.ListRoutesWithPaths(ctx)
		if err != nil {
			return "", err
		}
		if len(routes) == 0 {
			return "No routes found.", nil
		}
		parts := make([]string, 0, len(routes))
		for _, r := range routes {
			parts = append(parts, fmt.Sprintf("%s (%s, %s)", r.RouteDisplayName, r.PathName, r.ShiftTime))
		}
		return fmt.Sprintf("All routes (%d): %s", len(routes), strings.Join(parts, "; ")), nil

	case dispatch.ListAllPaths:
		paths, err := uc.repo.ListPathsWithStops(ctx)
		if err != nil {
			return "", err
		}
		if len(paths) == 0 {
			return "No paths available.", nil
		}
		parts := make([]string, 0, len(paths))
		for _, p := range paths {
			stopNames := "No stops"
			if len(p.Stops) > 0 {
				names := make([]string, 0, len(p.Stops))
				for _, s := range p.Stops {
					names = append(names, s.Name)
				}
				stopNames = strings.Join(names, " → ")
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, stopNames))
		}
		return fmt.Sprintf("All paths (%d): %s", len(paths), strings.Join(parts, "; ")), nil

	case dispatch.ListAllDeployments:
		deployments, err := uc.repo.ListDeploymentsDetailed(ctx)
		if err != nil {
			return "", err
		}
		if len(deployments) == 0 {
			return "No active deployments.", nil
		}
		parts := make([]string, 0, len(deployments))
		for _, d := range deployments {
			parts = append(parts, fmt.Sprintf("%s → %s (%s)", d.TripDisplayName, d.LicensePlate, d.DriverName))
		}
		return fmt.Sprintf("Active deployments (%d): %s", len(deployments), strings.Join(parts, "; ")), nil

	case dispatch.ListStopsForRoute:
		return uc.executeStopsForRoute(ctx, c)

	case dispatch.ListStopsForPath:
		if c.Path == "" {
			return "Please specify a path name.", nil
		}
		stops, err := uc.repo.StopsForPath(ctx, c.Path)
		if err != nil {
			return "", err
		}
		if len(stops) == 0 {
			return fmt.Sprintf("No stops found for path '%s'.", c.Path), nil
		}
		return fmt.Sprintf("Stops for '%s': %s", c.Path, strings.Join(stops, " → ")), nil

	case dispatch.ListRoutesUsingPath:
		if c.Path == "" {
			return "Please specify a path name.", nil
		}
		routes, err := uc.repo.RoutesUsingPath(ctx, c.Path)
		if err != nil {
			return "", err
		}
		if len(routes) == 0 {
			return fmt.Sprintf("No routes found using path '%s'.", c.Path), nil
		}
		parts := make([]string, 0, len(routes))
		for _, r := range routes {
			parts = append(parts, fmt.Sprintf("%s (%s)", r.RouteDisplayName, r.ShiftTime))
		}
		return fmt.Sprintf("Routes using '%s': %s", c.Path, strings.Join(parts, ", ")), nil

	case dispatch.GetTripStatus:
		if c.Trip == "" {
			return "Please specify a trip name.", nil
		}
		status, err := uc.repo.TripStatusByName(ctx, c.Trip)
		if err != nil {
			return "", err
		}
		if status.ID == 0 {
			return fmt.Sprintf("Trip '%s' not found.", c.Trip), nil
		}
		msg := fmt.Sprintf("Trip '%s': %.0f%% booked, Status: %s, Date: %s",
			status.DisplayName, status.BookingLoad*100, status.LiveStatus, status.Date)
		if status.LicensePlate != nil && *status.LicensePlate != "" {
			driver := "Not assigned"
			if status.DriverName != nil && *status.DriverName != "" {
				driver = *status.DriverName
			}
			msg += fmt.Sprintf(", Vehicle: %s, Driver: %s", *status.LicensePlate, driver)
		}
		return msg, nil

	default:
		return fmt.Sprintf("Action '%s' not implemented yet.", cmd.Action()), nil
	}
}

func (uc *implUseCase) executeAssign(ctx context.Context, c dispatch.AssignVehicleDriver) (string, error) {
	if c.Vehicle == "" && c.Driver == "" && c.Trip == "" {
		return "Please specify a vehicle, driver, and trip to assign.", nil
	}
	if c.Trip == "" {
		return "Please specify a trip to assign.", nil
	}
	if c.Vehicle == "" {
		return "Please specify a vehicle to assign.", nil
	}
	if c.Driver == "" {
		return "Please specify a driver to assign.", nil
	}

	tripID, err := uc.repo.FindTripByDisplayName(ctx, c.Trip)
	if err != nil {
		return "", err
	}
	if tripID == 0 {
		return fmt.Sprintf("Trip '%s' not found. Please check the trip name.", c.Trip), nil
	}
	vehicleID, err := uc.repo.FindVehicleByPlate(ctx, c.Vehicle)
	if err != nil {
		return "", err
	}
	if vehicleID == 0 {
		return fmt.Sprintf("Vehicle '%s' not found. Please check the vehicle plate.", c.Vehicle), nil
	}
	driverID, err := uc.repo.FindDriverByName(ctx, c.Driver)
	if err != nil {
		return "", err
	}
	if driverID == 0 {
		return fmt.Sprintf("Driver '%s' not found. Please check the driver name.", c.Driver), nil
	}

	deploymentID, err := uc.repo.AssignVehicleDriver(ctx, tripID, vehicleID, driverID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Assigned vehicle %s and driver %s to trip '%s' (Deployment ID: %d)",
		c.Vehicle, c.Driver, c.Trip, deploymentID), nil
}

func (uc *implUseCase) executeStopsForRoute(ctx context.Context, c dispatch.ListStopsForRoute) (string, error) {
	if c.Route == "" {
		return "Please specify a route name.", nil
	}
	routes, err := uc.repo.ListRoutesWithPaths(ctx)
	if err != nil {
		return "", err
	}

	var match *model.RouteWithPath
	lower := strings.ToLower(c.Route)
	for i := range routes {
		name := strings.ToLower(routes[i].RouteDisplayName)
		if name != "" && (strings.Contains(name, lower) || strings.Contains(lower, name)) {
			match = &routes[i]
			break
		}
	}
	if match == nil {
		return fmt.Sprintf("Route '%s' not found.", c.Route), nil
	}

	stops, err := uc.repo.StopsForPath(ctx, match.PathName)
	if err != nil {
		return "", err
	}
	if len(stops) == 0 {
		return fmt.Sprintf("No stops found on route '%s'.", c.Route), nil
	}
	return fmt.Sprintf("Stops on route '%s': %s", c.Route, strings.Join(stops, " → ")), nil
}
