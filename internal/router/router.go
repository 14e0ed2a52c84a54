package router

import (
	"context"
	"regexp"
	"strings"

	"fleet-dispatch/internal/dispatch"
)

var verbRe = regexp.MustCompile(`\b(show|list|display|get|check|find|remove|delete|unassign|assign|allocate|add|create|update)\b`)

// entityKeywords is evaluated in order; the first noun present wins. The
// order is load-bearing: utterances naming several entity types resolve to
// the earliest one.
var entityKeywords = []struct {
	keyword string
	entity  string
}{
	{"vehicle", "vehicles"},
	{"driver", "drivers"},
	{"trip", "trips"},
	{"route", "routes"},
	{"path", "paths"},
	{"stop", "stops"},
	{"deployment", "deployments"},
	{"assignment", "deployments"},
}

// Classify runs the utterance through the decision table. Rules are
// evaluated top to bottom and the first match wins; reordering them changes
// behavior for utterances that match more than one rule.
func (r *IntentRouter) Classify(ctx context.Context, text string) dispatch.Command {
	lower := strings.ToLower(text)

	verb := DefaultVerb
	if m := verbRe.FindStringSubmatch(lower); m != nil {
		verb = m[1]
	}

	entity := ""
	for _, ek := range entityKeywords {
		if strings.Contains(lower, ek.keyword) {
			entity = ek.entity
			break
		}
	}

	switch verb {
	case "remove", "delete", "unassign":
		if strings.Contains(lower, "vehicle") {
			if trip := r.ex.TripIdentifier(ctx, text); trip != "" {
				return dispatch.RemoveVehicleFromTrip{Trip: trip}
			}
		}

	case "assign", "allocate":
		if (strings.Contains(lower, "vehicle") || strings.Contains(lower, "driver")) && strings.Contains(lower, "trip") {
			vehicle := r.ex.LicensePlate(ctx, text)
			driver := r.ex.DriverName(ctx, text)
			trip := r.ex.TripIdentifier(ctx, text)
			if vehicle != "" || driver != "" || trip != "" {
				return dispatch.AssignVehicleDriver{Vehicle: vehicle, Driver: driver, Trip: trip}
			}
		}

	case "create", "add":
		switch {
		case strings.Contains(lower, "stop"):
			name := r.ex.QuotedString(text, "called", "named", "stop")
			if name == "" {
				name = DefaultStopName
			}
			return dispatch.CreateStop{Name: name, Lat: 0.0, Lng: 0.0}
		case strings.Contains(lower, "path"):
			name := r.ex.QuotedString(text, "called", "named", "path")
			if name == "" {
				name = DefaultPathName
			}
			return dispatch.CreatePath{Name: name, Stops: r.ex.StopsList(text)}
		case strings.Contains(lower, "vehicle"):
			plate := r.ex.LicensePlate(ctx, text)
			if plate == "" {
				plate = DefaultPlate
			}
			capacity, vmodel := r.sampleVehicleConfig(ctx)
			return dispatch.CreateVehicle{LicensePlate: plate, Capacity: capacity, Model: vmodel}
		case strings.Contains(lower, "driver"):
			name := r.ex.DriverName(ctx, text)
			if name == "" {
				name = DefaultDriverName
			}
			return dispatch.CreateDriver{Name: name, License: DefaultDriverLicense, Phone: DefaultDriverPhone}
		}
	}

	if strings.Contains(lower, "unassigned") || strings.Contains(lower, "available") || strings.Contains(lower, "free") {
		if strings.Contains(lower, "vehicle") {
			return dispatch.ListUnassignedVehicles{}
		}
		if strings.Contains(lower, "driver") {
			return dispatch.ListUnassignedDrivers{}
		}
	}

	if verb == "list" || verb == "show" || verb == "display" || verb == "get" {
		switch entity {
		case "vehicles":
			return dispatch.ListAllVehicles{}
		case "drivers":
			return dispatch.ListAllDrivers{}
		case "trips":
			return dispatch.ListAllTrips{}
		case "stops":
			return dispatch.ListAllStops{}
		case "routes":
			if strings.Contains(lower, "path") {
				if pathName := r.ex.PathName(ctx, text); pathName != "" {
					return dispatch.ListRoutesUsingPath{Path: pathName}
				}
			}
			return dispatch.ListAllRoutes{}
		case "paths":
			return dispatch.ListAllPaths{}
		case "deployments":
			return dispatch.ListAllDeployments{}
		}

		if strings.Contains(lower, "stop") && (strings.Contains(lower, "route") || strings.Contains(lower, "path")) {
			if strings.Contains(lower, "route") {
				if routeName := r.ex.RouteName(ctx, text); routeName != "" {
					return dispatch.ListStopsForRoute{Route: routeName}
				}
			}
			if strings.Contains(lower, "path") {
				if pathName := r.ex.PathName(ctx, text); pathName != "" {
					return dispatch.ListStopsForPath{Path: pathName}
				}
			}
		}

		if strings.Contains(lower, "status") && strings.Contains(lower, "trip") {
			if trip := r.ex.QuotedString(text); trip != "" {
				return dispatch.GetTripStatus{Trip: trip}
			}
		}
	}

	r.l.Debugf(ctx, "%s: no intent matched for %q", LogPrefixClassify, text)
	return nil
}

// sampleVehicleConfig borrows capacity and model from an existing vehicle so
// created records look plausible, with fixed defaults on an empty fleet.
func (r *IntentRouter) sampleVehicleConfig(ctx context.Context) (int, string) {
	vehicles, err := r.c.ListVehicles(ctx)
	if err != nil || len(vehicles) == 0 {
		return DefaultCapacity, DefaultVehicleModel
	}
	capacity := vehicles[0].Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	vmodel := vehicles[0].Model
	if vmodel == "" {
		vmodel = DefaultVehicleModel
	}
	return capacity, vmodel
}
