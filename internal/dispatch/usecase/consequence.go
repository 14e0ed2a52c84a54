package usecase

import (
	"context"
	"fmt"

	"fleet-dispatch/internal/dispatch"
)

// checkConsequences decides whether the pending command needs operator
// confirmation. It is skipped mid-confirmation and after an override: a risk
// that was already presented and approved must not be re-evaluated.
func (uc *implUseCase) checkConsequences(ctx context.Context, sess *dispatch.Session) {
	if sess.Pending == nil {
		sess.NeedsConfirmation = false
		sess.ConfirmationMessage = ""
		return
	}
	if sess.AwaitingConfirmation || sess.ConfirmationOverride {
		return
	}

	sess.NeedsConfirmation = false
	sess.ConfirmationMessage = ""

	// Removing a deployment from a trip with live bookings cancels them.
	cmd, ok := sess.Pending.(dispatch.RemoveVehicleFromTrip)
	if !ok || cmd.Trip == "" {
		return
	}
	tripID, err := uc.repo.FindTripByDisplayName(ctx, cmd.Trip)
	if err != nil || tripID == 0 {
		return
	}
	booked, err := uc.repo.TripBookingLoad(ctx, tripID)
	if err != nil || booked <= 0 {
		return
	}

	sess.NeedsConfirmation = true
	sess.ConfirmationMessage = fmt.Sprintf(
		"Trip '%s' is %.0f%% booked. Removing vehicle will cancel bookings. Proceed?",
		cmd.Trip, booked*100)
}
