package errs

import "errors"

// Sentinel errors shared by the listener, scheduler and dispatcher
var (
	// Listener errors
	ErrConnectivity     = errors.New("listener connectivity lost")
	ErrMalformedPayload = errors.New("malformed notification payload")
	ErrUnknownChannel   = errors.New("notification on unhandled channel")

	// Lookup errors
	ErrDetailNotFound = errors.New("notification detail not found")

	// Delivery errors
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// Scheduling errors
	ErrSchedulingDeclined = errors.New("reminder window already passed")
	ErrSchedulerStopped   = errors.New("scheduler stopped")
	ErrScheduleCancelled  = errors.New("reminder cancelled while being scheduled")
)
