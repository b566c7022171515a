package entities

import "errors"

// Sentinels returned by repositories shared between services.
var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrDispatchNotFound    = errors.New("dispatch not found")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrTravelerNotFound    = errors.New("traveler not found")
	ErrFreightRateNotFound = errors.New("no freight rate for route")

	ErrDuplicateTracking = errors.New("tracking number already exists")
	ErrDuplicateFlight   = errors.New("flight already registered for this date")
	ErrDuplicatePhone    = errors.New("phone already registered")

	// ErrProcedureUnavailable is returned when the atomic delivery procedure
	// is missing or not executable by the current role.
	ErrProcedureUnavailable = errors.New("delivery procedure unavailable")
)
