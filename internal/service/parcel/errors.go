package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidTripID         = errors.New("invalid trip id")
	ErrInvalidWeight         = errors.New("weight must be positive")
	ErrInvalidFreight        = errors.New("freight must not be negative")
	ErrInvalidAmount         = errors.New("amount to collect must not be negative")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrInvalidStatus         = errors.New("invalid package status")
	ErrTrackingExhausted     = errors.New("could not generate a unique tracking number")
)
