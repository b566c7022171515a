package payment

import "errors"

var (
	ErrInvalidPackageID     = errors.New("invalid package id")
	ErrMissingDeliveredBy   = errors.New("delivered_by is required")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrCurrencyMismatch     = errors.New("payment currency does not match package currency")
	ErrAlreadyDelivered     = errors.New("package already delivered")
)
