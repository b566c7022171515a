package dispatch

import "errors"

var (
	ErrNoPackages         = errors.New("dispatch needs at least one package")
	ErrInvalidPackageID   = errors.New("invalid package id")
	ErrInvalidDispatchID  = errors.New("invalid dispatch id")
	ErrInvalidTripID      = errors.New("invalid trip id")
	ErrDuplicatePackageID = errors.New("package listed twice")
	ErrPackageNotEligible = errors.New("package is not eligible for dispatch")
	ErrPackagesMissing    = errors.New("some packages do not exist")
)
