package label

import "errors"

var (
	ErrInvalidPackageID = errors.New("invalid package id")
	ErrInvalidFormat    = errors.New("unsupported label format")
)
