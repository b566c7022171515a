package trip

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRoute          = errors.New("origin and destination must differ")
	ErrInvalidTravelerID     = errors.New("invalid traveler id")
	ErrInvalidStatus         = errors.New("invalid trip status")
)
