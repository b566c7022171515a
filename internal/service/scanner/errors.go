package scanner

import "errors"

var (
	ErrMissingSession = errors.New("session id is required")
	ErrInvalidSide    = errors.New("type must be desktop or mobile")
	ErrPeerNotPaired  = errors.New("the other side is not connected")
	ErrPeerReplaced   = errors.New("connection was replaced by a newer one")
	ErrEmptyMessage   = errors.New("message is empty")
)
