package whatsapp

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyMessageID = errors.New("whatsapp response carries no message id")
	// ErrUnreadableResponse follows a 2xx answer: the message was accepted
	// and must not be posted again.
	ErrUnreadableResponse = errors.New("whatsapp accepted the message but the response is unreadable")
)

// APIError is a non-2xx answer of the Cloud API.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api: status %d, code %d: %s", e.StatusCode, e.Code, e.Message)
}

// Retryable reports throttling and server side failures.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}
