//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scanner_test
package scanner

import (
	"ojitos/pkg/logger"
)

// Conn is the write side of a client connection.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
