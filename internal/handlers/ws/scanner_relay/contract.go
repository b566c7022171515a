//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scanner_relay_test
package scanner_relay

import (
	"ojitos/internal/service/scanner"
	"ojitos/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Registry interface {
	Join(sessionID string, side scanner.Side, conn scanner.Conn) (*scanner.Peer, error)
	Leave(peer *scanner.Peer)
	Relay(from *scanner.Peer, message map[string]any) error
}
