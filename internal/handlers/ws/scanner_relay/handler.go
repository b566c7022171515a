package scanner_relay

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/scanner"
	"ojitos/pkg/logger"
)

const (
	maxMessageSize = 64 << 10
	idleTimeout    = 10 * time.Minute
)

type Handler struct {
	log      handlerLogger
	registry Registry
	upgrader websocket.Upgrader
}

func New(log handlerLogger, registry Registry) *Handler {
	handlerLog := log.With(logger.NewField("handler", "scanner_relay"))
	return &Handler{
		log:      handlerLog,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Desktop and phone load the back office from different origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sessionID := query.Get("sessionId")
	side := scanner.Side(query.Get("type"))

	if sessionID == "" {
		respond.Error(w, http.StatusBadRequest, "falta sessionId")
		return
	}
	if !side.IsValid() {
		respond.Error(w, http.StatusBadRequest, "type debe ser desktop o mobile")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}

	peer, err := h.registry.Join(sessionID, side, conn)
	if err != nil {
		h.log.With(
			logger.NewField("session_id", sessionID),
			logger.NewField("error", err),
		).Warn("join scanner session")
		_ = conn.Close()
		return
	}
	defer h.registry.Leave(peer)

	h.log.Info("scanner connected",
		logger.NewField("session_id", sessionID),
		logger.NewField("side", string(side)),
	)

	h.readLoop(conn, peer)

	h.log.Info("scanner disconnected",
		logger.NewField("session_id", sessionID),
		logger.NewField("side", string(side)),
	)
}

func (h *Handler) readLoop(conn *websocket.Conn, peer *scanner.Peer) {
	conn.SetReadLimit(maxMessageSize)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))

		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.With(
					logger.NewField("session_id", peer.SessionID),
					logger.NewField("error", err),
				).Warn("scanner connection lost")
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		var message map[string]any
		if err := json.Unmarshal(data, &message); err != nil {
			h.log.With(
				logger.NewField("session_id", peer.SessionID),
				logger.NewField("error", err),
			).Warn("scanner message is not a JSON object")
			continue
		}

		err = h.registry.Relay(peer, message)
		switch {
		case err == nil:
		case errors.Is(err, scanner.ErrPeerReplaced):
			return
		case errors.Is(err, scanner.ErrPeerNotPaired), errors.Is(err, scanner.ErrEmptyMessage):
			// Dropped: scans made before the other side connects are lost.
		default:
			h.log.With(
				logger.NewField("session_id", peer.SessionID),
				logger.NewField("side", string(peer.Side)),
				logger.NewField("error", err),
			).Error("relay scanner message")
		}
	}
}
