// Package scanner pairs a desktop session with a mobile barcode scanner and
// relays messages between them.
package scanner

import (
	"strings"
	"sync"
	"time"

	"ojitos/pkg/logger"
)

type Side string

const (
	SideDesktop Side = "desktop"
	SideMobile  Side = "mobile"
)

func (s Side) IsValid() bool {
	return s == SideDesktop || s == SideMobile
}

func (s Side) other() Side {
	if s == SideDesktop {
		return SideMobile
	}
	return SideDesktop
}

const (
	NoticeMobileConnected     = "mobile_connected"
	NoticeMobileDisconnected  = "mobile_disconnected"
	NoticeDesktopDisconnected = "desktop_disconnected"
)

// Peer is one registered connection. Writes to it are serialized.
type Peer struct {
	SessionID string
	Side      Side

	mu   sync.Mutex
	conn Conn
}

func (p *Peer) send(v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(v)
}

func (p *Peer) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.conn.Close()
}

type session struct {
	peers map[Side]*Peer
}

// Registry holds every pairing session of the process. A session has at most
// one desktop and one mobile connection.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	log      serviceLogger
	now      func() time.Time
}

func NewRegistry(log serviceLogger) *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		log:      log.With(logger.NewField("component", "scanner_registry")),
		now:      time.Now,
	}
}

type delivery struct {
	to  *Peer
	msg map[string]any
}

// Join registers a connection. A newer connection of the same side replaces
// and closes the previous one.
func (r *Registry) Join(sessionID string, side Side, conn Conn) (*Peer, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	if !side.IsValid() {
		return nil, ErrInvalidSide
	}

	peer := &Peer{SessionID: sessionID, Side: side, conn: conn}

	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{peers: make(map[Side]*Peer, 2)}
		r.sessions[sessionID] = s
		activeSessions.Inc()
	}
	replaced := s.peers[side]
	s.peers[side] = peer

	var notices []delivery
	if desktop, mobile := s.peers[SideDesktop], s.peers[SideMobile]; desktop != nil && mobile != nil {
		notices = append(notices, delivery{to: desktop, msg: r.notice(NoticeMobileConnected, sessionID)})
	}
	r.mu.Unlock()

	if replaced != nil {
		r.log.Info("scanner connection replaced",
			logger.NewField("session_id", sessionID),
			logger.NewField("side", string(side)),
		)
		replaced.close()
	}
	r.deliver(notices)

	return peer, nil
}

// Leave unregisters a connection and tells the other side. It is a no-op for
// a connection that was already replaced.
func (r *Registry) Leave(peer *Peer) {
	r.mu.Lock()
	s, ok := r.sessions[peer.SessionID]
	if !ok || s.peers[peer.Side] != peer {
		r.mu.Unlock()
		return
	}
	delete(s.peers, peer.Side)

	var notices []delivery
	if other := s.peers[peer.Side.other()]; other != nil {
		notices = append(notices, delivery{to: other, msg: r.notice(string(peer.Side)+"_disconnected", peer.SessionID)})
	}
	if len(s.peers) == 0 {
		delete(r.sessions, peer.SessionID)
		activeSessions.Dec()
	}
	r.mu.Unlock()

	r.deliver(notices)
}

// Relay forwards a message to the other side of the session, stamped with
// the sender side and the relay time as RFC 3339 UTC.
func (r *Registry) Relay(from *Peer, message map[string]any) error {
	if len(message) == 0 {
		return ErrEmptyMessage
	}

	r.mu.Lock()
	s, ok := r.sessions[from.SessionID]
	if !ok || s.peers[from.Side] != from {
		r.mu.Unlock()
		return ErrPeerReplaced
	}
	to := s.peers[from.Side.other()]
	r.mu.Unlock()

	if to == nil {
		relayedMessages.WithLabelValues(string(from.Side), "unpaired").Inc()
		return ErrPeerNotPaired
	}

	out := make(map[string]any, len(message)+2)
	for k, v := range message {
		out[k] = v
	}
	out["from"] = string(from.Side)
	out["timestamp"] = r.stamp()

	if err := to.send(out); err != nil {
		relayedMessages.WithLabelValues(string(from.Side), "error").Inc()
		return err
	}
	relayedMessages.WithLabelValues(string(from.Side), "ok").Inc()
	return nil
}

// Sessions returns the number of open sessions.
func (r *Registry) Sessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) notice(kind, sessionID string) map[string]any {
	return map[string]any{
		"type":      kind,
		"sessionId": sessionID,
		"timestamp": r.stamp(),
	}
}

func (r *Registry) stamp() string {
	return r.now().UTC().Format(time.RFC3339Nano)
}

func (r *Registry) deliver(notices []delivery) {
	for _, n := range notices {
		if err := n.to.send(n.msg); err != nil {
			r.log.Warn("scanner notice not delivered",
				logger.NewField("session_id", n.to.SessionID),
				logger.NewField("side", string(n.to.Side)),
				logger.NewField("error", err),
			)
		}
	}
}
