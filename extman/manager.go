package extman

import (
	"log/slog"

	"github.com/chframe/extman/extlog"
)

// Manager is the single-threaded, synchronous facade over extension
// negotiation and the message pipeline for one connection: it owns a
// Registry, the negotiation state, and the active session list. It
// performs no I/O. A Manager must not be used from more than one
// goroutine concurrently.
type Manager struct {
	registry *Registry
	neg      *negotiator
	log      *slog.Logger
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger sets the Manager's logger. Without it, extlog.Default()
// is used (Noop until the caller calls extlog.SetDefault).
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// New returns an empty Manager ready to accept extension
// registrations.
func New(opts ...Option) *Manager {
	m := &Manager{registry: newRegistry(), log: extlog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	m.neg = newNegotiator(m.registry, m.log)
	return m
}

// Add registers ext. See Registry.Add for validation rules.
func (m *Manager) Add(ext Extension) error {
	return m.registry.Add(ext)
}

// Extensions returns the registered extensions in registration order.
// It performs no mutation; it exists for diagnostics.
func (m *Manager) Extensions() []Extension {
	return m.registry.InOrder()
}

// GenerateOffer builds this connection's client-side offer header, or
// nil if no registered extension has anything to offer.
func (m *Manager) GenerateOffer() *string {
	return m.neg.generateOffer()
}

// Activate processes the server's response header (nil if the server
// sent none), activating the client sessions it names.
func (m *Manager) Activate(respHeader *string) error {
	return m.neg.activate(respHeader)
}

// GenerateResponse processes the client's offer header (nil if the
// client sent none) and builds this connection's server-side response
// header, or nil if nothing was accepted.
func (m *Manager) GenerateResponse(offerHeader *string) (*string, error) {
	return m.neg.generateResponse(offerHeader)
}

// ValidFrameRSV reports whether frame's RSV bits are all permitted by
// the active sessions.
func (m *Manager) ValidFrameRSV(frame Frame) bool {
	return validFrameRSV(m.neg.sessions, frame)
}

// ProcessOutgoingMessage folds msg through the active sessions before
// it goes out on the wire.
func (m *Manager) ProcessOutgoingMessage(msg Message) (Message, error) {
	return processOutgoingMessage(m.neg.sessions, msg)
}

// ProcessIncomingMessage folds msg through the active sessions after
// it comes in off the wire.
func (m *Manager) ProcessIncomingMessage(msg Message) (Message, error) {
	return processIncomingMessage(m.neg.sessions, msg)
}

// Close tears every active session down in the order of the active
// session list, swallowing individual failures (best-effort teardown).
// That order is registry order after GenerateResponse, but the order of
// the server's response header after Activate, which need not match
// registration order. Behavior of
// further Manager calls after Close is unspecified.
func (m *Manager) Close() {
	for _, s := range m.neg.sessions {
		if err := s.Close(); err != nil {
			m.log.Debug("session close failed, ignoring", "error", err)
		}
	}
}
