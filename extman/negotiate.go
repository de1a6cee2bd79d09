//go:generate errtrace -w .

package extman

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/chframe/extman/header"
	"github.com/chframe/extman/internal/rsvstate"
)

// sessionEntry is the negotiation-time record for one extension that
// produced a client session.
type sessionEntry struct {
	ext     Extension
	session Session
}

// negotiator owns the mutable negotiation state shared by the client
// and server sides: the index of per-extension sessions, the ordered
// list of active sessions the pipeline uses, and the three RSV
// reservations. It never lets a Session reference escape to an
// Extension.
type negotiator struct {
	registry *Registry
	log      *slog.Logger

	index    map[string]*sessionEntry
	sessions []Session
	rsv      *rsvstate.Reservations
}

func newNegotiator(registry *Registry, log *slog.Logger) *negotiator {
	return &negotiator{
		registry: registry,
		log:      log,
		index:    make(map[string]*sessionEntry),
		rsv:      rsvstate.New(),
	}
}

// generateOffer asks each registered extension's client session for its
// offer fragments, in registration order, and joins them into a single
// header value (or nil if nothing was offered).
func (n *negotiator) generateOffer() *string {
	n.index = make(map[string]*sessionEntry)
	n.sessions = nil

	var fragments []string
	for _, ext := range n.registry.InOrder() {
		session := ext.CreateClientSession()
		if session == nil {
			continue
		}
		n.index[ext.Name()] = &sessionEntry{ext: ext, session: session}

		// A nil/empty result means "no fragment but keep the session";
		// a single- or multi-element slice both fall out of the same
		// range.
		for _, params := range session.GenerateOffer() {
			fragments = append(fragments, header.Serialize(ext.Name(), params))
		}
	}
	n.log.Debug("generated offer", "fragment_count", len(fragments))
	if len(fragments) == 0 {
		return nil
	}
	joined := header.JoinOffers(fragments)
	return &joined
}

// activate parses the peer's response header and, for each accepted
// extension, reserves its RSV claims and runs Activate on its session.
func (n *negotiator) activate(resp *string) error {
	offers, err := header.Parse(resp)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var sessions []Session
	for _, entry := range offers.Entries() {
		se, ok := n.index[entry.Name]
		if !ok {
			return errtrace.Wrap(extensionErrorf(ErrUnknownExtension, "activate: %q was not offered", entry.Name))
		}

		if owner, conflict := n.rsvConflict(se.ext, entry.Name); conflict {
			return errtrace.Wrap(extensionErrorf(ErrRSVConflict, "activate: %q conflicts with already-reserved extension %q", entry.Name, owner))
		}

		if !se.session.Activate(entry.Params) {
			return errtrace.Wrap(extensionErrorf(ErrRejectedParams, "activate: %q rejected its params", entry.Name))
		}

		n.reserveRSV(se.ext, entry.Name)
		sessions = append(sessions, se.session)
		n.log.Debug("activated extension", "name", entry.Name)
	}
	n.sessions = sessions
	return nil
}

// generateResponse walks the registry in registration order — not
// offer order — and, for each extension the peer offered, lets it
// build a server session from the merged offer groups. An extension
// whose RSV claims conflict with an already-accepted one, or that
// declines by returning a nil session, is silently skipped.
func (n *negotiator) generateResponse(offerHeader *string) (*string, error) {
	offers, err := header.Parse(offerHeader)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var fragments []string
	var sessions []Session
	for _, ext := range n.registry.InOrder() {
		forExt := offers.ByName(ext.Name())
		if len(forExt) == 0 {
			continue
		}
		if _, conflict := n.rsvConflict(ext, ext.Name()); conflict {
			n.log.Debug("skipping extension due to rsv conflict", "name", ext.Name())
			continue
		}

		session := ext.CreateServerSession(forExt)
		if session == nil {
			n.log.Debug("server declined extension", "name", ext.Name())
			continue
		}

		n.reserveRSV(ext, ext.Name())
		sessions = append(sessions, session)
		fragments = append(fragments, header.Serialize(ext.Name(), session.GenerateResponse()))
		n.log.Debug("accepted extension", "name", ext.Name())
	}
	n.sessions = sessions

	if len(fragments) == 0 {
		return nil, nil
	}
	joined := header.JoinOffers(fragments)
	return &joined, nil
}

// rsvConflict reports whether ext's claimed bits collide with a
// different extension's existing reservation.
func (n *negotiator) rsvConflict(ext Extension, name string) (string, bool) {
	for _, claim := range rsvClaims(ext) {
		if owner, conflict := n.rsv.Conflicts(claim, name); conflict {
			return owner, true
		}
	}
	return "", false
}

func (n *negotiator) reserveRSV(ext Extension, name string) {
	for _, claim := range rsvClaims(ext) {
		// Already validated free-or-same by rsvConflict; Claim cannot
		// fail here except by a same-owner no-op.
		_ = n.rsv.Claim(claim, name)
	}
}

func rsvClaims(ext Extension) []rsvstate.Bit {
	var bits []rsvstate.Bit
	if ext.RSV1() {
		bits = append(bits, rsvstate.RSV1)
	}
	if ext.RSV2() {
		bits = append(bits, rsvstate.RSV2)
	}
	if ext.RSV3() {
		bits = append(bits, rsvstate.RSV3)
	}
	return bits
}
