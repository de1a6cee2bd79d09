// Package extman implements a protocol-agnostic negotiation manager
// for framed bidirectional messaging extensions: it parses and
// serializes the negotiation header, composes independently-written
// extensions into an ordered pipeline under the constraint that at
// most one active extension may claim any reserved frame bit, and
// applies that pipeline to outgoing and incoming messages in
// direction-dependent order. Payload transformation, transport,
// framing, and the handshake exchange itself are the caller's
// concern; extman only knows how extensions are negotiated, ordered,
// and pipelined.
package extman

import "github.com/chframe/extman/header"

// TypePerMessage is the only recognized Extension.Type() value.
const TypePerMessage = "permessage"

// Extension is a caller-supplied, immutable descriptor for a
// negotiable extension. Exactly one Type is recognized today:
// TypePerMessage.
type Extension interface {
	Name() string
	Type() string
	RSV1() bool
	RSV2() bool
	RSV3() bool

	// CreateClientSession returns a new client-role Session, or nil if
	// this extension declines to participate as an offerer.
	CreateClientSession() Session

	// CreateServerSession returns a new server-role Session built from
	// the client's offers for this extension (one Params per offer
	// fragment using this extension's name, in appearance order), or
	// nil to decline the offer entirely.
	CreateServerSession(offers []*header.Params) Session
}

// Session is a per-connection, per-extension instance created during
// negotiation. It holds whatever state the extension needs and
// performs the actual message/frame transformation.
type Session interface {
	// GenerateOffer returns this session's offer fragments (client
	// role): nil for none, or one-or-more Params each serialized as a
	// separate fragment under the extension's name.
	GenerateOffer() []*header.Params

	// GenerateResponse returns this session's response params (server
	// role).
	GenerateResponse() *header.Params

	// Activate applies the server's chosen params (client role) and
	// reports whether they are acceptable. Only a literal true return
	// value counts as acceptance.
	Activate(params *header.Params) bool

	ProcessIncomingMessage(m Message) (Message, error)
	ProcessOutgoingMessage(m Message) (Message, error)

	// ValidFrameRSV reports which reserved bits this session permits
	// to be set on frame.
	ValidFrameRSV(frame Frame) RSVPermission

	// Close idempotently tears the session down. The manager treats
	// teardown as best-effort and logs, rather than propagates, any
	// returned error.
	Close() error
}
