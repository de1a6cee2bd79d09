package extman

// Message is an opaque outgoing or incoming payload. extman never
// interprets its contents; it only threads it through the active
// session pipeline.
type Message []byte

// Frame carries the three reserved bits of one wire frame, the only
// part of a frame the RSV validity policy needs to see.
type Frame struct {
	RSV1, RSV2, RSV3 bool
}

// RSVPermission reports, per bit, whether a session permits that bit
// to be set on a frame.
type RSVPermission struct {
	RSV1, RSV2, RSV3 bool
}
