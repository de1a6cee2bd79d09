package extman

// validFrameRSV reports whether frame's RSV bits are all permitted: a
// bit is globally allowed if any active session permits it, and the
// frame is valid iff every bit it actually sets is allowed (unclaimed
// bits must be zero).
func validFrameRSV(sessions []Session, frame Frame) bool {
	var allowed RSVPermission
	for _, s := range sessions {
		p := s.ValidFrameRSV(frame)
		allowed.RSV1 = allowed.RSV1 || p.RSV1
		allowed.RSV2 = allowed.RSV2 || p.RSV2
		allowed.RSV3 = allowed.RSV3 || p.RSV3
	}
	if frame.RSV1 && !allowed.RSV1 {
		return false
	}
	if frame.RSV2 && !allowed.RSV2 {
		return false
	}
	if frame.RSV3 && !allowed.RSV3 {
		return false
	}
	return true
}
