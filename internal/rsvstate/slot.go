// Package rsvstate models the per-bit reservation state machine for a
// frame's reserved bits: each bit is either Unreserved or Reserved by
// exactly one extension, and once reserved it never reverts except by
// discarding the whole manager.
package rsvstate

import (
	"context"
	"fmt"

	"github.com/qmuntal/stateless"
)

type slotState string

const (
	stateUnreserved slotState = "unreserved"
	stateReserved   slotState = "reserved"
)

type trigger string

const triggerClaim trigger = "claim"

// Slot is one RSV bit's reservation state machine. The claiming
// extension's name is not itself a machine state (states form a small
// fixed set); it is data captured on entry into the Reserved state.
type Slot struct {
	sm    *stateless.StateMachine[slotState, trigger]
	owner string
}

// NewSlot returns a Slot in the Unreserved state.
func NewSlot() *Slot {
	s := &Slot{}
	s.sm = stateless.NewStateMachine[slotState, trigger](stateUnreserved)
	s.sm.Configure(stateUnreserved).
		Permit(triggerClaim, stateReserved)
	s.sm.Configure(stateReserved).
		OnEntryFrom(triggerClaim, func(_ context.Context, args ...any) error {
			s.owner = args[0].(string)
			return nil
		})
	return s
}

// Owner returns the name of the extension that reserved this slot, if
// any.
func (s *Slot) Owner() (string, bool) {
	if s.owner == "" {
		return "", false
	}
	return s.owner, true
}

// Reserve claims the slot for name. Reserving an already-reserved
// slot for the same name again is a no-op; claiming it for a
// different name fails since a slot has at most one owner.
func (s *Slot) Reserve(name string) error {
	if owner, ok := s.Owner(); ok {
		if owner == name {
			return nil
		}
		return fmt.Errorf("rsv slot already reserved by %q", owner)
	}
	return s.sm.Fire(triggerClaim, name)
}
