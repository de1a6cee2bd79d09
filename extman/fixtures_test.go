package extman_test

import (
	"github.com/chframe/extman/extman"
	"github.com/chframe/extman/header"
)

// fakeExtension and fakeSession are minimal, directly-implemented test
// doubles for the Extension/Session contracts. They perform no real
// payload transformation; the "deflate"/"reverse" names are
// placeholders standing in for any per-message extension.
type fakeExtension struct {
	name                   string
	rsv1, rsv2, rsv3       bool
	newClient              func() extman.Session
	newServer              func(offers []*header.Params) extman.Session
	serverSessionCallCount *int
}

func (e *fakeExtension) Name() string { return e.name }
func (e *fakeExtension) Type() string { return extman.TypePerMessage }
func (e *fakeExtension) RSV1() bool   { return e.rsv1 }
func (e *fakeExtension) RSV2() bool   { return e.rsv2 }
func (e *fakeExtension) RSV3() bool   { return e.rsv3 }

func (e *fakeExtension) CreateClientSession() extman.Session {
	if e.newClient == nil {
		return nil
	}
	return e.newClient()
}

func (e *fakeExtension) CreateServerSession(offers []*header.Params) extman.Session {
	if e.serverSessionCallCount != nil {
		*e.serverSessionCallCount++
	}
	if e.newServer == nil {
		return nil
	}
	return e.newServer(offers)
}

type fakeSession struct {
	name         string
	offer        []*header.Params
	response     *header.Params
	activateFn   func(*header.Params) bool
	activateSeen *[]*header.Params
	outgoing     func(extman.Message) (extman.Message, error)
	incoming     func(extman.Message) (extman.Message, error)
	rsvFn        func(extman.Frame) extman.RSVPermission
	closeFn      func() error
	trace        *[]string
}

func (s *fakeSession) GenerateOffer() []*header.Params { return s.offer }

func (s *fakeSession) GenerateResponse() *header.Params {
	if s.response == nil {
		return header.NewParams()
	}
	return s.response
}

func (s *fakeSession) Activate(params *header.Params) bool {
	if s.activateSeen != nil {
		*s.activateSeen = append(*s.activateSeen, params)
	}
	if s.activateFn == nil {
		return true
	}
	return s.activateFn(params)
}

func (s *fakeSession) ProcessOutgoingMessage(m extman.Message) (extman.Message, error) {
	if s.trace != nil {
		*s.trace = append(*s.trace, s.name)
	}
	if s.outgoing == nil {
		return m, nil
	}
	return s.outgoing(m)
}

func (s *fakeSession) ProcessIncomingMessage(m extman.Message) (extman.Message, error) {
	if s.trace != nil {
		*s.trace = append(*s.trace, s.name)
	}
	if s.incoming == nil {
		return m, nil
	}
	return s.incoming(m)
}

func (s *fakeSession) ValidFrameRSV(f extman.Frame) extman.RSVPermission {
	if s.rsvFn == nil {
		return extman.RSVPermission{}
	}
	return s.rsvFn(f)
}

func (s *fakeSession) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
