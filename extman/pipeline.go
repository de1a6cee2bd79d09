//go:generate errtrace -w .

package extman

import "braces.dev/errtrace"

// processOutgoingMessage folds m through every active session
// left-to-right, i.e. registration/activation order.
func processOutgoingMessage(sessions []Session, m Message) (Message, error) {
	for _, s := range sessions {
		next, err := s.ProcessOutgoingMessage(m)
		if err != nil {
			return nil, errtrace.Wrap(wrapExtensionError(err))
		}
		m = next
	}
	return m, nil
}

// processIncomingMessage folds m through every active session in
// reverse, i.e. rightmost (most recently activated) session first.
func processIncomingMessage(sessions []Session, m Message) (Message, error) {
	for i := len(sessions) - 1; i >= 0; i-- {
		next, err := sessions[i].ProcessIncomingMessage(m)
		if err != nil {
			return nil, errtrace.Wrap(wrapExtensionError(err))
		}
		m = next
	}
	return m, nil
}
