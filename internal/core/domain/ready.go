package domain

import "sync"

// ReadyReason records what proved the frontend ready.
type ReadyReason string

const (
	// ReadyByLog means a readiness marker was seen in the frontend output.
	ReadyByLog ReadyReason = "log"
	// ReadyByConnect means a TCP connect to the frontend port succeeded.
	ReadyByConnect ReadyReason = "connect"
)

// ReadySignal is a one-shot notification. It fires at most once and carries
// the reason of the first Fire call.
type ReadySignal struct {
	once   sync.Once
	done   chan struct{}
	reason ReadyReason
}

// NewReadySignal creates an unfired signal.
func NewReadySignal() *ReadySignal {
	return &ReadySignal{done: make(chan struct{})}
}

// Fire marks the signal ready. It reports whether this call was the one that fired it.
func (s *ReadySignal) Fire(reason ReadyReason) bool {
	fired := false
	s.once.Do(func() {
		s.reason = reason
		close(s.done)
		fired = true
	})
	return fired
}

// Done returns a channel that is closed once the signal fires.
func (s *ReadySignal) Done() <-chan struct{} {
	return s.done
}

// IsReady reports whether the signal has fired.
func (s *ReadySignal) IsReady() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Reason returns the reason passed to the first Fire call, or "" if the
// signal has not fired.
func (s *ReadySignal) Reason() ReadyReason {
	if !s.IsReady() {
		return ""
	}
	return s.reason
}
