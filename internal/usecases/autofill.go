package usecases

import (
	"sync"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// AutofillSession coordinates the advisory summary lookup that
// pre-populates the description field. It decides when a lookup should
// run, discards results from lookups that were superseded by a newer
// reference, and suppresses repeat failure notifications for the same
// reference until the reference changes.
//
// Completions may arrive on a different goroutine than the one that
// started the lookup, so the session guards its state with a mutex.
type AutofillSession struct {
	mu sync.Mutex

	// seq is a monotonically increasing lookup token. Only a completion
	// carrying the current token may be applied.
	seq uint64

	lastAutofilled   domain.TicketReference
	lastFailedLookup domain.TicketReference
}

// NewAutofillSession creates an empty session scoped to one command
// invocation.
func NewAutofillSession() *AutofillSession {
	return &AutofillSession{}
}

// Begin registers a newly resolved reference and reports whether a
// lookup should be started for it. A lookup is skipped when the
// reference is empty or its summary was already applied. The returned
// token must be passed back to Complete or Fail.
func (s *AutofillSession) Begin(ref domain.TicketReference) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ref == "" || ref == s.lastAutofilled {
		return 0, false
	}

	s.seq++
	return s.seq, true
}

// Complete records a successful lookup. Returns true if the summary
// should be applied; false means a newer lookup superseded this one and
// the result must be discarded.
func (s *AutofillSession) Complete(token uint64, ref domain.TicketReference) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		return false
	}

	s.lastAutofilled = ref
	if s.lastFailedLookup == ref {
		s.lastFailedLookup = ""
	}
	return true
}

// Fail records a failed lookup. Returns true if the failure should be
// shown to the user; false when the lookup was superseded or a failure
// for the same reference was already reported.
func (s *AutofillSession) Fail(token uint64, ref domain.TicketReference) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		return false
	}

	if ref == s.lastFailedLookup {
		return false
	}

	s.lastFailedLookup = ref
	return true
}
