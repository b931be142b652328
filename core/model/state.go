package model

import (
	"sync"
)

// StateManager tracks a reduction's online bookkeeping in a thread-safe way:
// whether anything has been learned yet, and running counts of accepted
// examples, emitted sub-examples, and pairs skipped without a base call.
type StateManager struct {
	mu sync.RWMutex

	fitted       bool
	examples     int64
	subExamples  int64
	skippedPairs int64
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether at least one example has been learned.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// CountExample records one completed learn call: the number of sub-examples
// emitted to the base learner and the number of degenerate pairs skipped
// without a base call. It marks the reduction as fitted.
func (s *StateManager) CountExample(subExamples, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.examples++
	s.subExamples += int64(subExamples)
	s.skippedPairs += int64(skipped)
}

// Reset clears the fitted flag and all counters.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.examples = 0
	s.subExamples = 0
	s.skippedPairs = 0
}

// Snapshot returns a copy of the current counters.
func (s *StateManager) Snapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Fitted:       s.fitted,
		Examples:     s.examples,
		SubExamples:  s.subExamples,
		SkippedPairs: s.skippedPairs,
	}
}

// Stats is a point-in-time copy of a reduction's counters.
type Stats struct {
	// Fitted reports whether any example has been learned.
	Fitted bool
	// Examples is the number of examples accepted by Learn.
	Examples int64
	// SubExamples is the number of sub-examples handed to the base learner
	// by Learn calls.
	SubExamples int64
	// SkippedPairs is the number of zero-cost-difference pairs dropped
	// without a base-learner call.
	SkippedPairs int64
}
