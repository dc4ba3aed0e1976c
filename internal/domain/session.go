package domain

import (
	"fmt"

	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// Session holds the state of one interactive run: the two loaded sequences
// and the last comparison together with the pair it was run on. It belongs to the shell; the
// loading, detection and rendering functions never touch it.
type Session struct {
	sequences map[m.Slot]m.Sequence
	result    m.MutationSet
	compared  bool
	reference m.Sequence
	candidate m.Sequence
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{sequences: make(map[m.Slot]m.Sequence, 2)}
}

// Set stores a loaded sequence in slot.
func (s *Session) Set(slot m.Slot, sequence m.Sequence) {
	s.sequences[slot] = sequence
}

// Sequence returns the sequence in slot and whether one was loaded.
func (s *Session) Sequence(slot m.Slot) (m.Sequence, bool) {
	sequence, ok := s.sequences[slot]
	return sequence, ok
}

// Ready reports whether both sequences are loaded.
func (s *Session) Ready() bool {
	_, ref := s.sequences[m.SlotReference]
	_, cand := s.sequences[m.SlotCandidate]

	return ref && cand
}

// Pair returns both sequences, or ErrSequencesNotLoaded naming the first empty slot.
func (s *Session) Pair() (m.Sequence, m.Sequence, error) {
	for _, slot := range []m.Slot{m.SlotReference, m.SlotCandidate} {
		if _, ok := s.sequences[slot]; !ok {
			return "", "", fmt.Errorf("%w: %s is empty", ErrSequencesNotLoaded, slot)
		}
	}

	return s.sequences[m.SlotReference], s.sequences[m.SlotCandidate], nil
}

// SetResult records the outcome of comparing reference with candidate. An
// empty set is a valid result. Loading a sequence later does not change the
// recorded pair.
func (s *Session) SetResult(reference, candidate m.Sequence, mutations m.MutationSet) {
	s.result = mutations
	s.reference = reference
	s.candidate = candidate
	s.compared = true
}

// Result returns the last comparison result, or ErrNoComparison before the
// first comparison.
func (s *Session) Result() (m.MutationSet, error) {
	if !s.compared {
		return nil, ErrNoComparison
	}

	return s.result, nil
}

// ComparedPair returns the sequences the last comparison was run on, or
// ErrNoComparison before the first comparison.
func (s *Session) ComparedPair() (m.Sequence, m.Sequence, error) {
	if !s.compared {
		return "", "", ErrNoComparison
	}

	return s.reference, s.candidate, nil
}
