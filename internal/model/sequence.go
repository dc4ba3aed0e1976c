// Package model defines the data structures shared by the sequence comparison pipeline.
package model

// Sequence is an ordered run of residue characters read from a FASTA source.
// The alphabet is not validated; any character is kept as read.
type Sequence string

// Residues returns the sequence as characters, in source order.
func (s Sequence) Residues() []rune {
	return []rune(string(s))
}

// Len returns the number of residues.
func (s Sequence) Len() int {
	return len(s.Residues())
}

// Slot names one of the two sequences held by a session.
type Slot int

const (
	// SlotReference is sequence 1, the reference.
	SlotReference Slot = iota + 1
	// SlotCandidate is sequence 2, the mutated candidate.
	SlotCandidate
)

func (s Slot) String() string {
	switch s {
	case SlotReference:
		return "sequence 1"
	case SlotCandidate:
		return "sequence 2"
	default:
		return "unknown sequence"
	}
}

// Role describes the slot the way reports label it.
func (s Slot) Role() string {
	switch s {
	case SlotReference:
		return "Reference"
	case SlotCandidate:
		return "Mutated"
	default:
		return "Unknown"
	}
}
