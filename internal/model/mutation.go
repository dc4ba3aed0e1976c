package model

// Mutation is a single-position substitution between two sequences.
type Mutation struct {
	Position  int  // 1-based
	Reference rune // residue in the reference
	Mutated   rune // residue in the candidate
}

// MutationSet is the ordered result of one comparison, ascending by position.
type MutationSet []Mutation

// Summary holds the counts of one comparison.
type Summary struct {
	ReferenceLength int
	CandidateLength int
	Compared        int // positions actually compared (the shorter length)
	Mutations       int
}

// Identity returns the fraction of compared positions that match.
// Comparing nothing is reported as full identity.
func (s Summary) Identity() float64 {
	if s.Compared == 0 {
		return 1.0
	}

	return float64(s.Compared-s.Mutations) / float64(s.Compared)
}

// Ignored returns how many trailing residues of the longer sequence were not compared.
func (s Summary) Ignored() int {
	if s.ReferenceLength > s.CandidateLength {
		return s.ReferenceLength - s.Compared
	}

	return s.CandidateLength - s.Compared
}
