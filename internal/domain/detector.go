package domain

import (
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// Detect compares reference and candidate position by position and returns
// one Mutation per mismatching position, in ascending order.
//
// Only the overlapping prefix is compared; trailing residues of the longer
// sequence are ignored and never reported as insertions or deletions.
func Detect(reference, candidate m.Sequence) m.MutationSet {
	ref := reference.Residues()
	cand := candidate.Residues()

	n := min(len(ref), len(cand))
	mutations := m.MutationSet{}

	for i := 0; i < n; i++ {
		if ref[i] != cand[i] {
			mutations = append(mutations, m.Mutation{
				Position:  i + 1,
				Reference: ref[i],
				Mutated:   cand[i],
			})
		}
	}

	return mutations
}

// Summarize collects the counts describing one comparison.
func Summarize(reference, candidate m.Sequence, mutations m.MutationSet) m.Summary {
	refLen := reference.Len()
	candLen := candidate.Len()

	return m.Summary{
		ReferenceLength: refLen,
		CandidateLength: candLen,
		Compared:        min(refLen, candLen),
		Mutations:       len(mutations),
	}
}
