package match

import "sort"

// DefaultMinScore is the minimum similarity for a candidate to be
// suggested.
const DefaultMinScore = 0.5

// Candidate is a name scored against a wanted name.
type Candidate struct {
	Name string
	// Score is the normalized similarity (0-1).
	Score float64
}

// CandidateList is a list of candidates sorted best first.
type CandidateList []Candidate

// Rank scores every candidate against name. The result is sorted by score,
// descending, then by name.
func Rank(name string, candidates []string) CandidateList {
	list := make(CandidateList, 0, len(candidates))

	for _, c := range candidates {
		list = append(list, Candidate{Name: c, Score: NormalizedSimilarity(name, c)})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to limit candidates scoring at least DefaultMinScore
// against name, best first.
func Suggest(name string, candidates []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, candidates).AboveThreshold(DefaultMinScore).Top(limit) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there is none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
