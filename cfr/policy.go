package cfr

import (
	spiel "github.com/wengminhua/open-spiel"
	"github.com/wengminhua/open-spiel/internal/f64"
)

// infoStateValues is the table entry for one information set: cumulative
// regrets, cumulative weighted strategy sums, and the current
// regret-matched strategy, one slot per legal action.
type infoStateValues struct {
	regretSum       []float64
	strategySum     []float64
	currentStrategy []float64
}

func newInfoStateValues(nActions int) *infoStateValues {
	return &infoStateValues{
		regretSum:       make([]float64, nActions),
		strategySum:     make([]float64, nActions),
		currentStrategy: uniformDist(nActions),
	}
}

func (v *infoStateValues) numActions() int {
	return len(v.regretSum)
}

// regretMatching recomputes the current strategy in proportion to positive
// cumulative regret, falling back to uniform when no regret is positive.
func (v *infoStateValues) regretMatching() {
	copy(v.currentStrategy, v.regretSum)
	makePositive(v.currentStrategy)
	total := f64.Sum(v.currentStrategy)
	if total > 0 {
		f64.ScalUnitary(1.0/total, v.currentStrategy)
	} else {
		for i := range v.currentStrategy {
			v.currentStrategy[i] = 1.0 / float64(len(v.currentStrategy))
		}
	}
}

func (v *infoStateValues) floorRegrets() {
	makePositive(v.regretSum)
}

// averageStrategy returns the normalized cumulative strategy sum, or the
// uniform distribution if nothing has been accumulated yet. The result is
// freshly allocated and safe for the caller to retain.
func (v *infoStateValues) averageStrategy() []float64 {
	total := f64.Sum(v.strategySum)
	if total > 0 {
		avg := make([]float64, len(v.strategySum))
		f64.ScalUnitaryTo(avg, 1.0/total, v.strategySum)
		return avg
	}

	return uniformDist(len(v.regretSum))
}

// matchedStrategy is like regretMatching but writes to a fresh slice,
// leaving the entry untouched.
func (v *infoStateValues) matchedStrategy() []float64 {
	matched := make([]float64, len(v.regretSum))
	copy(matched, v.regretSum)
	makePositive(matched)
	total := f64.Sum(matched)
	if total > 0 {
		f64.ScalUnitary(1.0/total, matched)
		return matched
	}

	return uniformDist(len(matched))
}

func uniformDist(n int) []float64 {
	result := make([]float64, n)
	p := 1.0 / float64(n)
	f64.AddConst(p, result)
	return result
}

func makePositive(v []float64) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}

// TabularPolicy is a read-only snapshot of a strategy profile, mapping
// information-state keys to distributions over that infoset's legal
// actions. Keys never seen by the traversal report the uniform
// distribution rather than failing.
type TabularPolicy struct {
	table map[string][]float64
}

var _ spiel.Policy = (*TabularPolicy)(nil)

// ActionProbabilities implements spiel.Policy.
func (p *TabularPolicy) ActionProbabilities(state spiel.State) []float64 {
	key := state.InformationStateKey(state.CurrentPlayer())
	if probs, ok := p.table[key]; ok {
		result := make([]float64, len(probs))
		copy(result, probs)
		return result
	}

	return spiel.UniformDist(len(state.LegalActions()))
}

// ProbabilitiesForKey returns the stored distribution for an
// information-state key, if the traversal has visited it.
func (p *TabularPolicy) ProbabilitiesForKey(key string) ([]float64, bool) {
	probs, ok := p.table[key]
	if !ok {
		return nil, false
	}

	result := make([]float64, len(probs))
	copy(result, probs)
	return result, true
}

// NumInfoStates returns the number of information sets in the snapshot.
func (p *TabularPolicy) NumInfoStates() int {
	return len(p.table)
}
