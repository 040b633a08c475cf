package cfr

// Params selects the CFR variant. The zero value corresponds to vanilla
// CFR: simultaneous updates, uniform averaging, and no regret flooring.
//
// The flags are independent and are fixed when the Solver is constructed.
type Params struct {
	// UseRegretMatchingPlus floors cumulative regrets at zero after every
	// update (CFR+).
	UseRegretMatchingPlus bool
	// AlternatingUpdates updates a single player per iteration, cycling
	// round-robin, instead of updating every player in one tree walk.
	AlternatingUpdates bool
	// LinearAveraging weights iteration t's contribution to the average
	// strategy by t+1 (the 1-based iteration index), so later iterations
	// dominate the average.
	LinearAveraging bool
}

// CFRPlusParams is the conventional CFR+ configuration: regret flooring
// with alternating updates and linearly weighted averaging.
func CFRPlusParams() Params {
	return Params{
		UseRegretMatchingPlus: true,
		AlternatingUpdates:    true,
		LinearAveraging:       true,
	}
}

// strategyWeight is the averaging weight for the given 0-based iteration.
func (p Params) strategyWeight(iter int) float64 {
	if p.LinearAveraging {
		return float64(iter + 1)
	}
	return 1.0
}
