package service

import (
	"casino-wagering-engine/internal/core/domain"
)

// RouletteEvaluator is the pure payout evaluator for roulette spins.
type RouletteEvaluator struct{}

// NewRouletteEvaluator creates the evaluator.
func NewRouletteEvaluator() *RouletteEvaluator {
	return &RouletteEvaluator{}
}

// Evaluate settles every selection against the winning pocket. A
// selection wins iff the pocket is in its covered set, fixed at
// placement time; the payout is the total return including stake.
func (e *RouletteEvaluator) Evaluate(pocket int, selections []domain.RouletteSelection) *domain.RouletteOutcome {
	out := &domain.RouletteOutcome{
		Pocket: pocket,
		Color:  domain.ColorOf(pocket),
	}
	for i := range selections {
		sel := &selections[i]
		result := domain.SelectionResult{
			Kind:  sel.Kind,
			Stake: sel.Stake,
		}
		if sel.Covers(pocket) {
			result.Won = true
			result.Payout = sel.Stake * domain.ReturnMultiple(sel.Kind)
		}
		out.Selections = append(out.Selections, result)
		out.TotalPayout += result.Payout
	}
	return out
}
