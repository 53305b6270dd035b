package service

import (
	"casino-wagering-engine/internal/core/domain"
)

// SlotEvaluator is the pure payline evaluator for slot spins.
type SlotEvaluator struct {
	scatterTrigger int
	freeSpinsAward int
}

// NewSlotEvaluator creates an evaluator with the given bonus rules.
func NewSlotEvaluator(scatterTrigger, freeSpinsAward int) *SlotEvaluator {
	return &SlotEvaluator{
		scatterTrigger: scatterTrigger,
		freeSpinsAward: freeSpinsAward,
	}
}

// Evaluate scores a finalized grid against the active paylines and counts
// scatters across the whole grid. It never mutates state; bonus spins are
// returned for the caller to persist.
func (e *SlotEvaluator) Evaluate(grid domain.SlotGrid, stakePerLine int64, activeLines int, activeMultiplier int64) *domain.SlotOutcome {
	if activeLines > domain.MaxActiveLines {
		activeLines = domain.MaxActiveLines
	}
	if activeMultiplier < 1 {
		activeMultiplier = 1
	}

	out := &domain.SlotOutcome{Grid: grid}

	for i := 0; i < activeLines; i++ {
		sym, run := lineRun(grid, domain.Paylines[i])
		if run < domain.MinLineRun {
			continue
		}
		amount := stakePerLine * domain.Paytable[sym].Multiplier * int64(run) * activeMultiplier
		out.LineWins = append(out.LineWins, domain.LineWin{
			Line:      i,
			Symbol:    sym,
			RunLength: run,
			Amount:    amount,
		})
		out.TotalPayout += amount
	}

	for reel := 0; reel < domain.SlotReels; reel++ {
		for row := 0; row < domain.SlotRows; row++ {
			if domain.Paytable[grid[reel][row]].Scatter {
				out.ScatterCount++
			}
		}
	}
	if out.ScatterCount >= e.scatterTrigger {
		out.BonusSpinsAwarded = e.freeSpinsAward
	}

	return out
}

// lineRun counts the longest left-to-right run on one payline. Wilds
// extend any run; the paying symbol is the first non-wild in the run.
// A line made entirely of wilds pays at the highest-value regular
// symbol's rate.
func lineRun(grid domain.SlotGrid, line [domain.SlotReels]int) (domain.Symbol, int) {
	var paying domain.Symbol
	run := 0
	for reel := 0; reel < domain.SlotReels; reel++ {
		sym := grid[reel][line[reel]]
		switch {
		case domain.Paytable[sym].Wild:
			run++
		case paying == "":
			paying = sym
			run++
		case sym == paying:
			run++
		default:
			return paying, run
		}
	}
	if paying == "" {
		paying = highestRegularSymbol()
	}
	return paying, run
}

// highestRegularSymbol returns the best-paying symbol that is neither
// wild nor scatter.
func highestRegularSymbol() domain.Symbol {
	var best domain.Symbol
	var bestMult int64
	for sym, info := range domain.Paytable {
		if info.Wild || info.Scatter {
			continue
		}
		if info.Multiplier > bestMult {
			best, bestMult = sym, info.Multiplier
		}
	}
	return best
}
