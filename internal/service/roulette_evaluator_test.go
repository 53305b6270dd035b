package service

import (
	"testing"

	"casino-wagering-engine/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouletteEvaluator_StraightWin(t *testing.T) {
	e := NewRouletteEvaluator()

	// $10 straight on 17, winner 17: total return 36x = $360.
	out := e.Evaluate(17, []domain.RouletteSelection{domain.NewStraightBet(17, 1000)})

	require.Len(t, out.Selections, 1)
	assert.True(t, out.Selections[0].Won)
	assert.Equal(t, int64(36000), out.Selections[0].Payout)
	assert.Equal(t, int64(36000), out.TotalPayout)
	assert.Equal(t, domain.ColorBlack, out.Color)
}

func TestRouletteEvaluator_ColorBet(t *testing.T) {
	e := NewRouletteEvaluator()

	// Winner 17 is black: a $10 red bet loses, a $10 black bet returns $20.
	out := e.Evaluate(17, []domain.RouletteSelection{
		domain.NewColorBet(domain.ColorRed, 1000),
		domain.NewColorBet(domain.ColorBlack, 1000),
	})

	require.Len(t, out.Selections, 2)
	assert.False(t, out.Selections[0].Won)
	assert.Zero(t, out.Selections[0].Payout)
	assert.True(t, out.Selections[1].Won)
	assert.Equal(t, int64(2000), out.Selections[1].Payout)
	assert.Equal(t, int64(2000), out.TotalPayout)
}

func TestRouletteEvaluator_ZeroBeatsOutsideBets(t *testing.T) {
	e := NewRouletteEvaluator()

	out := e.Evaluate(0, []domain.RouletteSelection{
		domain.NewColorBet(domain.ColorRed, 1000),
		domain.NewColorBet(domain.ColorBlack, 1000),
		domain.NewParityBet(true, 1000),
		domain.NewParityBet(false, 1000),
		domain.NewRangeBet(false, 1000),
		domain.NewRangeBet(true, 1000),
		domain.NewDozenBet(1, 1000),
		domain.NewColumnBet(1, 1000),
	})

	assert.Equal(t, domain.ColorGreen, out.Color)
	assert.Zero(t, out.TotalPayout)
	for _, sel := range out.Selections {
		assert.False(t, sel.Won)
	}
}

func TestRouletteEvaluator_StraightOnZeroLosesToSeventeen(t *testing.T) {
	e := NewRouletteEvaluator()

	out := e.Evaluate(17, []domain.RouletteSelection{domain.NewStraightBet(0, 1000)})

	require.Len(t, out.Selections, 1)
	assert.False(t, out.Selections[0].Won)
	assert.Zero(t, out.TotalPayout)
}

func TestRouletteEvaluator_StraightOnZeroWins(t *testing.T) {
	e := NewRouletteEvaluator()

	out := e.Evaluate(0, []domain.RouletteSelection{domain.NewStraightBet(0, 500)})

	require.Len(t, out.Selections, 1)
	assert.True(t, out.Selections[0].Won)
	assert.Equal(t, int64(18000), out.TotalPayout)
}

func TestRouletteEvaluator_DozenAndColumn(t *testing.T) {
	e := NewRouletteEvaluator()

	// Winner 14: second dozen, second column.
	out := e.Evaluate(14, []domain.RouletteSelection{
		domain.NewDozenBet(2, 1000),
		domain.NewColumnBet(2, 1000),
		domain.NewDozenBet(3, 1000),
	})

	require.Len(t, out.Selections, 3)
	assert.True(t, out.Selections[0].Won)
	assert.Equal(t, int64(3000), out.Selections[0].Payout)
	assert.True(t, out.Selections[1].Won)
	assert.Equal(t, int64(3000), out.Selections[1].Payout)
	assert.False(t, out.Selections[2].Won)
	assert.Equal(t, int64(6000), out.TotalPayout)
}

func TestRouletteEvaluator_CompoundSpinAccumulates(t *testing.T) {
	e := NewRouletteEvaluator()

	// Winner 32 (red, high, even-dozen 3): straight + red + high win.
	out := e.Evaluate(32, []domain.RouletteSelection{
		domain.NewStraightBet(32, 100),
		domain.NewColorBet(domain.ColorRed, 200),
		domain.NewRangeBet(true, 300),
		domain.NewParityBet(false, 400), // 32 is even, odd loses
	})

	// 100*36 + 200*2 + 300*2 = 3600 + 400 + 600
	assert.Equal(t, int64(4600), out.TotalPayout)
}

func TestRouletteEvaluator_NoSelections(t *testing.T) {
	e := NewRouletteEvaluator()

	out := e.Evaluate(5, nil)
	assert.Empty(t, out.Selections)
	assert.Zero(t, out.TotalPayout)
}
