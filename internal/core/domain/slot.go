package domain

// Symbol identifies one slot reel symbol.
type Symbol string

const (
	SymbolCherry  Symbol = "CHERRY"
	SymbolLemon   Symbol = "LEMON"
	SymbolOrange  Symbol = "ORANGE"
	SymbolGrape   Symbol = "GRAPE"
	SymbolBell    Symbol = "BELL"
	SymbolStar    Symbol = "STAR"
	SymbolDiamond Symbol = "DIAMOND"
	SymbolSeven   Symbol = "SEVEN"
	SymbolWild    Symbol = "WILD"
	SymbolCoin    Symbol = "COIN" // Scatter
)

// Reel geometry.
const (
	SlotReels      = 5
	SlotRows       = 3
	MinLineRun     = 3 // Shortest run that pays
	MaxActiveLines = 7
)

// SymbolInfo describes one symbol's paytable entry.
type SymbolInfo struct {
	Multiplier int64
	Wild       bool // Matches any symbol when counting a run
	Scatter    bool // Counted anywhere on the grid, not along lines
}

// Paytable maps every symbol to its payout data.
var Paytable = map[Symbol]SymbolInfo{
	SymbolCherry:  {Multiplier: 2},
	SymbolLemon:   {Multiplier: 3},
	SymbolOrange:  {Multiplier: 4},
	SymbolGrape:   {Multiplier: 5},
	SymbolBell:    {Multiplier: 8},
	SymbolStar:    {Multiplier: 10},
	SymbolDiamond: {Multiplier: 15},
	SymbolSeven:   {Multiplier: 25},
	SymbolWild:    {Multiplier: 50, Wild: true},
	SymbolCoin:    {Multiplier: 100, Scatter: true},
}

// Paylines enumerates the fixed line shapes. Each entry holds the row
// index per reel, left to right: three horizontals, a V, an inverted V,
// and two zigzags.
var Paylines = [MaxActiveLines][SlotReels]int{
	{0, 0, 0, 0, 0},
	{1, 1, 1, 1, 1},
	{2, 2, 2, 2, 2},
	{0, 1, 2, 1, 0},
	{2, 1, 0, 1, 2},
	{0, 1, 0, 1, 0},
	{2, 1, 2, 1, 2},
}

// ReelStrip is the weighted symbol strip every reel position draws from.
// Common symbols repeat more often than rare ones; a single draw is an
// index into this strip, so the strip length is the RNG sample space.
var ReelStrip = []Symbol{
	SymbolCherry, SymbolCherry, SymbolCherry, SymbolCherry, SymbolCherry,
	SymbolLemon, SymbolLemon, SymbolLemon, SymbolLemon, SymbolLemon,
	SymbolOrange, SymbolOrange, SymbolOrange, SymbolOrange,
	SymbolGrape, SymbolGrape, SymbolGrape, SymbolGrape,
	SymbolBell, SymbolBell, SymbolBell,
	SymbolStar, SymbolStar, SymbolStar,
	SymbolDiamond, SymbolDiamond,
	SymbolSeven, SymbolSeven,
	SymbolWild,
	SymbolCoin,
}

// SlotGrid is a finalized 5x3 outcome, indexed [reel][row].
type SlotGrid [SlotReels][SlotRows]Symbol

// LineWin describes one winning payline.
type LineWin struct {
	Line      int    `json:"line"` // Index into Paylines
	Symbol    Symbol `json:"symbol"`
	RunLength int    `json:"run_length"`
	Amount    int64  `json:"amount"`
}

// SlotOutcome is the full evaluated result of one spin. JackpotWon is
// the drained progressive pool when the spin's jackpot roll hits; it is
// already included in TotalPayout.
type SlotOutcome struct {
	Grid              SlotGrid  `json:"grid"`
	LineWins          []LineWin `json:"line_wins"`
	ScatterCount      int       `json:"scatter_count"`
	TotalPayout       int64     `json:"total_payout"`
	BonusSpinsAwarded int       `json:"bonus_spins_awarded"`
	JackpotWon        int64     `json:"jackpot_won,omitempty"`
}
