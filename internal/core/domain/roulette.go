package domain

import "sort"

// BetKind is the closed set of supported roulette bet types. Each kind
// fixes the size of its covered-number set and its payout multiple.
type BetKind string

const (
	BetKindStraight BetKind = "STRAIGHT" // 1 number
	BetKindSplit    BetKind = "SPLIT"    // 2 adjacent numbers
	BetKindStreet   BetKind = "STREET"   // 3 numbers, one row
	BetKindCorner   BetKind = "CORNER"   // 4 numbers
	BetKindLine     BetKind = "LINE"     // 6 numbers, two rows
	BetKindDozen    BetKind = "DOZEN"    // 12 numbers
	BetKindColumn   BetKind = "COLUMN"   // 12 numbers
	BetKindRed      BetKind = "RED"
	BetKindBlack    BetKind = "BLACK"
	BetKindEven     BetKind = "EVEN"
	BetKindOdd      BetKind = "ODD"
	BetKindLow      BetKind = "LOW"  // 1-18
	BetKindHigh     BetKind = "HIGH" // 19-36
)

// RoulettePockets is the European sample space size (0-36).
const RoulettePockets = 37

// WheelOrder is the standard European wheel layout, clockwise from zero.
var WheelOrder = [RoulettePockets]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23,
	10, 5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// PocketColor classifies a pocket number.
type PocketColor string

const (
	ColorGreen PocketColor = "GREEN"
	ColorRed   PocketColor = "RED"
	ColorBlack PocketColor = "BLACK"
)

// ColorOf returns the color of a pocket on the European wheel.
func ColorOf(pocket int) PocketColor {
	switch {
	case pocket == 0:
		return ColorGreen
	case redNumbers[pocket]:
		return ColorRed
	default:
		return ColorBlack
	}
}

// returnMultiples maps each bet kind to its total-return multiple on a
// win, stake included (a winning straight returns 36x the stake).
var returnMultiples = map[BetKind]int64{
	BetKindStraight: 36,
	BetKindSplit:    18,
	BetKindStreet:   12,
	BetKindCorner:   9,
	BetKindLine:     6,
	BetKindDozen:    3,
	BetKindColumn:   3,
	BetKindRed:      2,
	BetKindBlack:    2,
	BetKindEven:     2,
	BetKindOdd:      2,
	BetKindLow:      2,
	BetKindHigh:     2,
}

// ReturnMultiple returns the total-return multiple for a bet kind, or 0
// for an unknown kind.
func ReturnMultiple(kind BetKind) int64 {
	return returnMultiples[kind]
}

// coveredSetSizes pins the exact covered-count each kind requires.
var coveredSetSizes = map[BetKind]int{
	BetKindStraight: 1,
	BetKindSplit:    2,
	BetKindStreet:   3,
	BetKindCorner:   4,
	BetKindLine:     6,
	BetKindDozen:    12,
	BetKindColumn:   12,
	BetKindRed:      18,
	BetKindBlack:    18,
	BetKindEven:     18,
	BetKindOdd:      18,
	BetKindLow:      18,
	BetKindHigh:     18,
}

// RouletteSelection is one placed bet on a spin. Covered is computed once
// at placement time and carried immutably through to evaluation; it is
// never re-derived from the kind.
type RouletteSelection struct {
	Kind    BetKind `json:"kind"`
	Covered []int   `json:"covered"`
	Stake   int64   `json:"stake"`
}

// Covers reports whether the selection includes the given pocket.
func (s *RouletteSelection) Covers(pocket int) bool {
	for _, n := range s.Covered {
		if n == pocket {
			return true
		}
	}
	return false
}

// Valid checks the selection's shape: known kind, positive stake, covered
// set of exactly the size the kind demands, every number on the wheel,
// no duplicates, no zero inside outside-bet sets, and for the inside
// bets whose sets the client supplies, a legal shape on the layout.
func (s *RouletteSelection) Valid() bool {
	want, known := coveredSetSizes[s.Kind]
	if !known || s.Stake <= 0 || len(s.Covered) != want {
		return false
	}
	seen := make(map[int]bool, len(s.Covered))
	for _, n := range s.Covered {
		if n < 0 || n >= RoulettePockets || seen[n] {
			return false
		}
		// Zero never belongs to an even-money, dozen or column set.
		if n == 0 && s.Kind != BetKindStraight && s.Kind != BetKindSplit &&
			s.Kind != BetKindStreet && s.Kind != BetKindCorner && s.Kind != BetKindLine {
			return false
		}
		seen[n] = true
	}
	switch s.Kind {
	case BetKindSplit, BetKindStreet, BetKindCorner, BetKindLine:
		return layoutAdjacent(s.Kind, s.Covered)
	}
	return true
}

// layoutAdjacent reports whether an inside bet's covered set forms a
// legal shape on the standard betting layout (rows of three: 1-2-3,
// 4-5-6, ...): splits share an edge, streets are one full row, corners
// share a point, lines are two adjacent rows. The zero splits 0-1, 0-2,
// 0-3 and the first-four 0-1-2-3 are allowed.
func layoutAdjacent(kind BetKind, covered []int) bool {
	nums := make([]int, len(covered))
	copy(nums, covered)
	sort.Ints(nums)

	switch kind {
	case BetKindSplit:
		a, b := nums[0], nums[1]
		if a == 0 {
			return b <= 3
		}
		// Vertical neighbor, or horizontal neighbor not crossing a row edge.
		return b == a+3 || (b == a+1 && a%3 != 0)
	case BetKindStreet:
		a := nums[0]
		return a%3 == 1 && nums[1] == a+1 && nums[2] == a+2
	case BetKindCorner:
		if nums[0] == 0 {
			return nums[1] == 1 && nums[2] == 2 && nums[3] == 3
		}
		a := nums[0]
		return a%3 != 0 && a+4 <= 36 &&
			nums[1] == a+1 && nums[2] == a+3 && nums[3] == a+4
	case BetKindLine:
		a := nums[0]
		if a%3 != 1 || a+5 > 36 {
			return false
		}
		for i := 1; i < 6; i++ {
			if nums[i] != a+i {
				return false
			}
		}
		return true
	}
	return true
}

// NewStraightBet places a single-number bet.
func NewStraightBet(number int, stake int64) RouletteSelection {
	return RouletteSelection{Kind: BetKindStraight, Covered: []int{number}, Stake: stake}
}

// NewColorBet places a red or black bet with its covered set fixed by the
// standard wheel coloring.
func NewColorBet(color PocketColor, stake int64) RouletteSelection {
	kind := BetKindBlack
	covered := make([]int, 0, 18)
	if color == ColorRed {
		kind = BetKindRed
	}
	for n := 1; n <= 36; n++ {
		if (color == ColorRed) == redNumbers[n] {
			covered = append(covered, n)
		}
	}
	return RouletteSelection{Kind: kind, Covered: covered, Stake: stake}
}

// NewParityBet places an even or odd bet. Zero is excluded from both.
func NewParityBet(even bool, stake int64) RouletteSelection {
	kind := BetKindOdd
	if even {
		kind = BetKindEven
	}
	covered := make([]int, 0, 18)
	for n := 1; n <= 36; n++ {
		if (n%2 == 0) == even {
			covered = append(covered, n)
		}
	}
	return RouletteSelection{Kind: kind, Covered: covered, Stake: stake}
}

// NewRangeBet places a low (1-18) or high (19-36) bet.
func NewRangeBet(high bool, stake int64) RouletteSelection {
	kind := BetKindLow
	start, end := 1, 18
	if high {
		kind = BetKindHigh
		start, end = 19, 36
	}
	covered := make([]int, 0, 18)
	for n := start; n <= end; n++ {
		covered = append(covered, n)
	}
	return RouletteSelection{Kind: kind, Covered: covered, Stake: stake}
}

// NewDozenBet places a dozen bet; dozen is 1, 2 or 3.
func NewDozenBet(dozen int, stake int64) RouletteSelection {
	covered := make([]int, 0, 12)
	for n := (dozen-1)*12 + 1; n <= dozen*12; n++ {
		covered = append(covered, n)
	}
	return RouletteSelection{Kind: BetKindDozen, Covered: covered, Stake: stake}
}

// NewColumnBet places a column bet; column is 1, 2 or 3 (the column
// containing that number on the betting layout).
func NewColumnBet(column int, stake int64) RouletteSelection {
	covered := make([]int, 0, 12)
	for n := column; n <= 36; n += 3 {
		covered = append(covered, n)
	}
	return RouletteSelection{Kind: BetKindColumn, Covered: covered, Stake: stake}
}

// SelectionResult is the per-selection win/lose detail on a spin.
type SelectionResult struct {
	Kind   BetKind `json:"kind"`
	Stake  int64   `json:"stake"`
	Won    bool    `json:"won"`
	Payout int64   `json:"payout"` // Total return including stake; 0 on a loss
}

// RouletteOutcome is the full evaluated result of one spin.
type RouletteOutcome struct {
	Pocket      int               `json:"pocket"`
	Color       PocketColor       `json:"color"`
	Selections  []SelectionResult `json:"selections"`
	TotalPayout int64             `json:"total_payout"`
}
