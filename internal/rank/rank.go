// Package rank implements the ordinal quality tiers governing rune power.
// The tier order and draw weights are fixed tables; rolls are deterministic
// with respect to the injected random source.
package rank

import "math/rand"

// Rank is an ordinal quality tier. Ordering follows declaration: F is the
// lowest, EX the highest.
type Rank uint8

const (
	F Rank = iota
	E
	D
	C
	B
	A
	S
	SS
	SSS
	EX
)

// Order lists every rank lowest first. Rolls scan this slice, never a map,
// so a given draw always resolves to the same rank.
var Order = [...]Rank{F, E, D, C, B, A, S, SS, SSS, EX}

// weights is the draw chance per rank, in percent. Sums to 100.
var weights = [...]float64{
	F:   30.0,
	E:   25.0,
	D:   20.0,
	C:   12.0,
	B:   7.0,
	A:   3.5,
	S:   1.5,
	SS:  0.8,
	SSS: 0.15,
	EX:  0.05, // 1 in 2000
}

// powerMultipliers scales ability effects at generation time. Monotonically
// increasing with rank.
var powerMultipliers = [...]float64{
	F:   0.8,
	E:   0.9,
	D:   1.0,
	C:   1.2,
	B:   1.5,
	A:   2.0,
	S:   3.0,
	SS:  4.5,
	SSS: 7.0,
	EX:  10.0,
}

// titles name each rank for display and rune naming.
var titles = [...]string{
	F:   "Fledgling",
	E:   "Emerging",
	D:   "Developing",
	C:   "Capable",
	B:   "Brilliant",
	A:   "Apex",
	S:   "Supreme",
	SS:  "Transcendent",
	SSS: "Mythical",
	EX:  "UNLIMITED",
}

var names = [...]string{
	F: "F", E: "E", D: "D", C: "C", B: "B",
	A: "A", S: "S", SS: "SS", SSS: "SSS", EX: "EX",
}

func (r Rank) String() string {
	if int(r) < len(names) {
		return names[r]
	}
	return "?"
}

// Weight returns the draw chance for the rank, in percent.
func (r Rank) Weight() float64 { return weights[r] }

// PowerMultiplier returns the ability scaling factor for the rank.
func (r Rank) PowerMultiplier() float64 { return powerMultipliers[r] }

// Title returns the display title used in rune names.
func (r Rank) Title() string { return titles[r] }

// Enhanced reports whether the rank is in the top four tiers, whose rune
// abilities are marked enhanced at generation.
func (r Rank) Enhanced() bool { return r >= S }

// Next returns the next rank in the evolution chain. EX has no successor.
func (r Rank) Next() (Rank, bool) {
	if r >= EX {
		return EX, false
	}
	return r + 1, true
}

// FromDraw resolves a uniform draw in [0, 100) to a rank by scanning the
// fixed order and accumulating weights. A draw of 0 yields the lowest rank;
// if floating-point drift leaves the draw unmatched, the lowest rank is
// returned.
func FromDraw(draw float64) Rank {
	cumulative := 0.0
	for _, r := range Order {
		cumulative += weights[r]
		if draw < cumulative {
			return r
		}
	}
	return Order[0]
}

// Roll draws a rank from the weight table using the provided source.
func Roll(rng *rand.Rand) Rank {
	return FromDraw(rng.Float64() * 100)
}
