// Package character defines the character snapshot: stats, skills, the
// regression record, and the background declaration. Everything here is plain
// data; the engine packages transform snapshots and return new ones, and the
// caller persists whatever comes back.
package character

import "sort"

// Stat identifies one of the six character attributes.
type Stat uint8

const (
	StatStrength Stat = iota
	StatAgility
	StatIntelligence
	StatVitality
	StatCharisma
	StatLuck
)

// AllStats lists the stats in declaration order.
var AllStats = [...]Stat{
	StatStrength, StatAgility, StatIntelligence,
	StatVitality, StatCharisma, StatLuck,
}

func (s Stat) String() string {
	switch s {
	case StatStrength:
		return "strength"
	case StatAgility:
		return "agility"
	case StatIntelligence:
		return "intelligence"
	case StatVitality:
		return "vitality"
	case StatCharisma:
		return "charisma"
	case StatLuck:
		return "luck"
	default:
		return "unknown"
	}
}

// StatBlock holds one value per attribute.
type StatBlock struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`
	Charisma     int `json:"charisma"`
	Luck         int `json:"luck"`
}

// Get returns the value for a stat.
func (b StatBlock) Get(s Stat) int {
	switch s {
	case StatStrength:
		return b.Strength
	case StatAgility:
		return b.Agility
	case StatIntelligence:
		return b.Intelligence
	case StatVitality:
		return b.Vitality
	case StatCharisma:
		return b.Charisma
	case StatLuck:
		return b.Luck
	default:
		return 0
	}
}

// Add adds n to a stat in place.
func (b *StatBlock) Add(s Stat, n int) {
	switch s {
	case StatStrength:
		b.Strength += n
	case StatAgility:
		b.Agility += n
	case StatIntelligence:
		b.Intelligence += n
	case StatVitality:
		b.Vitality += n
	case StatCharisma:
		b.Charisma += n
	case StatLuck:
		b.Luck += n
	}
}

// Merge returns the per-stat sum of b and delta. Deltas add to, never
// replace, base values.
func (b StatBlock) Merge(delta StatBlock) StatBlock {
	out := b
	for _, s := range AllStats {
		out.Add(s, delta.Get(s))
	}
	return out
}

// AddAll adds n to every stat in place.
func (b *StatBlock) AddAll(n int) {
	for _, s := range AllStats {
		b.Add(s, n)
	}
}

// Spread returns the gap between the highest and lowest stat.
func (b StatBlock) Spread() int {
	min, max := b.Get(AllStats[0]), b.Get(AllStats[0])
	for _, s := range AllStats[1:] {
		v := b.Get(s)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

// Ranked returns the stats sorted by value descending. Equal values keep
// declaration order so the result is deterministic.
func (b StatBlock) Ranked() []Stat {
	ranked := make([]Stat, len(AllStats))
	copy(ranked, AllStats[:])
	sort.SliceStable(ranked, func(i, j int) bool {
		return b.Get(ranked[i]) > b.Get(ranked[j])
	})
	return ranked
}
