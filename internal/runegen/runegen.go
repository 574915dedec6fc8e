// Package runegen procedurally generates System Runes: character-bound
// artifacts with a rolled rank, a category, and rank-scaled abilities.
// Generation is pure apart from consuming the injected random source.
package runegen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arkanite/skillforge/internal/rank"
)

// Category is a rune's focus area.
type Category uint8

const (
	Learning Category = iota
	Execution
	Social
	Resilience
	Insight
	Fortune
)

// Categories lists every category in declaration order.
var Categories = [...]Category{Learning, Execution, Social, Resilience, Insight, Fortune}

var categoryNames = [...]string{
	Learning:   "Learning",
	Execution:  "Execution",
	Social:     "Social",
	Resilience: "Resilience",
	Insight:    "Insight",
	Fortune:    "Fortune",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// Effect is the mechanical payload of an ability. Value and Multiplier are
// rank-scaled at generation; Condition gates conditional effects.
type Effect struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Condition  string  `json:"condition,omitempty"`
}

// Ability is one granted power on a rune. Cooldown is in minutes.
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      Effect `json:"effect"`
	Cooldown    int    `json:"cooldown"`
	Enhanced    bool   `json:"enhanced,omitempty"`
	Unlimited   bool   `json:"unlimited,omitempty"`
}

// Requirement is one gate on rune evolution, incomplete at creation.
type Requirement struct {
	Type      string `json:"type"`
	Target    int    `json:"target"`
	Category  string `json:"category,omitempty"`
	Completed bool   `json:"completed"`
}

// Evolution describes whether and how a rune can advance to the next rank.
type Evolution struct {
	CanEvolve    bool          `json:"can_evolve"`
	Requirements []Requirement `json:"requirements"`
	NextRank     string        `json:"next_rank,omitempty"`
	History      []string      `json:"history"`
}

// UsageStats tracks how the rune has been used. Zeroed at creation.
type UsageStats struct {
	Activations   int     `json:"activations"`
	TotalEffect   float64 `json:"total_effect"`
	AverageImpact float64 `json:"average_impact"`
}

// SystemRune is a generated artifact. Abilities are scaled once at creation
// and only change through an explicit evolution step.
type SystemRune struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Rank        rank.Rank  `json:"rank"`
	Category    Category   `json:"category"`
	Abilities   []Ability  `json:"abilities"`
	Evolution   Evolution  `json:"evolution"`
	Stats       UsageStats `json:"stats"`
}

// Clone returns a deep copy of the rune.
func (r SystemRune) Clone() SystemRune {
	out := r
	out.Abilities = append([]Ability(nil), r.Abilities...)
	out.Evolution.Requirements = append([]Requirement(nil), r.Evolution.Requirements...)
	out.Evolution.History = append([]string(nil), r.Evolution.History...)
	return out
}

// Generator produces runes from an injected random source and clock.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator. A nil clock defaults to time.Now.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Generate rolls a new rune for the given owner. An empty ownerID gets a
// placeholder in the rune id.
func (g *Generator) Generate(ownerID string) *SystemRune {
	r := rank.Roll(g.rng)
	category := Categories[g.rng.Intn(len(Categories))]
	return g.build(ownerID, r, category)
}

// GenerateWithRank builds a rune with a fixed rank, choosing only the
// category and template at random. Used by evolution and by tests.
func (g *Generator) GenerateWithRank(ownerID string, r rank.Rank) *SystemRune {
	category := Categories[g.rng.Intn(len(Categories))]
	return g.build(ownerID, r, category)
}

func (g *Generator) build(ownerID string, r rank.Rank, category Category) *SystemRune {
	list := templates[category]
	tmpl := list[g.rng.Intn(len(list))]

	abilities := scaleAbilities(tmpl.abilities, r)

	return &SystemRune{
		ID:          g.runeID(ownerID, r, category),
		Name:        fmt.Sprintf("%s %s %s", tmpl.prefix, r.Title(), tmpl.suffix),
		Description: fmt.Sprintf("%s (%s-Rank)", tmpl.description, r),
		Rank:        r,
		Category:    category,
		Abilities:   abilities,
		Evolution:   evolutionFor(r),
		Stats:       UsageStats{},
	}
}

// scaleAbilities applies the rank power multiplier to every numeric effect
// and stamps the top-tier markers.
func scaleAbilities(base []Ability, r rank.Rank) []Ability {
	multiplier := r.PowerMultiplier()
	out := make([]Ability, len(base))
	for i, ability := range base {
		scaled := ability
		if scaled.Effect.Value != 0 {
			scaled.Effect.Value *= multiplier
		}
		if scaled.Effect.Multiplier != 0 {
			scaled.Effect.Multiplier = 1 + (scaled.Effect.Multiplier-1)*multiplier
		}

		if r.Enhanced() {
			scaled.Enhanced = true
			scaled.Description += " [Enhanced]"
		}
		if r == rank.EX {
			scaled.Unlimited = true
			scaled.Description += " [UNLIMITED POTENTIAL]"
			if scaled.Cooldown > 0 {
				scaled.Cooldown /= 2
			}
		}
		out[i] = scaled
	}
	return out
}

// evolutionFor builds the creation-time evolution descriptor: evolvable
// unless already EX, with the fixed requirement template flagged incomplete.
func evolutionFor(r rank.Rank) Evolution {
	ev := Evolution{
		Requirements: []Requirement{
			{Type: "level", Target: 10},
			{Type: "consistency", Target: 7, Category: "learning"},
		},
		History: []string{},
	}
	if next, ok := r.Next(); ok {
		ev.CanEvolve = true
		ev.NextRank = next.String()
	}
	return ev
}

// runeID assembles a globally unique id from the owner, rank, category, a
// timestamp and a random suffix. Uniqueness is advisory; collisions are
// negligible, not cryptographically excluded.
func (g *Generator) runeID(ownerID string, r rank.Rank, category Category) string {
	owner := "NEW_USER"
	if ownerID != "" {
		owner = ownerID
		if len(owner) > 6 {
			owner = owner[len(owner)-6:]
		}
	}
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("RUNE_%s_%s_%s_%d_%s",
		owner, r, strings.ToUpper(category.String()), g.now().UnixMilli(), suffix)
}
