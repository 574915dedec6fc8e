// Package engine is the progression aggregate: it owns the character
// lifecycle (creation, experience, the level-10 class gate, regression, and
// knowledge spending) and stitches the rank roller, rune generator, catalog,
// analyzer, and regression engine together. All operations are pure snapshot
// transforms; the caller persists whatever comes back.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/arkanite/skillforge/internal/analysis"
	"github.com/arkanite/skillforge/internal/catalog"
	"github.com/arkanite/skillforge/internal/character"
	"github.com/arkanite/skillforge/internal/regression"
	"github.com/arkanite/skillforge/internal/runegen"
)

// Experience needed per level. Level is experience/PerLevel + 1.
const PerLevel = 100

// ClassUnlockLevel is where the background analyzer fires during level-up.
const ClassUnlockLevel = 10

// StatPointsPerLevel is awarded per level gained, distributed at random.
const StatPointsPerLevel = 2

// Engine wires the progression collaborators around one random source. The
// source is consumed single-threaded per call; callers wanting parallelism
// construct one engine per goroutine.
type Engine struct {
	catalog *catalog.Catalog
	runes   *runegen.Generator
	rng     *rand.Rand
	now     func() time.Time
}

// New builds an engine. A nil catalog uses the built-in class tree; a nil
// clock defaults to time.Now.
func New(cat *catalog.Catalog, runes *runegen.Generator, rng *rand.Rand, now func() time.Time) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{catalog: cat, runes: runes, rng: rng, now: now}
}

// Catalog exposes the class tree the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// LevelUpResult reports what a single experience grant did.
type LevelUpResult struct {
	LeveledUp    bool             `json:"leveled_up"`
	NewLevel     int              `json:"new_level"`
	StatPoints   int              `json:"stat_points"`
	Analysis     *analysis.Result `json:"analysis,omitempty"`
	AnalysisNote string           `json:"analysis_note,omitempty"`
}

// NewCharacter creates a level-1 character: background-derived stats, a
// freshly rolled rune, and an optional base-class choice validated against
// the catalog.
func (e *Engine) NewCharacter(name string, bg *character.Background, baseClass string) (character.Character, error) {
	var class character.ClassSelection
	if baseClass != "" {
		if _, ok := e.catalog.Class(baseClass); !ok {
			return character.Character{}, fmt.Errorf("engine: unknown base class %q", baseClass)
		}
		class = character.ClassSelection{BaseClass: baseClass, UnlockedAt: e.now()}
	}

	id := uuid.NewString()
	now := e.now()
	return character.Character{
		ID:         id,
		Name:       name,
		Level:      1,
		Experience: 0,
		Stats:      character.InitialStats(bg),
		Rune:       e.runes.Generate(id),
		Background: bg,
		Class:      class,
		Regression: character.RegressionRecord{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AddExperience applies an experience delta and recomputes the level. Each
// level gained awards stat points spread uniformly at random over the six
// stats. Crossing the class-unlock level with an unanalyzed background runs
// the analyzer and attaches its result; a missing declaration downgrades to a
// note rather than failing the level-up.
func (e *Engine) AddExperience(ch *character.Character, delta int) (character.Character, LevelUpResult, error) {
	if delta < 0 {
		return character.Character{}, LevelUpResult{}, fmt.Errorf("engine: negative experience delta %d", delta)
	}

	out := ch.Clone()
	out.Experience += delta
	newLevel := out.Experience/PerLevel + 1
	gained := newLevel - out.Level

	result := LevelUpResult{NewLevel: newLevel}
	if gained > 0 {
		result.LeveledUp = true
		result.StatPoints = gained * StatPointsPerLevel
		for i := 0; i < result.StatPoints; i++ {
			out.Stats.Add(character.AllStats[e.rng.Intn(len(character.AllStats))], 1)
		}
	}

	crossedGate := out.Level < ClassUnlockLevel && newLevel >= ClassUnlockLevel
	out.Level = newLevel

	if crossedGate && !out.BackgroundAnalyzed {
		if out.Background == nil {
			result.AnalysisNote = "analysis skipped: no background declaration"
		} else {
			res, err := analysis.Analyze(&out)
			if err != nil {
				return character.Character{}, LevelUpResult{}, err
			}
			result.Analysis = res
			out.BackgroundAnalyzed = true
			out.AvailableClasses = availableNames(res)
		}
	}

	out.UpdatedAt = e.now()
	return out, result, nil
}

func availableNames(res *analysis.Result) []string {
	names := make([]string, len(res.AvailableClasses))
	for i, opt := range res.AvailableClasses {
		names[i] = opt.SpecificClass
	}
	return names
}

// Regress runs a regression cycle through the regression engine.
func (e *Engine) Regress(ch *character.Character) (character.Character, regression.Report, error) {
	return regression.Regress(ch, e.now())
}

// SpendKnowledge converts retained knowledge into skill experience.
func (e *Engine) SpendKnowledge(ch *character.Character, skillName string, amount int) (character.Character, error) {
	out, err := regression.SpendKnowledge(ch, skillName, amount)
	if err != nil {
		return character.Character{}, err
	}
	out.UpdatedAt = e.now()
	return out, nil
}
