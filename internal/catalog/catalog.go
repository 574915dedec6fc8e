// Package catalog holds the static class tree: base classes, branches, and
// advancement tiers. The tree is known entirely at load time and never
// mutated; lookups go through a path-keyed arena rather than pointer
// chasing. Paths are slash-joined names, e.g.
// "Engineer/Software Engineer/Senior Developer".
package catalog

import (
	"strings"
	"sync"

	"github.com/arkanite/skillforge/internal/character"
)

// SkillDescriptor names a skill a branch teaches.
type SkillDescriptor struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	MaxLevel int    `json:"max_level"`
}

// RegressionBonuses are the regression-synergy perks carried by deeper
// advancement tiers.
type RegressionBonuses struct {
	KnowledgeMultiplier float64  `json:"knowledge_multiplier"`
	SkillEvolution      []string `json:"skill_evolution,omitempty"`
	UniqueAbilities     []string `json:"unique_abilities,omitempty"`
	PrestigeUnlocks     []string `json:"prestige_unlocks,omitempty"`
}

// Branch is one node below a base class. Advancements keep declaration
// order; minimum level gates selection.
type Branch struct {
	Name         string              `json:"name"`
	MinLevel     int                 `json:"min_level"`
	Description  string              `json:"description"`
	Icon         string              `json:"icon"`
	StatBonuses  character.StatBlock `json:"stat_bonuses"`
	Skills       []SkillDescriptor   `json:"skills,omitempty"`
	Advancements []*Branch           `json:"advancements,omitempty"`
	Regression   *RegressionBonuses  `json:"regression_bonuses,omitempty"`
}

// Class is a base class: the root of one branch tree.
type Class struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	BaseStats   character.StatBlock `json:"base_stats"`
	Branches    []*Branch           `json:"branches"`
}

// Summary is the shallow listing shape for a base class.
type Summary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Branches    []string `json:"branches"`
}

// Catalog indexes the class tree for path lookup.
type Catalog struct {
	order   []string
	classes map[string]*Class
	nodes   map[string]*Branch
}

// New indexes a class list. Declaration order is preserved for listings and
// tie-breaking.
func New(classes []*Class) *Catalog {
	c := &Catalog{
		classes: make(map[string]*Class, len(classes)),
		nodes:   make(map[string]*Branch),
	}
	for _, class := range classes {
		c.order = append(c.order, class.Name)
		c.classes[class.Name] = class
		for _, branch := range class.Branches {
			c.index(class.Name, branch)
		}
	}
	return c
}

func (c *Catalog) index(parentPath string, branch *Branch) {
	path := parentPath + "/" + branch.Name
	c.nodes[path] = branch
	for _, adv := range branch.Advancements {
		c.index(path, adv)
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in class tree, indexed once.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(classData)
	})
	return defaultCatalog
}

// ClassNames lists the base class names in declaration order.
func (c *Catalog) ClassNames() []string {
	return append([]string(nil), c.order...)
}

// BaseClasses lists every base class with shallow branch-name summaries.
func (c *Catalog) BaseClasses() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, name := range c.order {
		class := c.classes[name]
		branches := make([]string, 0, len(class.Branches))
		for _, b := range class.Branches {
			branches = append(branches, b.Name)
		}
		out = append(out, Summary{
			Name:        class.Name,
			Description: class.Description,
			Icon:        class.Icon,
			Branches:    branches,
		})
	}
	return out
}

// Class fetches a base class by name. A miss returns false, not an error;
// lookups are expected to miss during normal navigation.
func (c *Catalog) Class(name string) (*Class, bool) {
	class, ok := c.classes[name]
	return class, ok
}

// Branch fetches a node by base class and slash-joined branch path.
func (c *Catalog) Branch(baseClass, branchPath string) (*Branch, bool) {
	if baseClass == "" || branchPath == "" {
		return nil, false
	}
	node, ok := c.nodes[baseClass+"/"+branchPath]
	return node, ok
}

// Lookup resolves a full slash-joined path: a bare class name yields the
// class (branch nil); deeper paths yield the branch node.
func (c *Catalog) Lookup(path string) (*Class, *Branch, bool) {
	base, _, found := strings.Cut(path, "/")
	class, ok := c.classes[base]
	if !ok {
		return nil, nil, false
	}
	if !found {
		return class, nil, true
	}
	node, ok := c.nodes[path]
	if !ok {
		return nil, nil, false
	}
	return class, node, true
}

// CanAdvanceTo reports whether the branch exists and the character's level
// meets its gate.
func (c *Catalog) CanAdvanceTo(ch *character.Character, baseClass, branchPath string) bool {
	branch, ok := c.Branch(baseClass, branchPath)
	if !ok {
		return false
	}
	return ch.Level >= branch.MinLevel
}

// NextAdvancement walks the character's current branch's advancement
// children in declaration order and returns the first whose gate the
// character meets.
func (c *Catalog) NextAdvancement(ch *character.Character) (*Branch, bool) {
	current, ok := c.Branch(ch.Class.BaseClass, ch.Class.Branch)
	if !ok {
		return nil, false
	}
	for _, adv := range current.Advancements {
		if ch.Level >= adv.MinLevel {
			return adv, true
		}
	}
	return nil, false
}

// ClassStats merges the base-class stat block with the current branch's
// deltas, additively per stat. Without a selected branch the base block is
// returned as is.
func (c *Catalog) ClassStats(ch *character.Character) (character.StatBlock, bool) {
	class, ok := c.classes[ch.Class.BaseClass]
	if !ok {
		return character.StatBlock{}, false
	}
	stats := class.BaseStats
	if branch, ok := c.Branch(ch.Class.BaseClass, ch.Class.Branch); ok {
		stats = stats.Merge(branch.StatBonuses)
	}
	return stats, true
}

// AvailableSkills returns the skill descriptors taught by the character's
// current branch.
func (c *Catalog) AvailableSkills(ch *character.Character) []SkillDescriptor {
	branch, ok := c.Branch(ch.Class.BaseClass, ch.Class.Branch)
	if !ok {
		return nil
	}
	return append([]SkillDescriptor(nil), branch.Skills...)
}
