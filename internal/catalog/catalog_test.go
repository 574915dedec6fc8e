package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanite/skillforge/internal/character"
)

func TestDefaultIndexesEveryNode(t *testing.T) {
	cat := Default()

	var walk func(t *testing.T, base string, branch *Branch)
	walk = func(t *testing.T, parentPath string, branch *Branch) {
		path := parentPath + "/" + branch.Name
		node, ok := cat.nodes[path]
		require.True(t, ok, "path %s must resolve", path)
		assert.Same(t, branch, node)
		for _, adv := range branch.Advancements {
			walk(t, path, adv)
		}
	}

	for _, class := range classData {
		_, ok := cat.Class(class.Name)
		require.True(t, ok)
		for _, branch := range class.Branches {
			walk(t, class.Name, branch)
		}
	}
}

func TestClassNamesKeepDeclarationOrder(t *testing.T) {
	names := Default().ClassNames()
	assert.Equal(t, []string{
		"Engineer", "Artist", "Writer", "Business", "Scientist", "Teacher", "Healthcare",
	}, names)
}

func TestBaseClassSummaries(t *testing.T) {
	summaries := Default().BaseClasses()
	require.Len(t, summaries, 7)
	assert.Equal(t, "Engineer", summaries[0].Name)
	assert.Equal(t, []string{"Software Engineer", "Mechanical Engineer"}, summaries[0].Branches)
}

func TestBranchLookup(t *testing.T) {
	cat := Default()

	tests := []struct {
		name   string
		base   string
		branch string
		found  bool
	}{
		{"direct branch", "Engineer", "Software Engineer", true},
		{"nested advancement", "Engineer", "Software Engineer/Senior Developer", true},
		{"deep advancement", "Engineer", "Software Engineer/Senior Developer/Principal Engineer", true},
		{"wrong class", "Artist", "Software Engineer", false},
		{"missing branch", "Engineer", "Bridge Engineer", false},
		{"empty path", "Engineer", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := cat.Branch(tt.base, tt.branch)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestLookup(t *testing.T) {
	cat := Default()

	class, branch, ok := cat.Lookup("Engineer")
	require.True(t, ok)
	assert.Equal(t, "Engineer", class.Name)
	assert.Nil(t, branch, "bare class name yields no branch")

	class, branch, ok = cat.Lookup("Business/Business Analyst/Senior Analyst/Manager")
	require.True(t, ok)
	assert.Equal(t, "Business", class.Name)
	require.NotNil(t, branch)
	assert.Equal(t, "Manager", branch.Name)
	assert.Equal(t, 20, branch.MinLevel)

	_, _, ok = cat.Lookup("Alchemist")
	assert.False(t, ok)
}

func TestCanAdvanceTo(t *testing.T) {
	cat := Default()
	ch := &character.Character{Level: 14}

	assert.True(t, cat.CanAdvanceTo(ch, "Engineer", "Software Engineer"))
	assert.False(t, cat.CanAdvanceTo(ch, "Engineer", "Software Engineer/Senior Developer"),
		"level 14 is below the 15 gate")

	ch.Level = 15
	assert.True(t, cat.CanAdvanceTo(ch, "Engineer", "Software Engineer/Senior Developer"))
	assert.False(t, cat.CanAdvanceTo(ch, "Engineer", "Nonexistent"))
}

func TestNextAdvancement(t *testing.T) {
	cat := Default()
	ch := &character.Character{
		Level: 26,
		Class: character.ClassSelection{
			BaseClass: "Engineer",
			Branch:    "Software Engineer/Senior Developer",
		},
	}

	adv, ok := cat.NextAdvancement(ch)
	require.True(t, ok)
	assert.Equal(t, "Tech Lead", adv.Name, "first eligible child in declaration order")

	ch.Level = 24
	_, ok = cat.NextAdvancement(ch)
	assert.False(t, ok, "below every child's gate")

	ch.Level = 30
	adv, ok = cat.NextAdvancement(ch)
	require.True(t, ok)
	assert.Equal(t, "Tech Lead", adv.Name, "declaration order wins even when both qualify")
}

func TestClassStatsAdditivity(t *testing.T) {
	cat := Default()
	ch := &character.Character{
		Class: character.ClassSelection{BaseClass: "Engineer", Branch: "Software Engineer"},
	}

	stats, ok := cat.ClassStats(ch)
	require.True(t, ok)

	class, _ := cat.Class("Engineer")
	branch, _ := cat.Branch("Engineer", "Software Engineer")
	for _, s := range character.AllStats {
		assert.Equal(t, class.BaseStats.Get(s)+branch.StatBonuses.Get(s), stats.Get(s),
			"stat %s must sum independently", s)
	}
}

func TestClassStatsWithoutBranch(t *testing.T) {
	cat := Default()
	ch := &character.Character{Class: character.ClassSelection{BaseClass: "Scientist"}}

	stats, ok := cat.ClassStats(ch)
	require.True(t, ok)
	class, _ := cat.Class("Scientist")
	assert.Equal(t, class.BaseStats, stats)

	_, ok = cat.ClassStats(&character.Character{})
	assert.False(t, ok)
}

func TestAvailableSkills(t *testing.T) {
	cat := Default()
	ch := &character.Character{
		Class: character.ClassSelection{BaseClass: "Engineer", Branch: "Software Engineer"},
	}

	skills := cat.AvailableSkills(ch)
	require.Len(t, skills, 4)
	assert.Equal(t, "Programming", skills[0].Name)

	assert.Nil(t, cat.AvailableSkills(&character.Character{}))
}

func TestRegressionBonusesOnDeepTiers(t *testing.T) {
	cat := Default()

	senior, ok := cat.Branch("Engineer", "Software Engineer/Senior Developer")
	require.True(t, ok)
	require.NotNil(t, senior.Regression)
	assert.InDelta(t, 1.5, senior.Regression.KnowledgeMultiplier, 1e-9)

	principal, ok := cat.Branch("Engineer", "Software Engineer/Senior Developer/Principal Engineer")
	require.True(t, ok)
	require.NotNil(t, principal.Regression)
	assert.InDelta(t, 3.0, principal.Regression.KnowledgeMultiplier, 1e-9)
	assert.Contains(t, principal.Regression.PrestigeUnlocks, "Access to EX-Rank Technical Challenges")
}
