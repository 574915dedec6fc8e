package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIsPerStat(t *testing.T) {
	base := StatBlock{Strength: 8, Agility: 7, Intelligence: 15, Vitality: 10, Charisma: 6, Luck: 10}
	delta := StatBlock{Intelligence: 5, Agility: 3}

	merged := base.Merge(delta)

	for _, s := range AllStats {
		assert.Equal(t, base.Get(s)+delta.Get(s), merged.Get(s), "stat %s", s)
	}
	// Original untouched.
	assert.Equal(t, 15, base.Intelligence)
}

func TestAddAll(t *testing.T) {
	var b StatBlock
	b.AddAll(2)
	for _, s := range AllStats {
		assert.Equal(t, 2, b.Get(s))
	}
}

func TestSpread(t *testing.T) {
	tests := []struct {
		name  string
		block StatBlock
		want  int
	}{
		{"uniform", StatBlock{5, 5, 5, 5, 5, 5}, 0},
		{"wide", StatBlock{Strength: 3, Agility: 5, Intelligence: 20, Vitality: 5, Charisma: 5, Luck: 5}, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.Spread())
		})
	}
}

func TestRankedBreaksTiesByDeclarationOrder(t *testing.T) {
	b := StatBlock{Strength: 5, Agility: 5, Intelligence: 9, Vitality: 9, Charisma: 5, Luck: 5}
	ranked := b.Ranked()

	assert.Equal(t, StatIntelligence, ranked[0])
	assert.Equal(t, StatVitality, ranked[1])
	assert.Equal(t, StatStrength, ranked[2], "equal values keep declaration order")
	assert.Equal(t, StatAgility, ranked[3])
}

func TestMasteryRank(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, MasteryNovice},
		{99, MasteryNovice},
		{100, MasteryApprentice},
		{200, MasteryExpert},
		{300, MasteryMaster},
		{499, MasteryMaster},
		{500, MasteryGrandmaster},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MasteryRank(tt.points), "points %d", tt.points)
	}
}

func TestInitialStats(t *testing.T) {
	t.Run("nil background yields flat base", func(t *testing.T) {
		stats := InitialStats(nil)
		for _, s := range AllStats {
			assert.Equal(t, 5, stats.Get(s))
		}
	})

	t.Run("keyword bonuses stack", func(t *testing.T) {
		bg := &Background{
			Subjects:    []string{"Programming", "Sports"},
			CareerGoals: []string{"Software Engineer"},
			Activities:  []string{"daily study group"},
		}
		stats := InitialStats(bg)
		assert.Equal(t, 5+2+1+1, stats.Intelligence) // programming +2, career +1, study +1
		assert.Equal(t, 5+1+1, stats.Agility)        // programming +1, career +1
		assert.Equal(t, 5+2, stats.Vitality)         // sports +2
		assert.Equal(t, 5+1, stats.Strength)         // sports +1
	})

	t.Run("unknown keywords are ignored", func(t *testing.T) {
		bg := &Background{Subjects: []string{"Basket Weaving"}}
		stats := InitialStats(bg)
		for _, s := range AllStats {
			assert.Equal(t, 5, stats.Get(s))
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	ch := Character{
		ID:     "c1",
		Skills: []Skill{{Name: "Programming", Level: 5}},
		Background: &Background{
			Subjects: []string{"Programming"},
		},
		Achievements: []string{"First Quest"},
		Regression: RegressionRecord{
			RetainedSkills: []RetainedSkill{{SkillName: "Programming", Level: 1}},
			Milestones:     []Milestone{{Cycle: 1, SkillsLearned: []string{"Programming (Lv.5)"}}},
		},
	}

	clone := ch.Clone()
	clone.Skills[0].Level = 99
	clone.Background.Subjects[0] = "mutated"
	clone.Achievements[0] = "mutated"
	clone.Regression.RetainedSkills[0].Level = 99
	clone.Regression.Milestones[0].SkillsLearned[0] = "mutated"

	assert.Equal(t, 5, ch.Skills[0].Level)
	assert.Equal(t, "Programming", ch.Background.Subjects[0])
	assert.Equal(t, "First Quest", ch.Achievements[0])
	assert.Equal(t, 1, ch.Regression.RetainedSkills[0].Level)
	assert.Equal(t, "Programming (Lv.5)", ch.Regression.Milestones[0].SkillsLearned[0])
}

func TestSkillLookup(t *testing.T) {
	ch := Character{Skills: []Skill{{Name: "Programming"}, {Name: "Testing"}}}
	s := ch.Skill("Testing")
	if assert.NotNil(t, s) {
		s.Level = 4
		assert.Equal(t, 4, ch.Skills[1].Level, "lookup returns a live pointer")
	}
	assert.Nil(t, ch.Skill("Unknown"))
}
