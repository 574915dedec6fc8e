package character

import (
	"time"

	"github.com/arkanite/skillforge/internal/runegen"
)

// Mastery rank labels, awarded by point thresholds.
const (
	MasteryNovice      = "Novice"
	MasteryApprentice  = "Apprentice"
	MasteryExpert      = "Expert"
	MasteryMaster      = "Master"
	MasteryGrandmaster = "Grandmaster"
)

// MasteryRank returns the label for a mastery point total.
func MasteryRank(points int) string {
	switch {
	case points >= 500:
		return MasteryGrandmaster
	case points >= 300:
		return MasteryMaster
	case points >= 200:
		return MasteryExpert
	case points >= 100:
		return MasteryApprentice
	default:
		return MasteryNovice
	}
}

// Mastery is the per-skill cumulative bonus track fed by regression
// retention, independent of the skill's raw level.
type Mastery struct {
	Points int    `json:"points"`
	Rank   string `json:"rank"`
}

// Skill is one learned skill on a character.
type Skill struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Level      int     `json:"level"`
	Experience int     `json:"experience"`
	MaxLevel   int     `json:"max_level"`
	TimesUsed  int     `json:"times_used"`
	Mastery    Mastery `json:"mastery"`
}

// Background is the player's declared background. Supplied once at creation,
// analyzed possibly multiple times; the analyzer never mutates it.
type Background struct {
	Subjects    []string `json:"subjects"`
	CareerGoals []string `json:"career_goals"`
	CurrentRole string   `json:"current_role,omitempty"`
	Activities  []string `json:"activities,omitempty"`
}

// ClassSelection tracks the character's position in the class tree.
// Branch is a slash-joined path below the base class, e.g.
// "Software Engineer/Senior Developer".
type ClassSelection struct {
	BaseClass  string    `json:"base_class,omitempty"`
	Branch     string    `json:"branch,omitempty"`
	UnlockedAt time.Time `json:"unlocked_at,omitempty"`
}

// Milestone is the snapshot recorded at the moment of a regression.
type Milestone struct {
	Cycle            int       `json:"cycle"`
	Level            int       `json:"level"`
	MajorAchievement string    `json:"major_achievement"`
	SkillsLearned    []string  `json:"skills_learned"`
	CompletedAt      time.Time `json:"completed_at"`
}

// RetainedSkill is the decayed residue of a skill carried across a cycle.
type RetainedSkill struct {
	SkillName    string `json:"skill_name"`
	Level        int    `json:"level"`
	Cycle        int    `json:"cycle"`
	MasteryBonus int    `json:"mastery_bonus"`
}

// RegressionRecord accumulates prestige state across cycles.
// Cycle strictly increases by 1 per regression; MaxLevelReached never
// decreases; RetainedKnowledge only decreases through an explicit spend.
type RegressionRecord struct {
	Cycle             int             `json:"cycle"`
	TotalCycles       int             `json:"total_cycles"`
	MaxLevelReached   int             `json:"max_level_reached"`
	PrestigePoints    int             `json:"prestige_points"`
	RetainedKnowledge int             `json:"retained_knowledge"`
	Milestones        []Milestone     `json:"milestones"`
	RetainedSkills    []RetainedSkill `json:"retained_skills"`
}

// RetainedSkill returns the retained record for a skill name, if any.
func (r RegressionRecord) Retained(skillName string) (RetainedSkill, bool) {
	for _, rs := range r.RetainedSkills {
		if rs.SkillName == skillName {
			return rs, true
		}
	}
	return RetainedSkill{}, false
}

// Character is one player's full progression snapshot.
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`

	Stats  StatBlock           `json:"stats"`
	Skills []Skill             `json:"skills"`
	Rune   *runegen.SystemRune `json:"rune,omitempty"`

	Background         *Background `json:"background,omitempty"`
	BackgroundAnalyzed bool        `json:"background_analyzed"`

	Class            ClassSelection `json:"class"`
	AvailableClasses []string       `json:"available_classes,omitempty"`

	Achievements    []string `json:"achievements,omitempty"`
	QuestsCompleted int      `json:"quests_completed"`
	GuildRole       string   `json:"guild_role,omitempty"`

	Regression RegressionRecord `json:"regression"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Skill returns a pointer to the named skill, or nil.
func (c *Character) Skill(name string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return &c.Skills[i]
		}
	}
	return nil
}

// IsGuildLeader reports whether the character currently leads a guild.
func (c *Character) IsGuildLeader() bool {
	return c.GuildRole == "leader"
}

// Clone returns a deep copy of the snapshot. Engine transforms clone before
// mutating so the caller's copy is never touched.
func (c *Character) Clone() Character {
	out := *c
	out.Skills = append([]Skill(nil), c.Skills...)
	out.Achievements = append([]string(nil), c.Achievements...)
	out.AvailableClasses = append([]string(nil), c.AvailableClasses...)
	if c.Background != nil {
		bg := Background{
			Subjects:    append([]string(nil), c.Background.Subjects...),
			CareerGoals: append([]string(nil), c.Background.CareerGoals...),
			CurrentRole: c.Background.CurrentRole,
			Activities:  append([]string(nil), c.Background.Activities...),
		}
		out.Background = &bg
	}
	if c.Rune != nil {
		r := c.Rune.Clone()
		out.Rune = &r
	}
	out.Regression.Milestones = append([]Milestone(nil), c.Regression.Milestones...)
	for i := range out.Regression.Milestones {
		out.Regression.Milestones[i].SkillsLearned =
			append([]string(nil), out.Regression.Milestones[i].SkillsLearned...)
	}
	out.Regression.RetainedSkills = append([]RetainedSkill(nil), c.Regression.RetainedSkills...)
	return out
}
