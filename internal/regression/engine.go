// Package regression implements the regression cycle: a character at level 50
// or above resets to level 1 and carries prestige, knowledge, retained skills,
// and permanent stat bonuses into the next cycle. Every transform here takes a
// snapshot and returns a new one; callers persist the result.
package regression

import (
	"errors"
	"fmt"
	"time"

	"github.com/arkanite/skillforge/internal/character"
)

// MinLevel is the lowest level at which a regression is legal.
const MinLevel = 50

var (
	// ErrRegressionLevel is returned for a regression request below MinLevel.
	ErrRegressionLevel = fmt.Errorf("regression: level %d or above required", MinLevel)

	// ErrInsufficientKnowledge is returned when a spend request exceeds the
	// stored retained-knowledge balance.
	ErrInsufficientKnowledge = errors.New("regression: insufficient retained knowledge")

	// ErrUnknownSkill is returned when a spend targets a skill the character
	// does not have.
	ErrUnknownSkill = errors.New("regression: unknown skill")
)

// Report summarizes the rewards of one completed regression.
type Report struct {
	PrestigePoints      int                 `json:"prestige_points"`
	KnowledgeGained     int                 `json:"knowledge_gained"`
	RetainedSkillsCount int                 `json:"retained_skills_count"`
	StatBonuses         character.StatBlock `json:"stat_bonuses"`
	NewCycle            int                 `json:"new_cycle"`
}

// BonusProfile is the passive bonus set derived from regression history.
// Monotonic in both inputs; the zero history yields the identity profile.
type BonusProfile struct {
	ExperienceMultiplier float64  `json:"experience_multiplier"`
	KnowledgeMultiplier  float64  `json:"knowledge_multiplier"`
	SkillLearningRate    float64  `json:"skill_learning_rate"`
	QuestRewardBonus     float64  `json:"quest_reward_bonus"`
	SpecialAbilities     []string `json:"special_abilities"`
}

// UnlockSet lists the special content gated behind regression history.
type UnlockSet struct {
	SpecialRaids    []string `json:"special_raids"`
	UniqueSkills    []string `json:"unique_skills"`
	AdvancedClasses []string `json:"advanced_classes"`
	LegendaryQuests []string `json:"legendary_quests"`
}

// Regress runs one regression cycle over the snapshot and returns the reset
// character plus a reward report. The input is never mutated. Rewards are
// computed against the pre-reset state; the one-time level milestones compare
// the current level against the record's previous MaxLevelReached.
func Regress(ch *character.Character, now time.Time) (character.Character, Report, error) {
	if ch.Level < MinLevel {
		return character.Character{}, Report{}, ErrRegressionLevel
	}

	out := ch.Clone()

	prestige := PrestigeReward(ch)
	knowledge := KnowledgePoints(ch)
	retained := RetainedSkills(ch)
	bonus := ch.Level / 25

	milestone := character.Milestone{
		Cycle:            out.Regression.Cycle + 1,
		Level:            ch.Level,
		MajorAchievement: majorAchievement(ch),
		SkillsLearned:    skillLabels(ch.Skills),
		CompletedAt:      now,
	}

	out.Regression.Cycle++
	out.Regression.TotalCycles++
	if ch.Level > out.Regression.MaxLevelReached {
		out.Regression.MaxLevelReached = ch.Level
	}
	out.Regression.PrestigePoints += prestige
	out.Regression.RetainedKnowledge += knowledge
	out.Regression.Milestones = append(out.Regression.Milestones, milestone)
	out.Regression.RetainedSkills = retained

	out.Level = 1
	out.Experience = 0
	out.Skills = mergeRetained(resetSkills(out.Skills), retained)

	var bonuses character.StatBlock
	bonuses.AddAll(bonus)
	out.Stats = out.Stats.Merge(bonuses)
	out.UpdatedAt = now

	return out, Report{
		PrestigePoints:      prestige,
		KnowledgeGained:     knowledge,
		RetainedSkillsCount: len(retained),
		StatBonuses:         bonuses,
		NewCycle:            out.Regression.Cycle,
	}, nil
}

// PrestigeReward computes the prestige payout for regressing now. High-level
// skill bonuses stack: a level-10 skill earns both the level-8 and level-10
// bonus.
func PrestigeReward(ch *character.Character) int {
	prestige := ch.Level / 2

	for _, skill := range ch.Skills {
		if skill.Level >= 8 {
			prestige += 10
		}
		if skill.Level >= 10 {
			prestige += 15
		}
	}

	prestige += len(ch.Achievements) * 5
	if ch.IsGuildLeader() {
		prestige += 25
	}

	if ch.Level >= 100 && ch.Regression.MaxLevelReached < 100 {
		prestige += 100
	}
	if ch.Level >= 75 && ch.Regression.MaxLevelReached < 75 {
		prestige += 50
	}
	return prestige
}

// KnowledgePoints computes the knowledge gained from the cycle being closed,
// over the pre-reset state.
func KnowledgePoints(ch *character.Character) int {
	knowledge := ch.Level
	for _, skill := range ch.Skills {
		knowledge += skill.Level * 2
		if skill.TimesUsed > 100 {
			knowledge += 10
		}
	}
	return knowledge + ch.QuestsCompleted*3
}

// RetainedSkills selects the skills that survive the reset: level 5 and above,
// carried at 30% of their level, with a mastery bonus that accumulates per
// skill name across cycles.
func RetainedSkills(ch *character.Character) []character.RetainedSkill {
	var retained []character.RetainedSkill
	for _, skill := range ch.Skills {
		if skill.Level < 5 {
			continue
		}
		masteryBonus := 1
		if prior, ok := ch.Regression.Retained(skill.Name); ok {
			masteryBonus = prior.MasteryBonus + 1
		}
		retained = append(retained, character.RetainedSkill{
			SkillName:    skill.Name,
			Level:        skill.Level * 3 / 10,
			Cycle:        ch.Regression.Cycle + 1,
			MasteryBonus: masteryBonus,
		})
	}
	return retained
}

func majorAchievement(ch *character.Character) string {
	switch {
	case ch.Level >= 100:
		return "Reached Max Level"
	case ch.Level >= 75:
		return "Master Level Achieved"
	case ch.Level >= 50:
		return "Advanced Player"
	case ch.IsGuildLeader():
		return "Guild Leadership"
	}
	for _, skill := range ch.Skills {
		if skill.Level >= 10 {
			return "Skill Mastery"
		}
	}
	return "Knowledge Seeker"
}

func skillLabels(skills []character.Skill) []string {
	labels := make([]string, len(skills))
	for i, skill := range skills {
		labels[i] = fmt.Sprintf("%s (Lv.%d)", skill.Name, skill.Level)
	}
	return labels
}

func resetSkills(skills []character.Skill) []character.Skill {
	for i := range skills {
		skills[i].Level = 1
		skills[i].Experience = 0
	}
	return skills
}

// mergeRetained re-applies the retained records to the post-reset skill list:
// the level is raised to at least the retained level, experience is seeded at
// level × 100, and the mastery track gains bonus × 50 points.
func mergeRetained(skills []character.Skill, retained []character.RetainedSkill) []character.Skill {
	byName := make(map[string]character.RetainedSkill, len(retained))
	for _, rs := range retained {
		byName[rs.SkillName] = rs
	}
	for i := range skills {
		rs, ok := byName[skills[i].Name]
		if !ok {
			continue
		}
		if rs.Level > skills[i].Level {
			skills[i].Level = rs.Level
		}
		skills[i].Experience = skills[i].Level * 100
		skills[i].Mastery.Points += rs.MasteryBonus * 50
		skills[i].Mastery.Rank = character.MasteryRank(skills[i].Mastery.Points)
	}
	return skills
}

// Bonuses derives the passive bonus profile from regression history. Pure
// step function of its two inputs, no decay.
func Bonuses(totalCycles, retainedKnowledge int) BonusProfile {
	p := BonusProfile{
		ExperienceMultiplier: 1.0,
		KnowledgeMultiplier:  1.0,
		SkillLearningRate:    1.0,
		QuestRewardBonus:     1.0,
		SpecialAbilities:     []string{},
	}

	if totalCycles >= 1 {
		p.ExperienceMultiplier += 0.1
		p.SkillLearningRate += 0.2
	}
	if totalCycles >= 5 {
		p.KnowledgeMultiplier += 0.5
		p.QuestRewardBonus += 0.3
		p.SpecialAbilities = append(p.SpecialAbilities, "Foresight")
	}
	if totalCycles >= 10 {
		p.ExperienceMultiplier += 0.3
		p.SpecialAbilities = append(p.SpecialAbilities, "Time Mastery")
	}
	if totalCycles >= 20 {
		p.SpecialAbilities = append(p.SpecialAbilities, "Perfect Recall")
	}

	if retainedKnowledge >= 1000 {
		p.SkillLearningRate += 0.5
		p.SpecialAbilities = append(p.SpecialAbilities, "Rapid Learning")
	}
	if retainedKnowledge >= 5000 {
		p.SpecialAbilities = append(p.SpecialAbilities, "Knowledge Bank")
	}
	return p
}

// Unlocks lists the special content the regression record has opened.
func Unlocks(record character.RegressionRecord) UnlockSet {
	u := UnlockSet{
		SpecialRaids:    []string{},
		UniqueSkills:    []string{},
		AdvancedClasses: []string{},
		LegendaryQuests: []string{},
	}

	if record.TotalCycles >= 3 {
		u.SpecialRaids = append(u.SpecialRaids, "Time Rift Dungeon")
		u.UniqueSkills = append(u.UniqueSkills, "Temporal Insight")
	}
	if record.TotalCycles >= 5 {
		u.AdvancedClasses = append(u.AdvancedClasses, "Regression Master")
		u.LegendaryQuests = append(u.LegendaryQuests, "The 100th Cycle")
	}
	if record.TotalCycles >= 10 {
		u.SpecialRaids = append(u.SpecialRaids, "Causal Loop Chamber")
		u.UniqueSkills = append(u.UniqueSkills, "Perfect Prediction")
	}
	if record.MaxLevelReached >= 100 {
		u.LegendaryQuests = append(u.LegendaryQuests, "Beyond the Cycle")
		u.SpecialRaids = append(u.SpecialRaids, "EX-Rank: Infinity Tower")
	}
	return u
}

// SpendKnowledge converts retained knowledge into skill experience at ×10,
// auto-leveling the skill while its experience covers the level × 100 cost.
// The balance is checked before the skill lookup; the input is not mutated.
func SpendKnowledge(ch *character.Character, skillName string, amount int) (character.Character, error) {
	if amount > ch.Regression.RetainedKnowledge {
		return character.Character{}, ErrInsufficientKnowledge
	}

	out := ch.Clone()
	skill := out.Skill(skillName)
	if skill == nil {
		return character.Character{}, fmt.Errorf("%w: %s", ErrUnknownSkill, skillName)
	}

	skill.Experience += amount * 10
	for skill.Experience >= skill.Level*100 {
		skill.Experience -= skill.Level * 100
		skill.Level++
	}
	out.Regression.RetainedKnowledge -= amount
	return out, nil
}
