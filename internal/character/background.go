package character

import "strings"

// Every stat starts here; the declared background layers keyword bonuses on
// top at creation time.
const baseStatValue = 5

// subjectBonuses maps declared subjects (lowercased) to stat deltas.
var subjectBonuses = map[string]StatBlock{
	"programming":      {Intelligence: 2, Agility: 1},
	"computer science": {Intelligence: 2, Agility: 1},
	"mathematics":      {Intelligence: 1, Agility: 2},
	"physics":          {Intelligence: 1, Agility: 2},
	"art":              {Luck: 2, Charisma: 1},
	"design":           {Luck: 2, Charisma: 1},
	"sports":           {Vitality: 2, Strength: 1},
	"fitness":          {Vitality: 2, Strength: 1},
	"psychology":       {Charisma: 2, Luck: 1},
	"sociology":        {Charisma: 2, Luck: 1},
}

// careerBonuses maps declared career goals (lowercased) to stat deltas.
var careerBonuses = map[string]StatBlock{
	"software engineer": {Intelligence: 1, Agility: 1},
	"developer":         {Intelligence: 1, Agility: 1},
	"teacher":           {Charisma: 1, Vitality: 1},
	"educator":          {Charisma: 1, Vitality: 1},
	"entrepreneur":      {Charisma: 1, Luck: 1},
	"business owner":    {Charisma: 1, Luck: 1},
	"researcher":        {Intelligence: 1, Agility: 1},
	"scientist":         {Intelligence: 1, Agility: 1},
}

// activityBonuses maps substrings of declared activities to the stat they
// nudge. Activities are free text, so these match by containment.
var activityBonuses = []struct {
	keyword string
	stat    Stat
}{
	{"study", StatIntelligence},
	{"exercise", StatVitality},
	{"social", StatCharisma},
	{"creative", StatLuck},
}

// InitialStats derives the starting stat block from a background
// declaration. A nil declaration yields the flat base block.
func InitialStats(bg *Background) StatBlock {
	stats := StatBlock{
		Strength:     baseStatValue,
		Agility:      baseStatValue,
		Intelligence: baseStatValue,
		Vitality:     baseStatValue,
		Charisma:     baseStatValue,
		Luck:         baseStatValue,
	}
	if bg == nil {
		return stats
	}

	for _, subject := range bg.Subjects {
		if delta, ok := subjectBonuses[strings.ToLower(subject)]; ok {
			stats = stats.Merge(delta)
		}
	}
	for _, career := range bg.CareerGoals {
		if delta, ok := careerBonuses[strings.ToLower(career)]; ok {
			stats = stats.Merge(delta)
		}
	}
	for _, activity := range bg.Activities {
		lower := strings.ToLower(activity)
		for _, ab := range activityBonuses {
			if strings.Contains(lower, ab.keyword) {
				stats.Add(ab.stat, 1)
			}
		}
	}
	return stats
}
