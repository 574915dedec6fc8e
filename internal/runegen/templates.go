package runegen

// template supplies the naming pieces and base ability list for one rune
// shape. Ability numbers here are the D-rank baseline; generation scales
// them by the rolled rank's power multiplier.
type template struct {
	prefix      string
	suffix      string
	description string
	abilities   []Ability
}

// templates holds the per-category template lists. Every category has at
// least one entry; template choice is uniform within the rolled category.
var templates = map[Category][]template{
	Learning: {
		{
			prefix:      "Scholar's",
			suffix:      "Codex",
			description: "Accelerates learning and knowledge retention",
			abilities: []Ability{
				{
					Name:        "Rapid Acquisition",
					Description: "Gain bonus XP from learning activities",
					Effect:      Effect{Type: "xp_multiplier", Value: 1.2},
					Cooldown:    0,
				},
				{
					Name:        "Memory Palace",
					Description: "Retain more information from completed quests",
					Effect:      Effect{Type: "knowledge_retention", Value: 0.15},
					Cooldown:    60,
				},
			},
		},
		{
			prefix:      "Mentor's",
			suffix:      "Lens",
			description: "Sharpens focus on structured study",
			abilities: []Ability{
				{
					Name:        "Guided Study",
					Description: "Reduce the experience cost of skill training",
					Effect:      Effect{Type: "training_discount", Value: 0.1},
					Cooldown:    120,
				},
			},
		},
	},
	Execution: {
		{
			prefix:      "Executor's",
			suffix:      "Will",
			description: "Enhances task completion and consistency",
			abilities: []Ability{
				{
					Name:        "Unwavering Focus",
					Description: "Immune to distraction penalties for 1 hour",
					Effect:      Effect{Type: "immunity", Condition: "distraction"},
					Cooldown:    180,
				},
				{
					Name:        "Steady Hands",
					Description: "Quest completion grants bonus progress",
					Effect:      Effect{Type: "quest_progress", Value: 0.1},
					Cooldown:    90,
				},
			},
		},
	},
	Social: {
		{
			prefix:      "Diplomat's",
			suffix:      "Charm",
			description: "Enhances social interactions and team coordination",
			abilities: []Ability{
				{
					Name:        "Team Synergy",
					Description: "Boost entire guild's performance temporarily",
					Effect:      Effect{Type: "guild_buff", Multiplier: 1.15},
					Cooldown:    240,
				},
				{
					Name:        "Silver Tongue",
					Description: "Improve outcomes of negotiation encounters",
					Effect:      Effect{Type: "negotiation_bonus", Value: 0.2},
					Cooldown:    60,
				},
			},
		},
	},
	Resilience: {
		{
			prefix:      "Sentinel's",
			suffix:      "Aegis",
			description: "Provides mental stamina and burnout resistance",
			abilities: []Ability{
				{
					Name:        "Burnout Ward",
					Description: "Negate one fatigue penalty per day",
					Effect:      Effect{Type: "immunity", Condition: "fatigue"},
					Cooldown:    720,
				},
				{
					Name:        "Second Wind",
					Description: "Recover stamina after a failed attempt",
					Effect:      Effect{Type: "stamina_restore", Value: 0.25},
					Cooldown:    300,
				},
			},
		},
	},
	Insight: {
		{
			prefix:      "Oracle's",
			suffix:      "Prism",
			description: "Grants analytical depth and creative thinking",
			abilities: []Ability{
				{
					Name:        "Pattern Sight",
					Description: "Reveal hidden requirements on active quests",
					Effect:      Effect{Type: "reveal", Value: 1},
					Cooldown:    360,
				},
				{
					Name:        "Deep Analysis",
					Description: "Bonus insight from analytical activities",
					Effect:      Effect{Type: "insight_multiplier", Multiplier: 1.1},
					Cooldown:    120,
				},
			},
		},
	},
	Fortune: {
		{
			prefix:      "Gambler's",
			suffix:      "Die",
			description: "Increases opportunities and favorable outcomes",
			abilities: []Ability{
				{
					Name:        "Lucky Break",
					Description: "Chance for double rewards on completion",
					Effect:      Effect{Type: "reward_chance", Value: 0.05},
					Cooldown:    480,
				},
				{
					Name:        "Windfall",
					Description: "Occasional bonus currency from any source",
					Effect:      Effect{Type: "currency_bonus", Value: 0.1},
					Cooldown:    240,
				},
			},
		},
	},
}
