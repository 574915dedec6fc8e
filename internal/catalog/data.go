package catalog

import "github.com/arkanite/skillforge/internal/character"

// classData is the complete class tree, declared in the order used for
// listings and score tie-breaking.
var classData = []*Class{
	{
		Name:        "Engineer",
		Description: "Builders and problem solvers who create solutions",
		Icon:        "🔧",
		BaseStats: character.StatBlock{
			Strength: 8, Agility: 7, Intelligence: 15, Vitality: 10, Charisma: 6, Luck: 10,
		},
		Branches: []*Branch{
			{
				Name:        "Software Engineer",
				MinLevel:    5,
				Description: "Code wizards who build digital worlds",
				Icon:        "💻",
				StatBonuses: character.StatBlock{Intelligence: 5, Agility: 3},
				Skills: []SkillDescriptor{
					{Name: "Programming", Category: "technical", MaxLevel: 10},
					{Name: "Problem Solving", Category: "soft", MaxLevel: 8},
					{Name: "Version Control", Category: "technical", MaxLevel: 5},
					{Name: "Testing", Category: "technical", MaxLevel: 7},
				},
				Advancements: []*Branch{
					{
						Name:        "Senior Developer",
						MinLevel:    15,
						Description: "Experienced developer who mentors others",
						Icon:        "👨‍💻",
						StatBonuses: character.StatBlock{Intelligence: 8, Vitality: 3, Luck: 2},
						Skills: []SkillDescriptor{
							{Name: "Code Architecture", Category: "technical", MaxLevel: 10},
							{Name: "Mentoring", Category: "soft", MaxLevel: 8},
							{Name: "Code Review", Category: "technical", MaxLevel: 9},
							{Name: "System Design", Category: "technical", MaxLevel: 10},
						},
						Regression: &RegressionBonuses{
							KnowledgeMultiplier: 1.5,
							SkillEvolution:      []string{"Advanced Debugging", "Predictive Coding"},
							UniqueAbilities:     []string{"Time-Efficient Development", "Bug Foresight"},
						},
						Advancements: []*Branch{
							{
								Name:        "Tech Lead",
								MinLevel:    25,
								Description: "Technical leader guiding development teams",
								Icon:        "🚀",
								StatBonuses: character.StatBlock{Intelligence: 10, Vitality: 5, Luck: 3},
								Skills: []SkillDescriptor{
									{Name: "Technical Leadership", Category: "soft", MaxLevel: 10},
									{Name: "System Design", Category: "technical", MaxLevel: 10},
									{Name: "Team Management", Category: "soft", MaxLevel: 8},
									{Name: "Strategic Planning", Category: "specialized", MaxLevel: 9},
								},
								Regression: &RegressionBonuses{
									KnowledgeMultiplier: 2.0,
									SkillEvolution:      []string{"Visionary Leadership", "Technical Prophet"},
									UniqueAbilities:     []string{"Future Tech Prediction", "Team Synergy Mastery"},
								},
							},
							{
								Name:        "Principal Engineer",
								MinLevel:    30,
								Description: "Technical visionary shaping engineering culture",
								Icon:        "⭐",
								StatBonuses: character.StatBlock{Intelligence: 12, Vitality: 6, Luck: 5},
								Skills: []SkillDescriptor{
									{Name: "Technical Strategy", Category: "specialized", MaxLevel: 10},
									{Name: "Innovation", Category: "specialized", MaxLevel: 10},
									{Name: "Cross-team Collaboration", Category: "soft", MaxLevel: 9},
									{Name: "Industry Influence", Category: "legendary", MaxLevel: 5},
								},
								Regression: &RegressionBonuses{
									KnowledgeMultiplier: 3.0,
									SkillEvolution:      []string{"Technological Oracle", "Innovation Catalyst"},
									UniqueAbilities:     []string{"Industry Trend Foresight", "Legendary Code Mastery"},
									PrestigeUnlocks:     []string{"Access to EX-Rank Technical Challenges"},
								},
							},
						},
					},
				},
			},
			{
				Name:        "Mechanical Engineer",
				MinLevel:    5,
				Description: "Masters of physical systems and mechanics",
				Icon:        "⚙️",
				StatBonuses: character.StatBlock{Strength: 5, Intelligence: 4, Vitality: 3},
				Skills: []SkillDescriptor{
					{Name: "CAD Design", Category: "technical", MaxLevel: 10},
					{Name: "Materials Science", Category: "technical", MaxLevel: 8},
					{Name: "Project Management", Category: "soft", MaxLevel: 7},
				},
				Advancements: []*Branch{
					{
						Name:        "Senior Mechanical Engineer",
						MinLevel:    15,
						Description: "Expert in mechanical design and analysis",
						Icon:        "🔩",
						StatBonuses: character.StatBlock{Strength: 7, Intelligence: 6, Vitality: 4},
						Skills: []SkillDescriptor{
							{Name: "Advanced Analysis", Category: "technical", MaxLevel: 10},
							{Name: "Team Leadership", Category: "soft", MaxLevel: 8},
						},
					},
				},
			},
		},
	},
	{
		Name:        "Artist",
		Description: "Creative visionaries who bring beauty to the world",
		Icon:        "🎨",
		BaseStats: character.StatBlock{
			Strength: 7, Agility: 12, Intelligence: 11, Vitality: 8, Charisma: 10, Luck: 12,
		},
		Branches: []*Branch{
			{
				Name:        "Graphic Designer",
				MinLevel:    5,
				Description: "Visual communicators who create stunning designs",
				Icon:        "🖌️",
				StatBonuses: character.StatBlock{Agility: 5, Intelligence: 3, Luck: 3},
				Skills: []SkillDescriptor{
					{Name: "Design Software", Category: "technical", MaxLevel: 10},
					{Name: "Typography", Category: "technical", MaxLevel: 8},
					{Name: "Color Theory", Category: "technical", MaxLevel: 7},
					{Name: "Creative Thinking", Category: "soft", MaxLevel: 9},
				},
				Advancements: []*Branch{
					{
						Name:        "Senior Designer",
						MinLevel:    15,
						Description: "Design expert leading creative projects",
						Icon:        "🎭",
						StatBonuses: character.StatBlock{Agility: 8, Intelligence: 5, Luck: 5},
						Skills: []SkillDescriptor{
							{Name: "Brand Strategy", Category: "specialized", MaxLevel: 10},
							{Name: "Client Management", Category: "soft", MaxLevel: 8},
						},
						Advancements: []*Branch{
							{
								Name:        "Creative Director",
								MinLevel:    25,
								Description: "Visionary leader of creative teams",
								Icon:        "👑",
								StatBonuses: character.StatBlock{Agility: 10, Intelligence: 7, Luck: 8},
								Skills: []SkillDescriptor{
									{Name: "Creative Leadership", Category: "soft", MaxLevel: 10},
									{Name: "Strategic Vision", Category: "specialized", MaxLevel: 10},
								},
							},
						},
					},
				},
			},
			{
				Name:        "Digital Artist",
				MinLevel:    5,
				Description: "Masters of digital creation and illustration",
				Icon:        "🖥️",
				StatBonuses: character.StatBlock{Agility: 6, Intelligence: 2, Luck: 4},
				Skills: []SkillDescriptor{
					{Name: "Digital Painting", Category: "technical", MaxLevel: 10},
					{Name: "3D Modeling", Category: "technical", MaxLevel: 8},
					{Name: "Animation", Category: "technical", MaxLevel: 9},
				},
			},
		},
	},
	{
		Name:        "Writer",
		Description: "Wordsmiths who craft stories and communicate ideas",
		Icon:        "✍️",
		BaseStats: character.StatBlock{
			Strength: 6, Agility: 9, Intelligence: 14, Vitality: 9, Charisma: 9, Luck: 12,
		},
		Branches: []*Branch{
			{
				Name:        "Content Writer",
				MinLevel:    5,
				Description: "Creators of engaging content across platforms",
				Icon:        "📝",
				StatBonuses: character.StatBlock{Intelligence: 4, Agility: 3, Luck: 2},
				Skills: []SkillDescriptor{
					{Name: "SEO Writing", Category: "technical", MaxLevel: 8},
					{Name: "Research", Category: "soft", MaxLevel: 9},
					{Name: "Storytelling", Category: "soft", MaxLevel: 10},
				},
				Advancements: []*Branch{
					{
						Name:        "Senior Writer",
						MinLevel:    15,
						Description: "Expert writer with specialized knowledge",
						Icon:        "📚",
						StatBonuses: character.StatBlock{Intelligence: 7, Luck: 4},
						Advancements: []*Branch{
							{
								Name:        "Editor-in-Chief",
								MinLevel:    25,
								Description: "Editorial leader overseeing content strategy",
								Icon:        "📖",
								StatBonuses: character.StatBlock{Intelligence: 10, Vitality: 5, Luck: 6},
							},
						},
					},
				},
			},
		},
	},
	{
		Name:        "Business",
		Description: "Strategic minds who drive organizations forward",
		Icon:        "💼",
		BaseStats: character.StatBlock{
			Strength: 8, Agility: 10, Intelligence: 12, Vitality: 12, Charisma: 13, Luck: 8,
		},
		Branches: []*Branch{
			{
				Name:        "Business Analyst",
				MinLevel:    5,
				Description: "Analytical thinkers who optimize business processes",
				Icon:        "📊",
				StatBonuses: character.StatBlock{Intelligence: 5, Vitality: 3, Agility: 2},
				Skills: []SkillDescriptor{
					{Name: "Data Analysis", Category: "technical", MaxLevel: 9},
					{Name: "Process Optimization", Category: "technical", MaxLevel: 8},
					{Name: "Stakeholder Management", Category: "soft", MaxLevel: 8},
				},
				Advancements: []*Branch{
					{
						Name:        "Senior Analyst",
						MinLevel:    15,
						Description: "Expert analyst leading strategic initiatives",
						Icon:        "📈",
						Advancements: []*Branch{
							{
								Name:        "Manager",
								MinLevel:    20,
								Description: "People leader managing teams and projects",
								Icon:        "👨‍💼",
								Advancements: []*Branch{
									{
										Name:        "Director",
										MinLevel:    30,
										Description: "Strategic leader overseeing departments",
										Icon:        "🏢",
										Advancements: []*Branch{
											{
												Name:        "Vice President",
												MinLevel:    40,
												Description: "Executive leader shaping company direction",
												Icon:        "🤵",
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	},
	{
		Name:        "Scientist",
		Description: "Researchers and innovators pushing the boundaries of knowledge",
		Icon:        "🔬",
		BaseStats: character.StatBlock{
			Strength: 7, Agility: 8, Intelligence: 16, Vitality: 9, Charisma: 7, Luck: 10,
		},
		Branches: []*Branch{
			{
				Name:        "Research Scientist",
				MinLevel:    5,
				Description: "Dedicated researchers expanding human knowledge",
				Icon:        "🧪",
				StatBonuses: character.StatBlock{Intelligence: 6, Vitality: 2, Luck: 2},
				Skills: []SkillDescriptor{
					{Name: "Research Methods", Category: "technical", MaxLevel: 10},
					{Name: "Data Analysis", Category: "technical", MaxLevel: 9},
					{Name: "Scientific Writing", Category: "soft", MaxLevel: 8},
				},
			},
		},
	},
	{
		Name:        "Teacher",
		Description: "Educators who shape minds and inspire learning",
		Icon:        "🎓",
		BaseStats: character.StatBlock{
			Strength: 8, Agility: 9, Intelligence: 13, Vitality: 11, Charisma: 14, Luck: 9,
		},
		Branches: []*Branch{
			{
				Name:        "Elementary Teacher",
				MinLevel:    5,
				Description: "Foundation builders for young minds",
				Icon:        "👩‍🏫",
				StatBonuses: character.StatBlock{Intelligence: 4, Vitality: 4, Luck: 2},
				Skills: []SkillDescriptor{
					{Name: "Lesson Planning", Category: "soft", MaxLevel: 9},
					{Name: "Classroom Management", Category: "soft", MaxLevel: 8},
					{Name: "Child Psychology", Category: "technical", MaxLevel: 7},
				},
			},
			{
				Name:        "High School Teacher",
				MinLevel:    5,
				Description: "Subject matter experts preparing students for the future",
				Icon:        "👨‍🏫",
				StatBonuses: character.StatBlock{Intelligence: 5, Vitality: 3, Strength: 2},
			},
		},
	},
	{
		Name:        "Healthcare",
		Description: "Healers and caregivers dedicated to helping others",
		Icon:        "🏥",
		BaseStats: character.StatBlock{
			Strength: 9, Agility: 11, Intelligence: 13, Vitality: 14, Charisma: 12, Luck: 3,
		},
		Branches: []*Branch{
			{
				Name:        "Nurse",
				MinLevel:    5,
				Description: "Compassionate caregivers on the front lines of healthcare",
				Icon:        "👩‍⚕️",
				StatBonuses: character.StatBlock{Vitality: 5, Agility: 3, Intelligence: 2},
				Skills: []SkillDescriptor{
					{Name: "Patient Care", Category: "soft", MaxLevel: 10},
					{Name: "Medical Knowledge", Category: "technical", MaxLevel: 9},
					{Name: "Critical Thinking", Category: "soft", MaxLevel: 8},
				},
				Advancements: []*Branch{
					{
						Name:        "Nurse Practitioner",
						MinLevel:    20,
						Description: "Advanced practice nurse with specialized skills",
						Icon:        "👨‍⚕️",
						StatBonuses: character.StatBlock{Vitality: 8, Intelligence: 6, Agility: 4},
					},
				},
			},
		},
	},
}
