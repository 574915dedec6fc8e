// Package analysis implements the background analyzer: it scores a
// character's declared background, stat distribution, rune, and activity
// pattern against the class tree and produces the ranked unlock options shown
// at the level-10 class gate. Everything is a pure read over the snapshot and
// the fixed tables in domains.go.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arkanite/skillforge/internal/character"
)

// ErrNoBackground is returned when analysis is requested for a character
// without a background declaration.
var ErrNoBackground = errors.New("analysis: character has no background declaration")

const (
	minClassScore  = 10
	maxBaseClasses = 6
	unlockLevel    = 10
)

// StatProfile names the character's dominant stat pairing.
type StatProfile struct {
	Name           string   `json:"name"`
	DominantStats  []string `json:"dominant_stats"`
	Balanced       bool     `json:"balanced"`
	AlignedClasses []string `json:"aligned_classes"`
}

// Pattern classifies how the declaration is spread across subjects and goals.
type Pattern struct {
	Type      string `json:"type"`
	Focus     string `json:"focus"`
	Diversity int    `json:"diversity"`
}

// Compatibility is a coarse confidence read on the declaration as a whole.
type Compatibility struct {
	Academic   float64 `json:"academic"`
	Career     float64 `json:"career"`
	Experience float64 `json:"experience"`
	Aptitude   float64 `json:"aptitude"`
	Total      float64 `json:"total"`
	Level      string  `json:"level"`
}

// Summary is the analytical half of a result: what the analyzer concluded
// about the character before scoring classes.
type Summary struct {
	DominantDomains []string      `json:"dominant_domains"`
	StatProfile     StatProfile   `json:"stat_profile"`
	RuneAlignment   []string      `json:"rune_alignment"`
	ActivityPattern Pattern       `json:"activity_pattern"`
	Compatibility   Compatibility `json:"compatibility"`
}

// ClassOption is one unlockable specific class with its final score.
type ClassOption struct {
	BaseClass        string   `json:"base_class"`
	SpecificClass    string   `json:"specific_class"`
	EligibilityScore int      `json:"eligibility_score"`
	Requirements     []string `json:"requirements"`
	Reason           string   `json:"reason"`
}

// Recommendation pairs an option with a wording aimed at the player.
type Recommendation struct {
	Class  ClassOption `json:"class"`
	Reason string      `json:"reason"`
}

// ConsiderLater holds the options past the headline cut.
type ConsiderLater struct {
	Message string        `json:"message"`
	Classes []ClassOption `json:"classes"`
}

// Recommendations splits the ranked options into a headline pick, close
// alternatives, and a deferred tail.
type Recommendations struct {
	Primary       *Recommendation  `json:"primary,omitempty"`
	Alternatives  []Recommendation `json:"alternatives"`
	ConsiderLater ConsiderLater    `json:"consider_later"`
}

// Result is the full analyzer output.
type Result struct {
	Analysis         Summary         `json:"analysis"`
	AvailableClasses []ClassOption   `json:"available_classes"`
	Recommendations  Recommendations `json:"recommendations"`
	UnlockEligible   bool            `json:"unlock_eligible"`
	CanUnlockAt      bool            `json:"can_unlock_at"`
}

// Analyze scores the character's background against the class tree. It never
// mutates the snapshot.
func Analyze(ch *character.Character) (*Result, error) {
	if ch.Background == nil {
		return nil, ErrNoBackground
	}

	summary := summarize(ch)
	available := scoreClasses(summary)

	return &Result{
		Analysis:         summary,
		AvailableClasses: available,
		Recommendations:  recommend(available, summary),
		UnlockEligible:   len(available) > 0,
		CanUnlockAt:      ch.Level >= unlockLevel && len(available) > 0,
	}, nil
}

func summarize(ch *character.Character) Summary {
	bg := ch.Background
	return Summary{
		DominantDomains: dominantDomains(bg),
		StatProfile:     statProfile(ch.Stats),
		RuneAlignment:   runeAlignment(ch),
		ActivityPattern: activityPattern(bg),
		Compatibility:   compatibility(ch),
	}
}

// dominantDomains aggregates domain weight across the declaration: 1 per
// subject, 2 per career goal, a flat 3 for the current role. The top three
// domains by weight win; ties resolve in domain declaration order.
func dominantDomains(bg *character.Background) []string {
	weights := map[string]int{}
	for _, subject := range bg.Subjects {
		weights[subjectDomain(subject)]++
	}
	for _, goal := range bg.CareerGoals {
		weights[careerDomain(goal)] += 2
	}
	if bg.CurrentRole != "" {
		weights[careerDomain(bg.CurrentRole)] += 3
	}

	ranked := make([]string, 0, len(weights))
	for _, domain := range domainOrder {
		if weights[domain] > 0 {
			ranked = append(ranked, domain)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return weights[ranked[i]] > weights[ranked[j]]
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}

func subjectDomain(subject string) string {
	if d, ok := subjectDomains[subject]; ok {
		return d
	}
	return DomainGeneral
}

func careerDomain(career string) string {
	if d, ok := careerDomains[career]; ok {
		return d
	}
	return DomainGeneral
}

// statProfile keys the profile table on the two highest stats, names sorted
// alphabetically. Equal values keep stat declaration order before the
// alphabetical join, so the result is deterministic.
func statProfile(stats character.StatBlock) StatProfile {
	ranked := stats.Ranked()
	dominant := []string{ranked[0].String(), ranked[1].String()}

	key := []string{dominant[0], dominant[1]}
	sort.Strings(key)
	entry, ok := statProfiles[strings.Join(key, ",")]
	if !ok {
		entry = balancedProfile
	}

	return StatProfile{
		Name:           entry.name,
		DominantStats:  dominant,
		Balanced:       stats.Spread() < 15,
		AlignedClasses: append([]string(nil), entry.classes...),
	}
}

// runeAlignment maps the rune's ability names through the fixed table,
// deduplicated, in class declaration order.
func runeAlignment(ch *character.Character) []string {
	if ch.Rune == nil {
		return nil
	}
	seen := map[string]bool{}
	for _, ability := range ch.Rune.Abilities {
		for _, cls := range runeClassMap[ability.Name] {
			seen[cls] = true
		}
	}
	var aligned []string
	for _, cls := range classOrder {
		if seen[cls] {
			aligned = append(aligned, cls)
		}
	}
	return aligned
}

func activityPattern(bg *character.Background) Pattern {
	p := Pattern{
		Type:      PatternBalanced,
		Focus:     "general",
		Diversity: len(bg.Subjects) + len(bg.CareerGoals),
	}
	if len(bg.Subjects) > 0 {
		p.Focus = bg.Subjects[0]
	}

	switch {
	case len(bg.Subjects) <= 2 && len(bg.CareerGoals) <= 1:
		p.Type = PatternSpecialist
	case len(bg.Subjects) >= 5 || len(bg.CareerGoals) >= 3:
		p.Type = PatternGeneralist
	default:
		for _, activity := range bg.Activities {
			if strings.Contains(strings.ToLower(activity), "research") {
				p.Type = PatternResearcher
				break
			}
		}
	}
	return p
}

func compatibility(ch *character.Character) Compatibility {
	bg := ch.Background
	c := Compatibility{
		Academic: float64(len(bg.Subjects)),
		Career:   float64(len(bg.CareerGoals) * 2),
		Aptitude: 4, // two dominant stats, weighted 2 each
	}
	if bg.CurrentRole != "" {
		c.Experience = 1.5
	}
	c.Total = c.Academic + c.Career + c.Experience + c.Aptitude
	switch {
	case c.Total > 15:
		c.Level = "high"
	case c.Total > 8:
		c.Level = "medium"
	default:
		c.Level = "low"
	}
	return c
}

// scoreClasses synthesizes the base-class scores, keeps those at or above the
// threshold (top six), and expands the survivors into specific classes ranked
// by eligibility score. Ties keep catalog declaration order via stable sorts.
func scoreClasses(summary Summary) []ClassOption {
	scores := map[string]int{}

	for i, domain := range summary.DominantDomains {
		weight := 3 - i
		for _, cls := range domainClasses[domain] {
			scores[cls] += weight
		}
	}
	for _, cls := range summary.StatProfile.AlignedClasses {
		scores[cls] += 3
	}
	for _, cls := range summary.RuneAlignment {
		scores[cls] += 2
	}
	for cls, bonus := range patternClassBonus[summary.ActivityPattern.Type] {
		scores[cls] += bonus
	}

	var retained []string
	for _, cls := range classOrder {
		if scores[cls] >= minClassScore {
			retained = append(retained, cls)
		}
	}
	sort.SliceStable(retained, func(i, j int) bool {
		return scores[retained[i]] > scores[retained[j]]
	})
	if len(retained) > maxBaseClasses {
		retained = retained[:maxBaseClasses]
	}

	var options []ClassOption
	for _, base := range retained {
		for _, specific := range specificClasses[base] {
			options = append(options, ClassOption{
				BaseClass:        base,
				SpecificClass:    specific.name,
				EligibilityScore: scores[base] + specific.bonus,
				Requirements:     append([]string(nil), specific.requirements...),
				Reason:           optionReason(summary, base),
			})
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].EligibilityScore > options[j].EligibilityScore
	})
	return options
}

func optionReason(summary Summary, baseClass string) string {
	var reasons []string
	if len(summary.DominantDomains) > 0 && summary.DominantDomains[0] == classDomains[baseClass] {
		reasons = append(reasons, "Strong match with your learning focus")
	}
	for _, cls := range summary.StatProfile.AlignedClasses {
		if cls == baseClass {
			reasons = append(reasons, "Aligned with your natural abilities")
			break
		}
	}
	for _, cls := range summary.RuneAlignment {
		if cls == baseClass {
			reasons = append(reasons, "Synergizes with your System Rune")
			break
		}
	}
	if len(reasons) == 0 {
		return "Good overall fit based on your background"
	}
	return strings.Join(reasons, ", ")
}

func recommend(options []ClassOption, summary Summary) Recommendations {
	rec := Recommendations{
		Alternatives: []Recommendation{},
		ConsiderLater: ConsiderLater{
			Message: "These paths may become available through skill development or class advancement",
			Classes: []ClassOption{},
		},
	}
	if len(options) == 0 {
		return rec
	}

	focus := DomainGeneral
	if len(summary.DominantDomains) > 0 {
		focus = summary.DominantDomains[0]
	}
	rec.Primary = &Recommendation{
		Class: options[0],
		Reason: fmt.Sprintf("Best overall match based on your %s focus and %s profile",
			focus, summary.StatProfile.Name),
	}
	for _, opt := range options[1:min(3, len(options))] {
		rec.Alternatives = append(rec.Alternatives, Recommendation{
			Class: opt,
			Reason: fmt.Sprintf("Strong alternative that leverages your %s approach",
				summary.ActivityPattern.Type),
		})
	}
	if len(options) > 6 {
		rec.ConsiderLater.Classes = append(rec.ConsiderLater.Classes, options[6:]...)
	}
	return rec
}
