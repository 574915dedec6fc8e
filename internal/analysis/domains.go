package analysis

// Domains are plain strings; unmapped inputs fall back to DomainGeneral,
// which aligns with no class.
const (
	DomainTechnology = "technology"
	DomainScientific = "scientific"
	DomainAnalytical = "analytical"
	DomainBusiness   = "business"
	DomainCreative   = "creative"
	DomainSocial     = "social"
	DomainHealthcare = "healthcare"
	DomainTeaching   = "teaching"
	DomainGeneral    = "general"
)

// domainOrder breaks weight ties when ranking dominant domains.
var domainOrder = [...]string{
	DomainTechnology, DomainScientific, DomainAnalytical, DomainBusiness,
	DomainCreative, DomainSocial, DomainHealthcare, DomainTeaching,
	DomainGeneral,
}

// classOrder is the catalog declaration order, used to break score ties.
var classOrder = [...]string{
	"Engineer", "Artist", "Writer", "Business", "Scientist", "Teacher", "Healthcare",
}

var subjectDomains = map[string]string{
	"Programming":      DomainTechnology,
	"Computer Science": DomainTechnology,
	"Mathematics":      DomainAnalytical,
	"Physics":          DomainScientific,
	"Chemistry":        DomainScientific,
	"Biology":          DomainScientific,
	"Economics":        DomainBusiness,
	"Finance":          DomainBusiness,
	"Art":              DomainCreative,
	"Design":           DomainCreative,
	"Literature":       DomainCreative,
	"Psychology":       DomainSocial,
	"Medicine":         DomainHealthcare,
	"Education":        DomainTeaching,
}

// careerDomains also maps the current-role field.
var careerDomains = map[string]string{
	"Software Engineer":  DomainTechnology,
	"Data Scientist":     DomainAnalytical,
	"Research Scientist": DomainScientific,
	"Teacher":            DomainTeaching,
	"Doctor":             DomainHealthcare,
	"Artist":             DomainCreative,
	"Writer":             DomainCreative,
	"Manager":            DomainBusiness,
	"Entrepreneur":       DomainBusiness,
}

var domainClasses = map[string][]string{
	DomainTechnology: {"Engineer"},
	DomainScientific: {"Scientist", "Engineer"},
	DomainAnalytical: {"Scientist", "Business"},
	DomainBusiness:   {"Business"},
	DomainCreative:   {"Artist", "Writer"},
	DomainSocial:     {"Teacher", "Business"},
	DomainHealthcare: {"Healthcare"},
	DomainTeaching:   {"Teacher"},
}

// classDomains is the reverse view used when wording recommendation reasons.
var classDomains = map[string]string{
	"Engineer":   DomainTechnology,
	"Scientist":  DomainScientific,
	"Business":   DomainBusiness,
	"Teacher":    DomainTeaching,
	"Healthcare": DomainHealthcare,
	"Artist":     DomainCreative,
	"Writer":     DomainCreative,
}

type statProfileEntry struct {
	name    string
	classes []string
}

// statProfiles keys on the two highest stat names, sorted alphabetically and
// comma-joined.
var statProfiles = map[string]statProfileEntry{
	"agility,intelligence":  {"Analytical Learner", []string{"Engineer", "Scientist"}},
	"charisma,intelligence": {"Natural Leader", []string{"Business", "Teacher"}},
	"intelligence,luck":     {"Creative Thinker", []string{"Artist", "Writer"}},
	"strength,vitality":     {"Dedicated Worker", []string{"Healthcare", "Engineer"}},
	"charisma,luck":         {"People Person", []string{"Business", "Teacher"}},
}

var balancedProfile = statProfileEntry{"Balanced", []string{"Business", "Teacher"}}

// runeClassMap keys on the ability names the rune generator produces.
var runeClassMap = map[string][]string{
	"Rapid Acquisition": {"Teacher", "Scientist"},
	"Memory Palace":     {"Scientist"},
	"Guided Study":      {"Teacher"},
	"Unwavering Focus":  {"Engineer"},
	"Steady Hands":      {"Engineer", "Healthcare"},
	"Team Synergy":      {"Business", "Teacher"},
	"Silver Tongue":     {"Business"},
	"Burnout Ward":      {"Healthcare"},
	"Second Wind":       {"Healthcare"},
	"Pattern Sight":     {"Scientist", "Business"},
	"Deep Analysis":     {"Scientist", "Engineer"},
	"Lucky Break":       {"Artist", "Writer"},
	"Windfall":          {"Business"},
}

// Activity pattern types, checked in priority order.
const (
	PatternSpecialist = "specialist"
	PatternGeneralist = "generalist"
	PatternResearcher = "researcher"
	PatternBalanced   = "balanced"
)

var patternClassBonus = map[string]map[string]int{
	PatternSpecialist: {"Scientist": 6, "Engineer": 4},
	PatternGeneralist: {"Business": 6, "Teacher": 4},
	PatternResearcher: {"Scientist": 8, "Writer": 3},
	PatternBalanced:   {"Business": 3, "Teacher": 3, "Engineer": 2},
}

type specificClass struct {
	name         string
	bonus        int
	requirements []string
}

var specificClasses = map[string][]specificClass{
	"Engineer": {
		{"Software Engineer", 5, []string{"Programming background"}},
		{"Mechanical Engineer", 3, []string{"Physics/Math background"}},
		{"Civil Engineer", 2, []string{"Math background"}},
	},
	"Scientist": {
		{"Research Scientist", 5, []string{"Science background"}},
		{"Data Scientist", 4, []string{"Math/Programming background"}},
		{"Lab Technician", 2, []string{"Science interest"}},
	},
	"Business": {
		{"Business Analyst", 4, []string{"Analytical thinking"}},
		{"Project Manager", 3, []string{"Organization skills"}},
		{"Sales Representative", 2, []string{"Communication skills"}},
	},
	"Teacher": {
		{"Subject Teacher", 4, []string{"Subject expertise"}},
		{"Training Coordinator", 3, []string{"Communication skills"}},
	},
	"Healthcare": {
		{"Medical Assistant", 3, []string{"Biology background"}},
		{"Nurse", 4, []string{"Healthcare interest"}},
	},
	"Artist": {
		{"Graphic Designer", 4, []string{"Design background"}},
		{"Digital Artist", 3, []string{"Art background"}},
	},
	"Writer": {
		{"Content Writer", 4, []string{"Writing skills"}},
		{"Technical Writer", 3, []string{"Technical background"}},
	},
}
