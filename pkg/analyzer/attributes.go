package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/nlp"
)

// Attributes are the facts extracted from a CV: detected catalog skills plus
// education and experience levels with their internal 0-100 scores.
type Attributes struct {
	Skills          []string
	Education       string
	EducationScore  int
	Experience      string
	ExperienceScore int
}

// educationTier maps a group of trigger terms to a level. Tiers are checked
// top-down and the first hit wins, so "doktora" beats a "lisans" mention in
// the same CV.
type educationTier struct {
	terms []string
	label string
	score int
}

var educationTiers = []educationTier{
	{[]string{"doktora", "phd"}, "Doktora", 100},
	{[]string{"yüksek lisans", "master"}, "Yüksek Lisans", 90},
	{[]string{"lisans", "fakülte", "mühendisliği", "bölümü", "üniversitesi"}, "Lisans", 80},
	{[]string{"ön lisans", "meslek yüksekokulu", "myo"}, "Ön Lisans", 60},
	{[]string{"lise"}, "Lise", 40},
}

const (
	educationDefaultLabel = "Lise / Belirtilmedi"
	educationDefaultScore = 0
)

// experience levels by max years found in the text
const (
	experienceSenior  = "Senior (Deneyimli)"
	experienceMid     = "Mid-Level (Orta)"
	experienceJunior  = "Junior (Giriş)"
	experienceIntern  = "Stajyer"
	experienceDefault = "Giriş Seviyesi"
)

var yearsPattern = regexp.MustCompile(`(\d+)\s+(?:yıl|sene)`)

// ExtractAttributes normalizes the CV text once and derives skills, education
// and experience from it. It always returns a fully populated value; missing
// signals fall back to the defaults.
func (a *Analyzer) ExtractAttributes(cvText string) Attributes {
	cleanCV := nlp.Normalize(cvText)

	var skills []string
	for _, kw := range a.vocabulary {
		if nlp.ContainsPhrase(cleanCV, kw) {
			skills = append(skills, kw)
		}
	}

	attrs := Attributes{
		Skills:         nonNil(skills),
		Education:      educationDefaultLabel,
		EducationScore: educationDefaultScore,
	}

	for _, tier := range educationTiers {
		if containsAny(cleanCV, tier.terms) {
			attrs.Education = tier.label
			attrs.EducationScore = tier.score
			break
		}
	}

	attrs.Experience, attrs.ExperienceScore = classifyExperience(cleanCV)
	return attrs
}

// containsAny does raw substring tests, matching how tier terms were chosen:
// "mühendisliği" should hit inside "bilgisayar mühendisliği" without padding.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func classifyExperience(cleanCV string) (string, int) {
	maxYears := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(cleanCV, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxYears {
			maxYears = n
		}
	}

	switch {
	case maxYears > 5:
		return experienceSenior, 100
	case maxYears >= 2:
		return experienceMid, 70
	case maxYears >= 1:
		return experienceJunior, 50
	}
	// internships still earn the entry score, only the label differs
	if strings.Contains(cleanCV, "staj") || strings.Contains(cleanCV, "stajyer") {
		return experienceIntern, 40
	}
	return experienceDefault, 40
}
