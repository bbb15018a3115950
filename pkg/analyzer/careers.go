package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion is one ranked career recommendation.
type Suggestion struct {
	Title       string   `json:"title"`
	Score       int      `json:"score"`
	Reason      string   `json:"reason"`
	Missing     []string `json:"missing"`
	Description string   `json:"description"`
}

// scoring weights: core coverage dominates, support helps, education and
// experience round the score out
const (
	weightCore    = 0.50
	weightSupport = 0.25
	weightEdu     = 0.15
	weightExp     = 0.10

	// this many core/support matches saturate their bucket
	saturationCount = 4.0

	maxSuggestions = 3
	maxMissingCore = 3
)

// SuggestCareers scores every catalog profile against the CV and returns the
// top suggestions, highest score first. Profiles with no core match and at
// most one support match are left out entirely.
func (a *Analyzer) SuggestCareers(cvText string) []Suggestion {
	attrs := a.ExtractAttributes(cvText)
	cvSkills := make(map[string]struct{}, len(attrs.Skills))
	for _, s := range attrs.Skills {
		cvSkills[s] = struct{}{}
	}

	suggestions := []Suggestion{}
	for _, p := range a.catalog.Profiles() {
		coreMatches := intersect(p.Core, cvSkills)
		supportMatches := intersect(p.Support, cvSkills)

		coreRaw := saturate(len(coreMatches)) * 100
		supportRaw := saturate(len(supportMatches)) * 100

		score := coreRaw*weightCore +
			supportRaw*weightSupport +
			float64(attrs.EducationScore)*weightEdu +
			float64(attrs.ExperienceScore)*weightExp

		// floor-and-boost: enough core coverage guarantees a minimum
		if len(coreMatches) >= 3 {
			score = max(score, 40) + 10
		} else if len(coreMatches) >= 2 {
			score = max(score, 30) + 5
		}
		if score > 100 {
			score = 100
		}
		final := int(score)

		if len(coreMatches) == 0 && len(supportMatches) <= 1 {
			continue
		}

		missingCore := difference(p.Core, coreMatches)
		if len(missingCore) > maxMissingCore {
			missingCore = missingCore[:maxMissingCore]
		}

		var reason string
		switch {
		case final < 40:
			reason = "Teknik altyapı başlangıç seviyesinde, proje deneyimi ve framework bilgisi ile desteklenmeli."
		case final < 70:
			reason = fmt.Sprintf("Temel %d yetkinliğe sahipsiniz. %s gibi alanlarda gelişim sizi öne taşır.",
				len(coreMatches), strings.Join(missingCore, ", "))
		default:
			reason = "Harika bir eşleşme! Hem çekirdek hem yardımcı yetkinlikleriniz bu rol için çok uygun."
		}

		suggestions = append(suggestions, Suggestion{
			Title:       p.Title,
			Score:       final,
			Reason:      reason,
			Missing:     nonNil(missingCore),
			Description: p.Description,
		})
	}

	// stable: equal scores keep catalog declaration order
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func saturate(matches int) float64 {
	ratio := float64(matches) / saturationCount
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// intersect keeps profile keywords present in the CV skill set, preserving
// the profile's declared order.
func intersect(keywords []string, skills map[string]struct{}) []string {
	var out []string
	for _, kw := range keywords {
		if _, ok := skills[kw]; ok {
			out = append(out, kw)
		}
	}
	return out
}

// difference keeps profile keywords absent from matched, in declared order.
func difference(keywords, matched []string) []string {
	got := make(map[string]struct{}, len(matched))
	for _, kw := range matched {
		got[kw] = struct{}{}
	}
	var out []string
	for _, kw := range keywords {
		if _, ok := got[kw]; !ok {
			out = append(out, kw)
		}
	}
	return out
}
