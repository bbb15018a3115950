package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/nlp"
)

// JobMatch describes how well the CV covers one job description.
type JobMatch struct {
	Status        string   `json:"status"`
	Score         int      `json:"score"`
	Feedback      string   `json:"feedback"`
	MissingSkills []string `json:"missing_skills"`
}

// job match status labels
const (
	StatusInvalidInput = "INVALID_INPUT"
	StatusHigh         = "YÜKSEK UYUM"
	StatusImprovable   = "GELİŞTİRİLEBİLİR UYUM"
	StatusLowWorkable  = "DÜŞÜK AMA BAŞLANGIÇ İÇİN UYGUN"
)

const (
	// job texts shorter than this after normalization are rejected
	minJobTextLen = 20

	// overlap boost and ceiling: raw lexical overlap is pessimistic, so it
	// is scaled up but never reaches a perfect score
	overlapBoost = 2.5
	maxJobScore  = 95

	maxMissingSkills = 5
)

// MatchJob computes the lexical overlap between CV and job description and
// buckets it into a status with feedback. Catalog keywords mentioned by the
// job but absent from the CV are reported as missing, capped at 5.
//
// Missing-skill detection deliberately uses raw substring tests on both sides
// (no word-boundary padding), unlike skill extraction.
func (a *Analyzer) MatchJob(cvText, jobText string) JobMatch {
	cleanJob := nlp.Normalize(jobText)
	if utf8.RuneCountInString(cleanJob) < minJobTextLen {
		return JobMatch{
			Status:        StatusInvalidInput,
			Score:         0,
			Feedback:      "İlan metni çok kısa...",
			MissingSkills: []string{},
		}
	}

	cleanCV := nlp.Normalize(cvText)
	jobWords := nlp.Tokens(cleanJob)
	cvWords := nlp.Tokens(cleanCV)

	common := 0
	for w := range jobWords {
		if _, ok := cvWords[w]; ok {
			common++
		}
	}

	overlapScore := 0.0
	if len(jobWords) > 0 {
		overlapScore = float64(common) / float64(len(jobWords)) * 100
	}
	boosted := overlapScore * overlapBoost
	if boosted > maxJobScore {
		boosted = maxJobScore
	}
	score := int(boosted)

	var status, feedback string
	switch {
	case score >= 60:
		status = StatusHigh
		feedback = "İlanla aranızda güçlü bir uyum var."
	case score >= 30:
		status = StatusImprovable
		feedback = "Uygunluk var ancak bazı teknik gereksinimler eksik görünüyor."
	default:
		status = StatusLowWorkable
		feedback = "İlan beklentileri ile CV'niz arasında farklar var, ancak temel becerilerinizle başvuruyu değerlendirebilirsiniz."
	}

	var missing []string
	for _, kw := range a.vocabulary {
		if strings.Contains(cleanJob, kw) && !strings.Contains(cleanCV, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}

	return JobMatch{
		Status:        status,
		Score:         score,
		Feedback:      feedback,
		MissingSkills: nonNil(missing),
	}
}
