package analyzer

import (
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/catalog"
)

// Analyzer scores CV text against the career catalog and a job description.
// It holds only the read-only catalog and its vocabulary, so a single instance
// is safe for concurrent use; every method is a pure function of its inputs.
type Analyzer struct {
	catalog    *catalog.Catalog
	vocabulary []string
}

// New builds an analyzer over the given catalog. The vocabulary (union of all
// profile keywords) is computed once here and reused on every request.
func New(c *catalog.Catalog) *Analyzer {
	return &Analyzer{
		catalog:    c,
		vocabulary: c.Vocabulary(),
	}
}

// CVAnalysis is the caller-facing slice of extracted attributes: labels only,
// internal scores stay inside the engine.
type CVAnalysis struct {
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	Experience string   `json:"experience"`
}

// Result is the full outcome of one analysis call.
type Result struct {
	CVAnalysis        CVAnalysis   `json:"cv_analysis"`
	CareerSuggestions []Suggestion `json:"career_suggestions"`
	JobMatch          JobMatch     `json:"job_match"`
}

// Analyze runs attribute extraction, career suggestion and job matching over
// the given texts. It never fails: degenerate input falls back to documented
// defaults in each stage.
func (a *Analyzer) Analyze(cvText, jobText string) Result {
	attrs := a.ExtractAttributes(cvText)
	return Result{
		CVAnalysis: CVAnalysis{
			Skills:     attrs.Skills,
			Education:  attrs.Education,
			Experience: attrs.Experience,
		},
		CareerSuggestions: a.SuggestCareers(cvText),
		JobMatch:          a.MatchJob(cvText, jobText),
	}
}

// ensure JSON arrays serialize as [] rather than null
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
