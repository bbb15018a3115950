package analyzer

import (
	"strings"
	"testing"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/catalog"
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/nlp"
)

func newDefault() *Analyzer {
	return New(catalog.Default())
}

func TestExtractAttributesSkills(t *testing.T) {
	a := newDefault()

	attrs := a.ExtractAttributes("python ve java biliyorum, react ile frontend geliştirdim")
	wantSkills := []string{"python", "java", "react"}
	for _, s := range wantSkills {
		if !containsString(attrs.Skills, s) {
			t.Errorf("skills %v missing %q", attrs.Skills, s)
		}
	}

	// boundary matching: "javascript" in the CV must not produce "java"
	attrs = a.ExtractAttributes("javascript uzmanıyım")
	if containsString(attrs.Skills, "java") {
		t.Errorf("skills %v should not contain java for a javascript-only CV", attrs.Skills)
	}
	if !containsString(attrs.Skills, "javascript") {
		t.Errorf("skills %v missing javascript", attrs.Skills)
	}
}

func TestSkillDetectionMonotonic(t *testing.T) {
	a := newDefault()
	for _, kw := range catalog.Default().Vocabulary() {
		if nlp.Normalize(kw) != kw {
			// keywords like "c#" do not survive normalization and
			// cannot be detected; skip them
			continue
		}
		attrs := a.ExtractAttributes(" " + kw + " ")
		if !containsString(attrs.Skills, kw) {
			t.Errorf("keyword %q not detected in a CV consisting only of it", kw)
		}
	}
}

func TestEducationClassification(t *testing.T) {
	a := newDefault()
	tests := []struct {
		name      string
		cv        string
		wantLabel string
		wantScore int
	}{
		{"doctorate", "doktora derecem var", "Doktora", 100},
		{"phd", "phd in computer science", "Doktora", 100},
		{"masters", "yüksek lisans mezunuyum", "Yüksek Lisans", 90},
		{"bachelor via university", "ankara üniversitesi mezunu", "Lisans", 80},
		{"bachelor via faculty", "mühendislik fakültesi", "Lisans", 80},
		{"associate via myo", "myo mezunu", "Ön Lisans", 60},
		{"high school", "lise mezunuyum", "Lise", 40},
		{"unspecified", "python java sql", "Lise / Belirtilmedi", 0},
		{"empty", "", "Lise / Belirtilmedi", 0},
		// priority: the doctorate tier wins even when lower tiers also match
		{"doctorate beats bachelor", "doktora ve lisans diplomaları", "Doktora", 100},
		{"masters beats bachelor", "yüksek lisans bilgisayar mühendisliği", "Yüksek Lisans", 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := a.ExtractAttributes(tt.cv)
			if attrs.Education != tt.wantLabel || attrs.EducationScore != tt.wantScore {
				t.Errorf("education = %q/%d, want %q/%d",
					attrs.Education, attrs.EducationScore, tt.wantLabel, tt.wantScore)
			}
		})
	}
}

func TestExperienceClassification(t *testing.T) {
	a := newDefault()
	tests := []struct {
		name      string
		cv        string
		wantLabel string
		wantScore int
	}{
		{"six years is senior", "6 yıl deneyim", "Senior (Deneyimli)", 100},
		{"five years is still mid", "5 yıl deneyim", "Mid-Level (Orta)", 70},
		{"two years is mid", "2 yıl tecrübe", "Mid-Level (Orta)", 70},
		{"one year is junior", "1 yıl deneyim", "Junior (Giriş)", 50},
		{"sene counts too", "7 sene çalıştım", "Senior (Deneyimli)", 100},
		{"max year wins", "1 yıl a şirketi 8 yıl b şirketi", "Senior (Deneyimli)", 100},
		{"intern without years", "staj yaptım", "Stajyer", 40},
		{"intern label variant", "stajyer olarak çalıştım", "Stajyer", 40},
		{"no signal", "python java", "Giriş Seviyesi", 40},
		{"empty", "", "Giriş Seviyesi", 40},
		{"years without unit ignored", "2020 mezunu", "Giriş Seviyesi", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := a.ExtractAttributes(tt.cv)
			if attrs.Experience != tt.wantLabel || attrs.ExperienceScore != tt.wantScore {
				t.Errorf("experience = %q/%d, want %q/%d",
					attrs.Experience, attrs.ExperienceScore, tt.wantLabel, tt.wantScore)
			}
		})
	}
}

func TestSuggestCareersScoring(t *testing.T) {
	a := newDefault()
	// 3 core matches for Yazılım Geliştirici: coreRaw 75*0.50 = 37.5,
	// edu 80*0.15 = 12, exp 70*0.10 = 7 -> 56.5, floor to 40 then +10 -> 66
	got := a.SuggestCareers("python java sql 3 yıl deneyim lisans bilgisayar mühendisliği")
	if len(got) == 0 {
		t.Fatal("no suggestions returned")
	}
	top := got[0]
	if top.Title != "Yazılım Geliştirici" {
		t.Errorf("top suggestion = %q, want Yazılım Geliştirici", top.Title)
	}
	if top.Score != 66 {
		t.Errorf("top score = %d, want 66", top.Score)
	}
	if top.Score < 40 || top.Score >= 70 {
		t.Fatalf("score %d out of expected mid band", top.Score)
	}
	if !strings.Contains(top.Reason, "3 yetkinliğe") {
		t.Errorf("mid-band reason should cite core match count, got %q", top.Reason)
	}
	if len(top.Missing) != 3 {
		t.Errorf("missing core hint = %v, want 3 entries", top.Missing)
	}
	// missing core skills follow the catalog's declared order
	if len(top.Missing) == 3 && (top.Missing[0] != "javascript" || top.Missing[1] != "typescript") {
		t.Errorf("missing order = %v, want javascript, typescript first", top.Missing)
	}
}

func TestSuggestCareersBounds(t *testing.T) {
	a := newDefault()
	cvs := []string{
		"",
		"python",
		"python java sql go php docker react git linux aws scrum 10 yıl deneyim doktora üniversitesi",
		"muhasebe finans vergi excel 1 yıl",
		"seo sem google ads crm satış ikna",
	}
	for _, cv := range cvs {
		for _, s := range a.SuggestCareers(cv) {
			if s.Score < 0 || s.Score > 100 {
				t.Errorf("score %d out of [0,100] for cv %q", s.Score, cv)
			}
		}
	}
}

func TestSuggestCareersClampAt100(t *testing.T) {
	a := newDefault()
	cv := "python java sql go php docker react git linux aws mongodb redis 10 yıl deneyim doktora istanbul üniversitesi"
	got := a.SuggestCareers(cv)
	if len(got) == 0 {
		t.Fatal("no suggestions returned")
	}
	if got[0].Score != 100 {
		t.Errorf("saturated CV top score = %d, want 100", got[0].Score)
	}
	if !strings.Contains(got[0].Reason, "Harika") {
		t.Errorf("high-band reason expected, got %q", got[0].Reason)
	}
}

func TestSuggestCareersStableTieOrder(t *testing.T) {
	// two profiles scoring identically for a "python" CV
	c := catalog.New([]catalog.Profile{
		{Title: "Birinci Rol", Core: []string{"python"}, Description: "a"},
		{Title: "İkinci Rol", Core: []string{"python"}, Description: "b"},
	})
	a := New(c)
	got := a.SuggestCareers("python")
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].Score != got[1].Score {
		t.Fatalf("scores differ (%d vs %d), tie expected", got[0].Score, got[1].Score)
	}
	if got[0].Title != "Birinci Rol" || got[1].Title != "İkinci Rol" {
		t.Errorf("tie order = %q, %q; want declaration order", got[0].Title, got[1].Title)
	}
}

func TestSuggestCareersInclusionGate(t *testing.T) {
	c := catalog.New([]catalog.Profile{
		{Title: "Tek Destek", Support: []string{"git", "jira"}},
		{Title: "Çift Destek", Support: []string{"docker", "linux"}},
	})
	a := New(c)

	// one support match only: excluded
	got := a.SuggestCareers("git")
	for _, s := range got {
		if s.Title == "Tek Destek" {
			t.Errorf("profile with a single support match should be excluded")
		}
	}

	// two support matches, zero core: included
	got = a.SuggestCareers("docker linux")
	found := false
	for _, s := range got {
		if s.Title == "Çift Destek" {
			found = true
		}
	}
	if !found {
		t.Errorf("profile with two support matches should be included, got %v", got)
	}
}

func TestMatchJobShortCircuit(t *testing.T) {
	a := newDefault()
	tests := []struct {
		name    string
		jobText string
	}{
		{"empty", ""},
		{"whitespace", "   \t\n "},
		{"short", "kısa ilan"},
		{"stop words only", "ve ile için bu şu o de da ki mi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.MatchJob("python java sql çok uzun bir cv metni", tt.jobText)
			if got.Status != StatusInvalidInput {
				t.Errorf("status = %q, want %q", got.Status, StatusInvalidInput)
			}
			if got.Score != 0 {
				t.Errorf("score = %d, want 0", got.Score)
			}
			if len(got.MissingSkills) != 0 {
				t.Errorf("missing skills = %v, want empty", got.MissingSkills)
			}
		})
	}
}

func TestMatchJobScoreFormula(t *testing.T) {
	a := newDefault()
	// ten distinct job tokens, none of them stop words
	job := "python sql react docker linux frontend backend veritabanı sunucu uygulama"

	// overlap 5/10 -> 50 * 2.5 = 125 -> clamped to 95
	got := a.MatchJob("python sql react docker linux", job)
	if got.Score != 95 {
		t.Errorf("score = %d, want 95 (clamped)", got.Score)
	}
	if got.Status != StatusHigh {
		t.Errorf("status = %q, want %q", got.Status, StatusHigh)
	}

	// overlap 1/10 -> 10 * 2.5 = 25, below the clamp
	got = a.MatchJob("python", job)
	if got.Score != 25 {
		t.Errorf("score = %d, want 25", got.Score)
	}
	if got.Status != StatusLowWorkable {
		t.Errorf("status = %q, want %q", got.Status, StatusLowWorkable)
	}

	// overlap 4/10 -> 40 * 2.5 = 100 -> clamped to 95
	got = a.MatchJob("python sql react docker", job)
	if got.Score != 95 {
		t.Errorf("score = %d, want 95 (clamped)", got.Score)
	}
}

func TestMatchJobImprovableBand(t *testing.T) {
	a := newDefault()
	// overlap 2/10 -> 20 * 2.5 = 50 -> GELİŞTİRİLEBİLİR UYUM
	job := "python sql react docker linux frontend backend veritabanı sunucu uygulama"
	got := a.MatchJob("python sql", job)
	if got.Score != 50 {
		t.Errorf("score = %d, want 50", got.Score)
	}
	if got.Status != StatusImprovable {
		t.Errorf("status = %q, want %q", got.Status, StatusImprovable)
	}
}

func TestMatchJobMissingSkillsAsymmetry(t *testing.T) {
	a := newDefault()
	// "java" appears in the job only inside "javascript"; the CV has the
	// real word "java". The raw substring test must not list java as
	// missing, while "javascript" itself is genuinely absent from the CV.
	job := "javascript bilen frontend geliştirici aranıyor uzun süreli pozisyon"
	cv := "java backend uygulamaları üzerinde çalıştım"

	got := a.MatchJob(cv, job)
	if got.Status == StatusInvalidInput {
		t.Fatal("job text unexpectedly rejected as too short")
	}
	if containsString(got.MissingSkills, "java") {
		t.Errorf("java should not be missing: %v", got.MissingSkills)
	}
	if !containsString(got.MissingSkills, "javascript") {
		t.Errorf("javascript should be missing: %v", got.MissingSkills)
	}
}

func TestMatchJobMissingSkillsCap(t *testing.T) {
	a := newDefault()
	job := "python java javascript typescript react docker aws linux scrum excel pandas numpy tableau hadoop spark deneyimli aday arıyoruz"
	got := a.MatchJob("tamamen alakasız bambaşka metin", job)
	if len(got.MissingSkills) > 5 {
		t.Errorf("missing skills = %d entries, want at most 5", len(got.MissingSkills))
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	a := newDefault()
	cv := "python java sql 3 yıl deneyim lisans bilgisayar mühendisliği"
	job := "Ekibimiz için Python, SQL ve React bilen, modern web uygulamaları geliştiren, " +
		"takımda uyumlu çalışan, analitik düşünen, öğrenmeye açık, kaliteli kod yazan, " +
		"test süreçlerine hakim, çevik yöntemlere aşina bir yazılımcı arıyoruz; " +
		"veri tabanı sorguları yazabilmeli, kullanıcı arayüzü bileşenleri tasarlayabilmeli."

	res := a.Analyze(cv, job)

	for _, s := range []string{"python", "java", "sql"} {
		if !containsString(res.CVAnalysis.Skills, s) {
			t.Errorf("cv skills %v missing %q", res.CVAnalysis.Skills, s)
		}
	}
	if res.CVAnalysis.Education != "Lisans" {
		t.Errorf("education = %q, want Lisans", res.CVAnalysis.Education)
	}
	if res.CVAnalysis.Experience != "Mid-Level (Orta)" {
		t.Errorf("experience = %q, want Mid-Level (Orta)", res.CVAnalysis.Experience)
	}

	if len(res.CareerSuggestions) == 0 {
		t.Fatal("no career suggestions")
	}
	top := res.CareerSuggestions[0]
	if top.Title != "Yazılım Geliştirici" {
		t.Errorf("top suggestion = %q, want Yazılım Geliştirici", top.Title)
	}
	if top.Score <= 40 {
		t.Errorf("top score = %d, want > 40", top.Score)
	}

	if res.JobMatch.Status == StatusInvalidInput {
		t.Error("job match should not be invalid for a full job description")
	}
	if !containsString(res.JobMatch.MissingSkills, "react") {
		t.Errorf("job match missing skills %v should include react", res.JobMatch.MissingSkills)
	}
}

func TestAnalyzeDegenerateInput(t *testing.T) {
	a := newDefault()
	res := a.Analyze("", "")
	if len(res.CVAnalysis.Skills) != 0 {
		t.Errorf("empty CV produced skills %v", res.CVAnalysis.Skills)
	}
	if res.CVAnalysis.Education != "Lise / Belirtilmedi" {
		t.Errorf("education = %q", res.CVAnalysis.Education)
	}
	if res.CVAnalysis.Experience != "Giriş Seviyesi" {
		t.Errorf("experience = %q", res.CVAnalysis.Experience)
	}
	if len(res.CareerSuggestions) != 0 {
		t.Errorf("empty CV produced suggestions %v", res.CareerSuggestions)
	}
	if res.JobMatch.Status != StatusInvalidInput {
		t.Errorf("empty job text should be invalid, got %q", res.JobMatch.Status)
	}
	// JSON-facing slices must never be nil
	if res.CVAnalysis.Skills == nil || res.JobMatch.MissingSkills == nil {
		t.Error("result slices should be empty, not nil")
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
