package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/api/http/presenter"
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/analyzer"
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/cvfile"
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/record"
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/security/jwt"
)

// AnalysisHandler serves CV upload/analysis and stored-analysis reads.
type AnalysisHandler struct {
	engine *analyzer.Analyzer
	repo   record.Repository
	// limit uploaded file size read into memory (bytes)
	maxBytes  int64
	jwtSecret string
	jwtIssuer string
}

func NewAnalysisHandler(engine *analyzer.Analyzer, repo record.Repository, maxUploadMB int, jwtSecret, jwtIssuer string) *AnalysisHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 15
	}
	return &AnalysisHandler{
		engine:    engine,
		repo:      repo,
		maxBytes:  int64(maxUploadMB) << 20,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
	}
}

// Upload accepts a CV file (PDF or DOCX) with a job description, extracts the
// text, runs the analysis engine and stores the result.
// @Summary CV ve ilan metni üzerinden uyum analizi
// @Description PDF veya DOCX formatındaki CV'yi ve ilan metnini alır, beceri/eğitim/deneyim çıkarımı, kariyer önerileri ve ilan uyum skoru döner.
// @Tags    analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "CV dosyası (PDF veya DOCX)"
// @Param   job_text formData string true "İlan metni"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analysis/upload [post]
func (h *AnalysisHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	jobText := c.FormValue("job_text")

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	cvText, err := cvfile.ExtractText(fh.Filename, data)
	switch {
	case errors.Is(err, cvfile.ErrUnsupportedFormat):
		return presenter.Error(c, http.StatusBadRequest, "desteklenmeyen dosya türü: yalnızca pdf ve docx kabul edilir")
	case errors.Is(err, cvfile.ErrParseFailure):
		return presenter.Error(c, http.StatusBadRequest, "dosya okunamadı")
	case err != nil:
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("dosya okunamadı: %v", err))
	}

	result := h.engine.Analyze(cvText, jobText)

	rec := record.Analysis{
		ID:           uuid.New(),
		JobTitle:     "Genel Analiz",
		JobText:      jobText,
		CVText:       cvText,
		OverallScore: result.JobMatch.Score,
		Status:       record.StatusCompleted,
		Result:       result,
	}
	// associate with the caller when a valid token is present; the
	// endpoint itself stays public
	if sub := jwt.OptionalUserID(c.Get("Authorization"), h.jwtSecret, h.jwtIssuer); sub != "" {
		if userID, err := uuid.Parse(sub); err == nil {
			rec.UserID = userID
		}
	}
	if err := h.repo.Create(c.Context(), rec); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "analiz kaydedilemedi")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":                 rec.ID.String(),
		"status":             rec.Status,
		"cv_analysis":        result.CVAnalysis,
		"career_suggestions": result.CareerSuggestions,
		"job_match":          result.JobMatch,
	})
}

// Get returns a stored analysis by id.
// @Summary Kayıtlı analizi getir
// @Tags    analysis
// @Produce json
// @Param   id path string true "Analiz ID (UUID)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analysis/{id} [get]
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "geçersiz id")
	}
	a, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "analiz bulunamadı")
		}
		return presenter.Error(c, http.StatusInternalServerError, "analiz okunamadı")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":              a.ID.String(),
		"status":          a.Status,
		"score":           a.OverallScore,
		"result":          a.Result,
		"cv_text_preview": a.CVTextPreview(),
	})
}

// List returns the authenticated caller's analyses, newest first.
// @Summary Analiz listesi
// @Tags    analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /analyses [get]
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "kullanıcı belirlenemedi")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.repo.ListByUser(c.Context(), userID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "liste alınamadı")
	}
	out := make([]fiber.Map, 0, len(items))
	for _, a := range items {
		out = append(out, fiber.Map{
			"id":              a.ID.String(),
			"status":          a.Status,
			"score":           a.OverallScore,
			"createdAt":       a.CreatedAt,
			"cv_text_preview": a.CVTextPreview(),
		})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
