package record

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/analyzer"
)

// Analysis statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// ErrNotFound is returned when an analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

// Analysis is one stored analysis run: the inputs, the overall job-match
// score and the full engine result. The engine itself never sees this type;
// handlers create it after calling the engine.
type Analysis struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId,omitempty"` // zero when anonymous
	JobTitle     string          `json:"jobTitle"`
	JobText      string          `json:"jobText"`
	CVText       string          `json:"cvText"`
	OverallScore int             `json:"overallScore"`
	Status       string          `json:"status"`
	Result       analyzer.Result `json:"result"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CVTextPreview returns the first 200 characters of the extracted CV text,
// for listing and inspection endpoints.
func (a Analysis) CVTextPreview() string {
	const limit = 200
	runes := []rune(a.CVText)
	if len(runes) <= limit {
		return a.CVText
	}
	return string(runes[:limit])
}

// Repository is the persistence port for analyses.
type Repository interface {
	Create(ctx context.Context, a Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (Analysis, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Analysis, error)
}
