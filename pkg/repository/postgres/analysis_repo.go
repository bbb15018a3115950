package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/analyzer"
	"github.com/sultanuyarr/ai-cv-uyum-analizi/pkg/record"
)

// AnalysisRepository stores analysis runs in PostgreSQL.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	user_id UUID,
	job_title TEXT NOT NULL,
	job_text TEXT NOT NULL,
	cv_text TEXT NOT NULL,
	overall_score INT NOT NULL,
	status TEXT NOT NULL,
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_user_id_idx ON analyses (user_id);
`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, a record.Analysis) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return err
	}
	var userID *uuid.UUID
	if a.UserID != uuid.Nil {
		userID = &a.UserID
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO analyses (id, user_id, job_title, job_text, cv_text, overall_score, status, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, a.ID, userID, a.JobTitle, a.JobText, a.CVText, a.OverallScore, a.Status, resultJSON, a.CreatedAt)
	return err
}

func (r *AnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (record.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, job_title, job_text, cv_text, overall_score, status, result, created_at
FROM analyses WHERE id = $1
`, id)
	return scanAnalysis(row)
}

func (r *AnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]record.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, job_title, job_text, cv_text, overall_score, status, result, created_at
FROM analyses WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []record.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAnalysis(row pgx.Row) (record.Analysis, error) {
	var a record.Analysis
	var userID *uuid.UUID
	var resultBytes []byte
	var created time.Time
	err := row.Scan(&a.ID, &userID, &a.JobTitle, &a.JobText, &a.CVText,
		&a.OverallScore, &a.Status, &resultBytes, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.Analysis{}, record.ErrNotFound
		}
		return record.Analysis{}, err
	}
	if userID != nil {
		a.UserID = *userID
	}
	var res analyzer.Result
	if err := json.Unmarshal(resultBytes, &res); err == nil {
		a.Result = res
	}
	a.CreatedAt = created.UTC()
	return a, nil
}
