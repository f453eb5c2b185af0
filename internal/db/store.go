package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/akeane/grantsheet/internal/models"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

type ListParams struct {
	Query          string
	QueryEmbedding []float32
	Status         string // deadline status, e.g. "URGENT", or "all"
	DeadlineType   string
	Confidence     string
	Tags           []string
	MinAmountAUD   float64
	SortBy         string // "deadline", "amount_desc", "newest", default relevance
	Limit          int
	Offset         int
}

type ListResult struct {
	Grants []models.Grant `json:"grants"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// selectCols is the column list shared by every grant query.
const selectCols = `id, name, administering_body, purpose,
	deadline_raw, funding_amount_raw, co_contribution, eligibility,
	assessment_criteria, application_complexity, complexity_level, web_link,
	deadline_type, deadline_date, deadline_status, days_until, deadline_notes,
	funding_min, funding_max, funding_currency, funding_amount_aud,
	parsing_confidence, parsing_notes,
	tags, content_hash, created_at, updated_at`

func scanGrant(scan func(dest ...interface{}) error) (models.Grant, error) {
	var g models.Grant
	err := scan(
		&g.ID, &g.Name, &g.AdministeringBody, &g.Purpose,
		&g.DeadlineRaw, &g.FundingAmountRaw, &g.CoContribution, &g.Eligibility,
		&g.AssessmentCriteria, &g.ApplicationComplexity, &g.ComplexityLevel, &g.WebLink,
		&g.DeadlineType, &g.DeadlineDate, &g.DeadlineStatus, &g.DaysUntil, &g.DeadlineNotes,
		&g.FundingMin, &g.FundingMax, &g.FundingCurrency, &g.FundingAmountAUD,
		&g.ParsingConfidence, &g.ParsingNotes,
		&g.Tags, &g.ContentHash, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return g, err
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	return g, nil
}

// UpsertGrant inserts a grant or, when a row with the same content hash
// exists, refreshes its derived columns. Returns the row id.
func (s *Store) UpsertGrant(ctx context.Context, g models.Grant) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, `
		INSERT INTO grants (
			name, administering_body, purpose,
			deadline_raw, funding_amount_raw, co_contribution, eligibility,
			assessment_criteria, application_complexity, complexity_level, web_link,
			deadline_type, deadline_date, deadline_status, days_until, deadline_notes,
			funding_min, funding_max, funding_currency, funding_amount_aud,
			parsing_confidence, parsing_notes,
			amount_aud_numeric, deadline_on, tags, content_hash
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26
		)
		ON CONFLICT (content_hash) DO UPDATE SET
			purpose = EXCLUDED.purpose,
			co_contribution = EXCLUDED.co_contribution,
			eligibility = EXCLUDED.eligibility,
			assessment_criteria = EXCLUDED.assessment_criteria,
			application_complexity = EXCLUDED.application_complexity,
			complexity_level = EXCLUDED.complexity_level,
			deadline_type = EXCLUDED.deadline_type,
			deadline_date = EXCLUDED.deadline_date,
			deadline_status = EXCLUDED.deadline_status,
			days_until = EXCLUDED.days_until,
			deadline_notes = EXCLUDED.deadline_notes,
			funding_min = EXCLUDED.funding_min,
			funding_max = EXCLUDED.funding_max,
			funding_currency = EXCLUDED.funding_currency,
			funding_amount_aud = EXCLUDED.funding_amount_aud,
			parsing_confidence = EXCLUDED.parsing_confidence,
			parsing_notes = EXCLUDED.parsing_notes,
			amount_aud_numeric = EXCLUDED.amount_aud_numeric,
			deadline_on = EXCLUDED.deadline_on,
			tags = EXCLUDED.tags,
			updated_at = NOW()
		RETURNING id
	`,
		g.Name, g.AdministeringBody, g.Purpose,
		g.DeadlineRaw, g.FundingAmountRaw, g.CoContribution, g.Eligibility,
		g.AssessmentCriteria, g.ApplicationComplexity, g.ComplexityLevel, g.WebLink,
		g.DeadlineType, g.DeadlineDate, g.DeadlineStatus, g.DaysUntil, g.DeadlineNotes,
		g.FundingMin, g.FundingMax, g.FundingCurrency, g.FundingAmountAUD,
		g.ParsingConfidence, g.ParsingNotes,
		amountNumeric(g.FundingAmountAUD), deadlineDateOf(g.DeadlineDate),
		g.Tags, g.ContentHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert failed: %w", err)
	}
	return id, nil
}

// amountNumeric converts a formatted AUD string like "1,500,000" into a
// sortable float. Nil when the column is empty or non-numeric.
func amountNumeric(formatted string) *float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(formatted), ",", "")
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// deadlineDateOf pulls the first ISO date out of a deadline date column,
// which may read "2026-06-30" or "2026-06-30 to 2026-09-30".
func deadlineDateOf(display string) *time.Time {
	display = strings.TrimSpace(display)
	if len(display) < 10 {
		return nil
	}
	d, err := time.Parse("2006-01-02", display[:10])
	if err != nil {
		return nil
	}
	return &d
}

func (s *Store) ListGrants(ctx context.Context, params ListParams) (*ListResult, error) {
	where := "WHERE 1=1"
	var args []interface{}
	argIdx := 1

	if params.Query != "" {
		where += fmt.Sprintf(" AND (search_vector @@ plainto_tsquery('english', $%d) OR name ILIKE '%%' || $%d || '%%')", argIdx, argIdx)
		args = append(args, params.Query)
		argIdx++
	}

	status := strings.ToUpper(strings.TrimSpace(params.Status))
	if status != "" && status != "ALL" {
		where += fmt.Sprintf(" AND deadline_status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	if params.DeadlineType != "" {
		where += fmt.Sprintf(" AND deadline_type = $%d", argIdx)
		args = append(args, strings.ToUpper(strings.TrimSpace(params.DeadlineType)))
		argIdx++
	}
	if params.Confidence != "" {
		where += fmt.Sprintf(" AND parsing_confidence = $%d", argIdx)
		args = append(args, strings.ToUpper(strings.TrimSpace(params.Confidence)))
		argIdx++
	}
	if tags := sanitizeStringSlice(params.Tags); len(tags) > 0 {
		where += fmt.Sprintf(" AND tags && $%d", argIdx)
		args = append(args, tags)
		argIdx++
	}
	if params.MinAmountAUD > 0 {
		where += fmt.Sprintf(" AND amount_aud_numeric >= $%d", argIdx)
		args = append(args, params.MinAmountAUD)
		argIdx++
	}

	var total int
	countSQL := "SELECT COUNT(*) FROM grants " + where
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count failed: %w", err)
	}

	selectSQL := fmt.Sprintf("SELECT %s FROM grants %s", selectCols, where)

	switch params.SortBy {
	case "deadline":
		selectSQL += " ORDER BY deadline_on ASC NULLS LAST, name ASC"
	case "amount_desc":
		selectSQL += " ORDER BY amount_aud_numeric DESC NULLS LAST, name ASC"
	case "newest":
		selectSQL += " ORDER BY created_at DESC"
	default:
		if len(params.QueryEmbedding) > 0 {
			selectSQL += fmt.Sprintf(`
				ORDER BY
					CASE WHEN embedding IS NULL THEN 1 ELSE 0 END ASC,
					COALESCE(1 - (embedding <=> $%d), -1) DESC,
					updated_at DESC
			`, argIdx)
			args = append(args, pgvector.NewVector(params.QueryEmbedding))
			argIdx++
		} else if params.Query != "" {
			selectSQL += fmt.Sprintf(" ORDER BY ts_rank(search_vector, plainto_tsquery('english', $%d::text)) DESC, updated_at DESC", argIdx)
			args = append(args, params.Query)
			argIdx++
		} else {
			selectSQL += " ORDER BY updated_at DESC"
		}
	}

	selectSQL += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := s.pool.Query(ctx, selectSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var grants []models.Grant
	for rows.Next() {
		g, err := scanGrant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	if grants == nil {
		grants = []models.Grant{}
	}

	return &ListResult{
		Grants: grants,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}, nil
}

func sanitizeStringSlice(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

func (s *Store) GetGrant(ctx context.Context, id string) (*models.Grant, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM grants WHERE id = $1", selectCols), id)
	g, err := scanGrant(row.Scan)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get grant failed: %w", err)
	}
	return &g, nil
}

func (s *Store) GetGrantByHash(ctx context.Context, contentHash string) (*models.Grant, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM grants WHERE content_hash = $1", selectCols), contentHash)
	g, err := scanGrant(row.Scan)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get grant by hash failed: %w", err)
	}
	return &g, nil
}

// AllGrants streams every row, used by the reparse job.
func (s *Store) AllGrants(ctx context.Context) ([]models.Grant, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM grants ORDER BY name", selectCols))
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var grants []models.Grant
	for rows.Next() {
		g, err := scanGrant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (s *Store) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	_, err := s.pool.Exec(ctx,
		"UPDATE grants SET embedding = $1, updated_at = NOW() WHERE id = $2",
		pgvector.NewVector(embedding), id)
	if err != nil {
		return fmt.Errorf("update embedding failed: %w", err)
	}
	return nil
}

// GrantsWithoutEmbedding returns ids and embed text for rows missing a
// vector, capped at limit.
func (s *Store) GrantsWithoutEmbedding(ctx context.Context, limit int) (map[uuid.UUID]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name || ' ' || purpose || ' ' || eligibility
		FROM grants WHERE embedding IS NULL LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	pending := make(map[uuid.UUID]string)
	for rows.Next() {
		var id uuid.UUID
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		pending[id] = text
	}
	return pending, rows.Err()
}

// SimilarGrants ranks rows by cosine distance to the query embedding.
func (s *Store) SimilarGrants(ctx context.Context, embedding []float32, limit int) ([]models.Grant, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM grants
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2
	`, selectCols), pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, fmt.Errorf("similarity query failed: %w", err)
	}
	defer rows.Close()

	var grants []models.Grant
	for rows.Next() {
		g, err := scanGrant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

type Stats struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	ByType          map[string]int `json:"by_type"`
	ByConfidence    map[string]int `json:"by_confidence"`
	Urgent          int            `json:"urgent"`
	TopTags         map[string]int `json:"top_tags"`
	TotalFundingAUD float64        `json:"total_funding_aud"`
}

func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByStatus:     make(map[string]int),
		ByType:       make(map[string]int),
		ByConfidence: make(map[string]int),
		TopTags:      make(map[string]int),
	}

	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(amount_aud_numeric), 0) FROM grants",
	).Scan(&stats.Total, &stats.TotalFundingAUD); err != nil {
		return nil, fmt.Errorf("totals failed: %w", err)
	}

	groupCounts := func(column string, into map[string]int) error {
		rows, err := s.pool.Query(ctx, fmt.Sprintf(
			"SELECT %s, COUNT(*) FROM grants WHERE %s <> '' GROUP BY %s", column, column, column))
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var key string
			var n int
			if err := rows.Scan(&key, &n); err != nil {
				return err
			}
			into[key] = n
		}
		return rows.Err()
	}

	if err := groupCounts("deadline_status", stats.ByStatus); err != nil {
		return nil, fmt.Errorf("status counts failed: %w", err)
	}
	if err := groupCounts("deadline_type", stats.ByType); err != nil {
		return nil, fmt.Errorf("type counts failed: %w", err)
	}
	if err := groupCounts("parsing_confidence", stats.ByConfidence); err != nil {
		return nil, fmt.Errorf("confidence counts failed: %w", err)
	}
	stats.Urgent = stats.ByStatus["URGENT"]

	rows, err := s.pool.Query(ctx, `
		SELECT tag, COUNT(*) AS n
		FROM grants, unnest(tags) AS tag
		GROUP BY tag ORDER BY n DESC, tag ASC LIMIT 20
	`)
	if err != nil {
		return nil, fmt.Errorf("tag counts failed: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("tag scan failed: %w", err)
		}
		stats.TopTags[tag] = n
	}
	return stats, rows.Err()
}
