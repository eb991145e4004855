package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunData captures one completed generation run.
type RunData struct {
	SourcePath    string
	Difficulty    string
	Model         string
	QuestionCount int
	DroppedCount  int
	OutputPath    string
}

// Run is a recorded generation run.
type Run struct {
	ID            string
	Timestamp     time.Time
	SourcePath    string
	Difficulty    string
	Model         string
	QuestionCount int
	DroppedCount  int
	OutputPath    string
}

// LLMRequestData captures one model API call.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a recorded model API call.
type LLMRequest struct {
	ID           int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// HistoryRepo provides append and query access to run history.
type HistoryRepo interface {
	// AppendRun records a completed generation run and returns its ID.
	AppendRun(ctx context.Context, data RunData) (string, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// AppendLLMRequest records a model API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error

	// ListLLMRequests returns the most recent request events, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error)

	// GetLLMRequest returns one request event, or nil if absent.
	GetLLMRequest(ctx context.Context, id int64) (*LLMRequest, error)
}

type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) AppendRun(ctx context.Context, data RunData) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO generation_runs
			(id, created_at, source_path, difficulty, model, question_count, dropped_count, output_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), data.SourcePath, data.Difficulty, data.Model,
		data.QuestionCount, data.DroppedCount, data.OutputPath,
	)
	if err != nil {
		return "", fmt.Errorf("insert generation run: %w", err)
	}
	return id, nil
}

func (r *historyRepo) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, source_path, difficulty, model, question_count, dropped_count, output_path
		FROM generation_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.Timestamp, &run.SourcePath, &run.Difficulty,
			&run.Model, &run.QuestionCount, &run.DroppedCount, &run.OutputPath,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *historyRepo) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_requests
			(created_at, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert LLM request: %w", err)
	}
	return nil
}

func (r *historyRepo) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_requests
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}
	defer rows.Close()

	var events []LLMRequest
	for rows.Next() {
		e, err := scanLLMRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *historyRepo) GetLLMRequest(ctx context.Context, id int64) (*LLMRequest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_requests
		WHERE id = ?`, id)

	e, err := scanLLMRequest(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func scanLLMRequest(scan func(dest ...any) error) (*LLMRequest, error) {
	var e LLMRequest
	err := scan(
		&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM request: %w", err)
	}
	return &e, nil
}
