package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/mcqgen/internal/store"
)

// memHistory is an in-memory HistoryRepo capturing appended events.
type memHistory struct {
	requests []store.LLMRequestData
}

func (m *memHistory) AppendRun(context.Context, store.RunData) (string, error) { return "id", nil }
func (m *memHistory) ListRuns(context.Context, int) ([]store.Run, error)      { return nil, nil }
func (m *memHistory) ListLLMRequests(context.Context, int) ([]store.LLMRequest, error) {
	return nil, nil
}
func (m *memHistory) GetLLMRequest(context.Context, int64) (*store.LLMRequest, error) {
	return nil, nil
}

func (m *memHistory) AppendLLMRequest(_ context.Context, data store.LLMRequestData) error {
	m.requests = append(m.requests, data)
	return nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	history := &memHistory{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"questions":[]}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})

	p := WithLogging(mock, history)

	ctx := WithPurpose(context.Background(), "mcq-gen")
	_, err := p.Generate(ctx, Request{
		System:   "system text",
		Messages: []Message{{Role: RoleUser, Content: "user text"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(history.requests) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(history.requests))
	}
	rec := history.requests[0]
	if !rec.Success {
		t.Error("expected success flag")
	}
	if rec.Purpose != "mcq-gen" {
		t.Errorf("expected purpose mcq-gen, got %q", rec.Purpose)
	}
	if rec.InputTokens != 10 || rec.OutputTokens != 5 {
		t.Errorf("unexpected token counts: %+v", rec)
	}
	if rec.ResponseBody != `{"questions":[]}` {
		t.Errorf("response body not captured: %q", rec.ResponseBody)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	history := &memHistory{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	p := WithLogging(mock, history)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(history.requests) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(history.requests))
	}
	rec := history.requests[0]
	if rec.Success {
		t.Error("expected failure flag")
	}
	if rec.ErrorMessage == "" {
		t.Error("expected error message to be captured")
	}
}
