package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/mcqgen/internal/extract"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/store"
)

func fiveQuestionBatch() json.RawMessage {
	return json.RawMessage(`{"questions": [
		{"question":"Q1?","options":["a1","b1","c1","d1"],"answer":"b1"},
		{"question":"Q2?","options":["a2","b2","c2","d2"],"answer":"a2"},
		{"question":"Q3?","options":["a3","b3","c3","d3"],"answer":"d3"},
		{"question":"Q4?","options":["a4","b4","c4","d4"],"answer":"c4"},
		{"question":"Q5?","options":["a5","b5","c5","d5"],"answer":"a5"}
	]}`)
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chapter.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	inputPath := writeInput(t, "Sample chapter text.")
	outputPath := filepath.Join(t.TempDir(), "generated_mcqs.txt")

	mock := llm.NewMockProvider(llm.MockResponse{Content: fiveQuestionBatch()})

	res, err := Run(context.Background(), Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Difficulty: mcq.DifficultyHard,
		Provider:   mock,
		GenConfig:  mcq.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Questions != 5 {
		t.Errorf("expected 5 questions, got %d", res.Questions)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)

	if count := strings.Count(got, "Answer:"); count != 5 {
		t.Errorf("expected exactly 5 Answer lines, got %d", count)
	}

	// Option order from the response JSON must be preserved.
	q1 := "Question 1: Q1?\n  A. a1\n  B. b1\n  C. c1\n  D. d1\nAnswer: b1\n"
	if !strings.Contains(got, q1) {
		t.Errorf("first block mismatch:\n%s", got)
	}

	// The prompt must carry the requested difficulty and the source text.
	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "Difficulty: hard") {
		t.Error("difficulty missing from prompt")
	}
	if !strings.Contains(req.Messages[0].Content, "Sample chapter text.") {
		t.Error("source text missing from prompt")
	}
}

func TestRun_AppendsAcrossRuns(t *testing.T) {
	inputPath := writeInput(t, "Sample chapter text.")
	outputPath := filepath.Join(t.TempDir(), "generated_mcqs.txt")

	for range 2 {
		mock := llm.NewMockProvider(llm.MockResponse{Content: fiveQuestionBatch()})
		_, err := Run(context.Background(), Options{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Difficulty: mcq.DifficultyMedium,
			Provider:   mock,
			GenConfig:  mcq.DefaultConfig(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if count := strings.Count(string(data), "Answer:"); count != 10 {
		t.Errorf("expected 10 Answer lines after two runs, got %d", count)
	}
}

func TestRun_ExtractFailureWritesNothing(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "generated_mcqs.txt")

	_, err := Run(context.Background(), Options{
		InputPath:  filepath.Join(t.TempDir(), "missing.txt"),
		OutputPath: outputPath,
		Difficulty: mcq.DifficultyMedium,
		Provider:   llm.NewMockProvider(),
		GenConfig:  mcq.DefaultConfig(),
	})
	var read *extract.ErrRead
	if !errors.As(err, &read) {
		t.Fatalf("expected ErrRead, got: %T (%v)", err, err)
	}

	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Error("output file must not exist after a failed run")
	}
}

func TestRun_ProviderFailureWritesNothing(t *testing.T) {
	inputPath := writeInput(t, "Sample chapter text.")
	outputPath := filepath.Join(t.TempDir(), "generated_mcqs.txt")

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := Run(context.Background(), Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Difficulty: mcq.DifficultyMedium,
		Provider:   mock,
		GenConfig:  mcq.DefaultConfig(),
	})
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}

	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Error("output file must not exist after a failed run")
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	inputPath := writeInput(t, "Sample chapter text.")
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "generated_mcqs.txt")

	st, err := store.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	history := st.History()

	mock := llm.NewMockProvider(llm.MockResponse{Content: fiveQuestionBatch()})
	provider := llm.WithLogging(mock, history)

	res, err := Run(context.Background(), Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Difficulty: mcq.DifficultyHard,
		Provider:   provider,
		GenConfig:  mcq.DefaultConfig(),
		History:    history,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RunID == "" {
		t.Error("expected a run ID")
	}

	runs, err := history.ListRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].QuestionCount != 5 || runs[0].Difficulty != "hard" {
		t.Errorf("unexpected recorded runs: %+v", runs)
	}

	events, err := history.ListLLMRequests(context.Background(), 10)
	if err != nil {
		t.Fatalf("list LLM requests: %v", err)
	}
	if len(events) != 1 || !events[0].Success {
		t.Errorf("unexpected recorded LLM requests: %+v", events)
	}
}
