package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRunRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.History()
	ctx := context.Background()

	id, err := repo.AppendRun(ctx, RunData{
		SourcePath:    "chapter.pdf",
		Difficulty:    "hard",
		Model:         "gemini-2.5-flash",
		QuestionCount: 5,
		DroppedCount:  1,
		OutputPath:    "generated_mcqs.txt",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "chapter.pdf", run.SourcePath)
	assert.Equal(t, "hard", run.Difficulty)
	assert.Equal(t, 5, run.QuestionCount)
	assert.Equal(t, 1, run.DroppedCount)
	assert.False(t, run.Timestamp.IsZero())
}

func TestListRuns_NewestFirst(t *testing.T) {
	st := openTestStore(t)
	repo := st.History()
	ctx := context.Background()

	for _, src := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err := repo.AppendRun(ctx, RunData{SourcePath: src, Difficulty: "medium"})
		require.NoError(t, err)
	}

	runs, err := repo.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestLLMRequestRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.History()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestData{
		Provider:     "gemini-2.5-flash",
		Model:        "gemini-2.5-flash",
		Purpose:      "mcq-gen",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    842,
		Success:      true,
		RequestBody:  "[system]\nprompt",
		ResponseBody: `{"questions":[]}`,
	})
	require.NoError(t, err)

	events, err := repo.ListLLMRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got, err := repo.GetLLMRequest(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mcq-gen", got.Purpose)
	assert.Equal(t, 120, got.InputTokens)
	assert.Equal(t, int64(842), got.LatencyMs)
	assert.True(t, got.Success)
	assert.Equal(t, `{"questions":[]}`, got.ResponseBody)
}

func TestGetLLMRequest_NotFound(t *testing.T) {
	st := openTestStore(t)

	got, err := st.History().GetLLMRequest(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(path)
	require.NoError(t, err)
	_, err = st.History().AppendRun(context.Background(), RunData{SourcePath: "x.txt"})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Schema creation must be idempotent and data must survive reopen.
	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	runs, err := st2.History().ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
