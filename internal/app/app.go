// Package app wires the generation pipeline: extract, generate,
// append, record.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mcqgen/internal/extract"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/output"
	"github.com/abhisek/mcqgen/internal/store"
)

// Options carries everything one run needs. Provider is injectable so
// tests can substitute a deterministic stub.
type Options struct {
	InputPath  string
	OutputPath string
	Difficulty mcq.Difficulty

	Provider  llm.Provider
	GenConfig mcq.Config

	// Timeout bounds the model call. Zero means no limit.
	Timeout time.Duration

	// History records the run when non-nil. Recording failures are
	// warnings, never run failures.
	History store.HistoryRepo
}

// Result summarizes a successful run.
type Result struct {
	Questions  int
	Dropped    int
	Model      string
	OutputPath string
	RunID      string
}

// Run executes the pipeline in order. Any stage failure is terminal;
// nothing is written to the output file unless the whole batch parsed.
func Run(ctx context.Context, opts Options) (*Result, error) {
	text, err := extract.Extract(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	genCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	gen := mcq.New(opts.Provider, opts.GenConfig)
	batch, err := gen.Generate(genCtx, text, opts.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	if err := output.Append(opts.OutputPath, batch.Questions); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	res := &Result{
		Questions:  len(batch.Questions),
		Dropped:    batch.Dropped,
		Model:      batch.Model,
		OutputPath: opts.OutputPath,
	}

	if opts.History != nil {
		runID, err := opts.History.AppendRun(ctx, store.RunData{
			SourcePath:    opts.InputPath,
			Difficulty:    string(opts.Difficulty),
			Model:         batch.Model,
			QuestionCount: len(batch.Questions),
			DroppedCount:  batch.Dropped,
			OutputPath:    opts.OutputPath,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
		} else {
			res.RunID = runID
		}
	}

	return res, nil
}
